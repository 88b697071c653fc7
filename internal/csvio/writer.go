package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/enrollsim/pkg/simulation"
)

// EntryCSVRow is the flat form of one report entry
type EntryCSVRow struct {
	Run         string `csv:"run"`
	Period      int    `csv:"period"`
	StudentId   string `csv:"student_id"`
	StudentName string `csv:"student_name"`
	Position    int    `csv:"position"`
	OfferingId  string `csv:"offering"`
	CourseCode  string `csv:"course_code"`
	CourseName  string `csv:"course_name"`
	Category    string `csv:"category"`
	Day         string `csv:"day"`
	Start       int    `csv:"start"`
	End         int    `csv:"end"`
	WeeklyHours int    `csv:"weekly_hours"`
	Status      string `csv:"status"`
	Kind        string `csv:"rejection_kind"`
	Reason      string `csv:"reason"`
}

// ExportResults writes every entry of the given periods to the CSV file at path, replacing it if it exists
func ExportResults(results []simulation.PeriodResult, path string) error {
	rows := formatResults(results)

	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open %v: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("cannot write %v: %w", path, err)
	}
	return nil
}

func ExportResultsString(results []simulation.PeriodResult) (string, error) {
	rows := formatResults(results)
	return gocsv.MarshalString(&rows)
}

// formatResults flattens the results in period order, students in processing order and entries in processing order
func formatResults(results []simulation.PeriodResult) []*EntryCSVRow {
	formatted := make([]*EntryCSVRow, 0)
	for _, result := range results {
		for _, student := range result.Students {
			for _, entry := range result.Reports[student].Entries() {
				offering := entry.Offering
				formatted = append(formatted, &EntryCSVRow{
					Run:         result.Id.String(),
					Period:      result.Period,
					StudentId:   student.Id,
					StudentName: student.Name,
					Position:    entry.Position,
					OfferingId:  offering.Id,
					CourseCode:  offering.Course.Code,
					CourseName:  offering.Course.Name,
					Category:    offering.Course.Category.String(),
					Day:         offering.Schedule.Day().String(),
					Start:       offering.Schedule.Start(),
					End:         offering.Schedule.End(),
					WeeklyHours: offering.Course.WeeklyHours,
					Status:      entry.Status.String(),
					Kind:        entry.Kind.String(),
					Reason:      entry.Reason,
				})
			}
		}
	}
	return formatted
}
