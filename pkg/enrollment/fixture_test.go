package enrollment

import (
	"testing"

	"github.com/limaJavier/enrollsim/pkg/model"
	"github.com/stretchr/testify/require"
)

type testCourse struct {
	code     string
	name     string
	hours    int
	category model.Category
}

type testOffering struct {
	id       string
	course   string
	day      model.Weekday
	start    int
	end      int
	capacity int
}

var testCourses = []testCourse{
	{"DCC199", "Algorithms 1", 60, model.Mandatory},
	{"DC5199", "Algorithms 1 - Lab", 30, model.Mandatory},
	{"DCC200", "Algorithms 2", 60, model.Mandatory},
	{"DC5200", "Algorithms 2 - Lab", 30, model.Mandatory},
	{"MAT154", "Calculus 1", 60, model.Mandatory},
	{"MAT155", "Analytic Geometry and Linear Algebra", 60, model.Mandatory},
	{"DCC025", "Discrete Mathematics", 60, model.Mandatory},
	{"DCC026", "Logic for Computing", 60, model.Mandatory},
	{"DCC046", "Computer Networks", 60, model.Elective},
	{"DCC191", "Scientific Visualization", 30, model.Elective},
	{"MUS001", "Piano 1", 30, model.Free},
	{"MUS002", "Guitar 1", 30, model.Free},
	{"MUS003", "Sheet Music 1", 30, model.Free},
	{"MUS004", "Chords 1", 30, model.Free},
	{"DES001", "Graphic Design", 30, model.Free},
}

var testOfferings = []testOffering{
	{"T01", "DCC199", model.Monday, 8, 10, 30},
	{"T02", "DC5199", model.Monday, 10, 12, 30},
	{"T03", "DCC200", model.Monday, 8, 10, 30},   // Conflicts with T01
	{"T04", "DCC046", model.Monday, 8, 10, 20},   // Conflicts with T01 and T03
	{"T05", "MUS001", model.Tuesday, 10, 12, 10}, // Conflicts with T06 and T11
	{"T06", "MUS002", model.Tuesday, 10, 12, 5},
	{"T07", "MAT154", model.Tuesday, 8, 10, 30},
	{"T08", "MAT155", model.Wednesday, 8, 10, 30},
	{"T09", "DCC025", model.Thursday, 8, 10, 30},
	{"T10", "DCC026", model.Friday, 8, 10, 30},
	{"T11", "DCC046", model.Tuesday, 10, 12, 20},
	{"T12", "DCC191", model.Friday, 14, 16, 20},
	{"T13", "DES001", model.Tuesday, 11, 13, 20}, // Overlaps the second half of T05
}

func newTestCatalog(t *testing.T) *model.Catalog {
	catalog := model.NewCatalog()
	for _, course := range testCourses {
		require.NoError(t, catalog.AddCourse(&model.Course{
			Code:        course.code,
			Name:        course.name,
			WeeklyHours: course.hours,
			Category:    course.category,
		}))
	}

	require.NoError(t, catalog.LinkCoRequisites("DCC199", "DC5199"))
	require.NoError(t, catalog.LinkCoRequisites("MAT154", "MAT155"))
	algorithms2, _ := catalog.Course("DCC200")
	algorithms2Lab, _ := catalog.Course("DC5200")
	algorithms2Lab.AddCoRequisite(algorithms2)
	setRule(t, catalog, "DCC200", model.Require("DCC199"))
	setRule(t, catalog, "DCC191", model.All(model.Require("DCC199"), model.Require("MAT154")))
	setRule(t, catalog, "MUS002", model.Any(model.Require("MUS003"), model.Require("MUS004")))

	for _, offering := range testOfferings {
		_, err := catalog.NewOffering(offering.id, offering.course, model.MustSchedule(offering.day, offering.start, offering.end), offering.capacity)
		require.NoError(t, err)
	}
	return catalog
}

func setRule(t *testing.T, catalog *model.Catalog, code string, rule model.Rule) {
	course, ok := catalog.Course(code)
	require.True(t, ok)
	course.Rule = &rule
}

func complete(t *testing.T, catalog *model.Catalog, student *model.Student, code string, score float64) {
	course, ok := catalog.Course(code)
	require.True(t, ok)
	student.Complete(course, score)
}

func plan(t *testing.T, catalog *model.Catalog, student *model.Student, ids ...string) {
	offerings := make([]*model.Offering, 0, len(ids))
	for _, id := range ids {
		offering, ok := catalog.Offering(id)
		require.True(t, ok, id)
		offerings = append(offerings, offering)
	}
	student.Plan(offerings...)
}

func entryFor(t *testing.T, report *Report, id string) Entry {
	for _, entry := range report.Entries() {
		if entry.Offering.Id == id {
			return entry
		}
	}
	require.FailNow(t, "no entry for offering", id)
	return Entry{}
}

func acceptedIds(report *Report) []string {
	ids := make([]string, 0)
	for _, offering := range report.Accepted() {
		ids = append(ids, offering.Id)
	}
	return ids
}
