package model

import (
	"slices"

	"github.com/samber/lo"
)

// ApprovalThreshold is the minimum score for a completed course to count as approved
const ApprovalThreshold = 60.0

type Student struct {
	Id            string
	Name          string
	WeeklyHourCap int
	Completed     map[string]float64 // Score per course code; entries are never removed
	Planned       []*Offering
}

func NewStudent(id, name string, weeklyHourCap int) *Student {
	return &Student{
		Id:            id,
		Name:          name,
		WeeklyHourCap: weeklyHourCap,
		Completed:     make(map[string]float64),
		Planned:       make([]*Offering, 0),
	}
}

func (student *Student) Complete(course *Course, score float64) {
	if student.Completed == nil {
		student.Completed = make(map[string]float64)
	}
	student.Completed[course.Code] = score
}

func (student *Student) Approved(course *Course) bool {
	score, ok := student.Completed[course.Code]
	return ok && score >= ApprovalThreshold
}

// Credits sums the weekly hours of every approved course that the lookup can resolve
func (student *Student) Credits(lookup CourseLookup) int {
	credits := 0
	for code := range student.Completed {
		course, ok := lookup.Course(code)
		if ok && student.Approved(course) {
			credits += course.WeeklyHours
		}
	}
	return credits
}

// Plan replaces the planned offerings wholesale
func (student *Student) Plan(offerings ...*Offering) {
	student.Planned = slices.Clone(offerings)
}

func (student *Student) AddToPlan(offering *Offering) {
	student.Planned = append(student.Planned, offering)
}

func (student *Student) ClearPlan() {
	student.Planned = make([]*Offering, 0)
}

func (student *Student) HasPlan() bool {
	return len(student.Planned) > 0
}

// Plans reports whether some planned offering other than the one at position skip belongs to the course
func (student *Student) Plans(course *Course, skip int) bool {
	return lo.SomeBy(lo.Filter(student.Planned, func(_ *Offering, index int) bool { return index != skip }), func(offering *Offering) bool {
		return offering.Course.Equal(course)
	})
}
