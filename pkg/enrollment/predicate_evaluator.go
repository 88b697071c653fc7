package enrollment

import "github.com/limaJavier/enrollsim/pkg/model"

// predicateEvaluator answers the per-offering questions of one student's enrollment pass
type predicateEvaluator interface {
	// Checks whether the student satisfies the course's eligibility rule, and describes the rule when it does not
	Eligible(course *model.Course) (bool, string)

	// Returns the first co-requisite of the offering's course that no other position of the submitted plan covers
	MissingCoRequisite(offering *model.Offering, position int) (*model.Course, bool)

	// Checks whether the offering still has free seats
	HasSeats(offering *model.Offering) bool

	// Checks whether two offerings meet at overlapping times
	Conflict(offering1, offering2 *model.Offering) bool

	// Checks whether the course's hours fit the weekly cap on top of the hours already committed in the pass
	WithinBudget(committedHours int, course *model.Course) bool
}

func newPredicateEvaluator(lookup model.CourseLookup, student *model.Student) predicateEvaluator {
	return &predicateEvaluatorStandard{
		lookup:  lookup,
		student: student,
	}
}
