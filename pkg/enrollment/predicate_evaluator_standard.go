package enrollment

import (
	"github.com/limaJavier/enrollsim/pkg/model"
	"github.com/samber/lo"
)

type predicateEvaluatorStandard struct {
	lookup  model.CourseLookup
	student *model.Student
}

func (evaluator *predicateEvaluatorStandard) Eligible(course *model.Course) (bool, string) {
	if course.Rule == nil {
		return true, ""
	}
	if course.Rule.Evaluate(evaluator.lookup, evaluator.student) {
		return true, ""
	}
	return false, course.Rule.Explain(evaluator.lookup)
}

func (evaluator *predicateEvaluatorStandard) MissingCoRequisite(offering *model.Offering, position int) (*model.Course, bool) {
	return lo.Find(offering.Course.CoRequisites, func(coRequisite *model.Course) bool {
		return !evaluator.student.Plans(coRequisite, position)
	})
}

func (evaluator *predicateEvaluatorStandard) HasSeats(offering *model.Offering) bool {
	return !offering.Full()
}

func (evaluator *predicateEvaluatorStandard) Conflict(offering1, offering2 *model.Offering) bool {
	return offering1.ConflictsWith(offering2)
}

func (evaluator *predicateEvaluatorStandard) WithinBudget(committedHours int, course *model.Course) bool {
	return committedHours+course.WeeklyHours <= evaluator.student.WeeklyHourCap
}
