package enrollment

import (
	"github.com/limaJavier/enrollsim/pkg/model"
	"github.com/samber/lo"
)

// Verify checks a report against the plan it was produced for:
// - Every planned offering has exactly one entry
// - No two accepted offerings conflict
// - Accepted hours fit the student's weekly cap
// - Every rejected entry carries a rejection kind and every accepted one does not
func Verify(report *Report, lookup model.CourseLookup) bool {
	student := report.Student()
	plan := report.Plan()
	entries := report.Entries()

	if len(entries) != len(plan) {
		return false
	}
	positions := lo.Uniq(lo.Map(entries, func(entry Entry, _ int) int { return entry.Position }))
	if len(positions) != len(entries) || lo.SomeBy(positions, func(position int) bool {
		return position < 0 || position >= len(plan)
	}) {
		return false
	}
	if lo.SomeBy(entries, func(entry Entry) bool { return plan[entry.Position] != entry.Offering }) {
		return false
	}

	accepted := report.Accepted()
	for i := range accepted {
		for j := i + 1; j < len(accepted); j++ {
			if accepted[i].ConflictsWith(accepted[j]) {
				return false
			}
		}
	}
	if report.AcceptedHours() > student.WeeklyHourCap {
		return false
	}

	return lo.EveryBy(entries, func(entry Entry) bool {
		if entry.Status == Accepted {
			eligible := entry.Offering.Course.Rule == nil || entry.Offering.Course.Rule.Evaluate(lookup, student)
			return entry.Kind == NoRejection && eligible
		}
		return entry.Kind != NoRejection && entry.Reason != ""
	})
}
