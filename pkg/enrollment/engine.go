package enrollment

import (
	"fmt"
	"slices"

	"github.com/limaJavier/enrollsim/pkg/model"
	"github.com/samber/lo"
)

// Engine decides, for every offering a student planned, whether it is accepted or rejected.
// It never enrolls anybody and never mutates the student.
type Engine interface {
	Process(student *model.Student) *Report
}

type standardEngine struct {
	lookup model.CourseLookup
}

func NewEngine(lookup model.CourseLookup) Engine {
	return &standardEngine{
		lookup: lookup,
	}
}

// decision is the tentative state of one planned offering during a pass; it is frozen into an Entry once the pass ends
type decision struct {
	offering *model.Offering
	position int
	status   Status
	kind     RejectionKind
	reason   string
	log      []string
}

func (decision *decision) logf(format string, args ...any) {
	decision.log = append(decision.log, fmt.Sprintf(format, args...))
}

func (decision *decision) reject(kind RejectionKind, reason string) {
	decision.status = Rejected
	decision.kind = kind
	decision.reason = reason
	decision.logf("FAIL: %v", reason)
	decision.logf("==> Result: REJECTED")
}

// evict turns a tentatively accepted offering into a rejected one
func (decision *decision) evict(kind RejectionKind, reason string) {
	decision.status = Rejected
	decision.kind = kind
	decision.reason = reason
	decision.logf("EVICTED: %v", reason)
	decision.logf("==> Result: REJECTED")
}

func (decision *decision) accept() {
	decision.status = Accepted
	decision.kind = NoRejection
	decision.reason = acceptedReason
	decision.logf("==> Result: ACCEPTED")
}

func (engine *standardEngine) Process(student *model.Student) *Report {
	if student == nil {
		panic("cannot process a nil student")
	}
	evaluator := newPredicateEvaluator(engine.lookup, student)

	//** Order plan by descending priority, keeping submission order among equals
	decisions := lo.Map(student.Planned, func(offering *model.Offering, position int) *decision {
		return &decision{
			offering: offering,
			position: position,
			log:      make([]string, 0),
		}
	})
	slices.SortStableFunc(decisions, func(a, b *decision) int {
		return b.offering.Priority() - a.offering.Priority()
	})

	//** Evaluate every offering against the growing accepted set
	accepted := make([]*decision, 0, len(decisions))
	committedHours := 0 // Hours of every offering processed so far, whatever its outcome
	for _, current := range decisions {
		accepted = engine.evaluate(evaluator, student, current, accepted, committedHours)
		committedHours += current.offering.Course.WeeklyHours
	}

	//** Freeze final statuses
	entries := lo.Map(decisions, func(decision *decision, _ int) Entry {
		return Entry{
			Offering: decision.offering,
			Position: decision.position,
			Status:   decision.status,
			Kind:     decision.kind,
			Reason:   decision.reason,
			Log:      decision.log,
		}
	})
	return newReport(student, entries)
}

// evaluate runs the checks for current, short-circuiting at the first failure, and returns the updated accepted set
func (engine *standardEngine) evaluate(evaluator predicateEvaluator, student *model.Student, current *decision, accepted []*decision, committedHours int) []*decision {
	offering := current.offering
	course := offering.Course

	current.logf("Checking prerequisites...")
	if eligible, explanation := evaluator.Eligible(course); !eligible {
		current.reject(PrerequisiteUnmet, fmt.Sprintf("prerequisite not met: %v", explanation))
		return accepted
	}
	current.logf("OK: prerequisites met")

	current.logf("Checking co-requisites...")
	if missing, ok := evaluator.MissingCoRequisite(offering, current.position); ok {
		current.reject(CoRequisiteMissing, fmt.Sprintf("co-requisite missing: %v must be taken in the same period", missing.Name))
		return accepted
	}
	current.logf("OK: co-requisites planned")

	current.logf("Checking seats...")
	if !evaluator.HasSeats(offering) {
		current.reject(OfferingFull, fmt.Sprintf("offering full: no seats left in %v", offering.Id))
		return accepted
	}
	current.logf("OK: seats available")

	current.logf("Checking schedule conflicts...")
	for _, other := range slices.Clone(accepted) {
		if !evaluator.Conflict(offering, other.offering) {
			continue
		}
		switch {
		case other.offering.Priority() < offering.Priority():
			other.evict(Superseded, fmt.Sprintf("superseded by higher-priority conflicting offering %v", label(offering)))
			accepted = lo.Without(accepted, other)
			current.logf("Superseded lower-priority offering %v", label(other.offering))
		case other.offering.Priority() > offering.Priority():
			current.reject(ScheduleConflict, fmt.Sprintf("schedule conflict with higher-priority offering %v", label(other.offering)))
			return accepted
		default:
			other.evict(EqualPriorityConflict, fmt.Sprintf("equal-priority conflict with %v", label(offering)))
			accepted = lo.Without(accepted, other)
			current.reject(EqualPriorityConflict, fmt.Sprintf("equal-priority conflict with %v", label(other.offering)))
			return accepted
		}
	}
	current.logf("OK: no blocking schedule conflict")

	current.logf("Checking weekly hours (committed: %dh + new: %dh <= max: %dh)...", committedHours, course.WeeklyHours, student.WeeklyHourCap)
	if !evaluator.WithinBudget(committedHours, course) {
		current.reject(HourBudgetExceeded, fmt.Sprintf("weekly hour budget exceeded: %dh + %dh > %dh", committedHours, course.WeeklyHours, student.WeeklyHourCap))
		return accepted
	}
	current.logf("OK: within weekly hours")

	current.accept()
	return append(accepted, current)
}

func label(offering *model.Offering) string {
	return fmt.Sprintf("%v (%v - %v)", offering.Id, offering.Course.Code, offering.Course.Name)
}
