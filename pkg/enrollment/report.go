package enrollment

import (
	"fmt"
	"slices"

	"github.com/limaJavier/enrollsim/pkg/model"
	"github.com/samber/lo"
)

type Status int

const (
	Accepted Status = iota
	Rejected
)

func (status Status) String() string {
	if status == Accepted {
		return "ACCEPTED"
	}
	return "REJECTED"
}

// RejectionKind classifies why an offering was rejected. Accepted entries carry NoRejection.
type RejectionKind int

const (
	NoRejection RejectionKind = iota
	PrerequisiteUnmet
	CoRequisiteMissing
	OfferingFull
	ScheduleConflict      // Conflict with an accepted offering of higher priority
	EqualPriorityConflict // Both offerings of the pair are rejected
	Superseded            // Evicted by a later offering of higher priority
	HourBudgetExceeded
)

var rejectionKinds = map[RejectionKind]string{
	NoRejection:           "none",
	PrerequisiteUnmet:     "prerequisite-unmet",
	CoRequisiteMissing:    "co-requisite-missing",
	OfferingFull:          "offering-full",
	ScheduleConflict:      "schedule-conflict",
	EqualPriorityConflict: "equal-priority-conflict",
	Superseded:            "superseded",
	HourBudgetExceeded:    "hour-budget-exceeded",
}

func (kind RejectionKind) String() string {
	if name, ok := rejectionKinds[kind]; ok {
		return name
	}
	return fmt.Sprintf("RejectionKind(%d)", int(kind))
}

const acceptedReason = "enrollment accepted in simulation"

// Entry is the final decision for one planned offering
type Entry struct {
	Offering *model.Offering
	Position int // Index of the offering in the student's submitted plan
	Status   Status
	Kind     RejectionKind
	Reason   string
	Log      []string
}

// Report is the immutable outcome of processing one student's plan. Entries keep the priority-sorted processing order.
type Report struct {
	student *model.Student
	plan    []*model.Offering // Plan as submitted when the report was produced
	entries []Entry
}

func newReport(student *model.Student, entries []Entry) *Report {
	return &Report{student: student, plan: slices.Clone(student.Planned), entries: entries}
}

func (report *Report) Student() *model.Student {
	return report.student
}

func (report *Report) Plan() []*model.Offering {
	return slices.Clone(report.plan)
}

func (report *Report) Entries() []Entry {
	return lo.Map(report.entries, func(entry Entry, _ int) Entry {
		entry.Log = slices.Clone(entry.Log)
		return entry
	})
}

func (report *Report) Accepted() []*model.Offering {
	return lo.FilterMap(report.entries, func(entry Entry, _ int) (*model.Offering, bool) {
		return entry.Offering, entry.Status == Accepted
	})
}

// Rejected maps every rejected offering to its reason
func (report *Report) Rejected() map[*model.Offering]string {
	rejected := make(map[*model.Offering]string)
	for _, entry := range report.entries {
		if entry.Status == Rejected {
			rejected[entry.Offering] = entry.Reason
		}
	}
	return rejected
}

// Rejections lists rejected entries in processing order
func (report *Report) Rejections() []Entry {
	return lo.Filter(report.Entries(), func(entry Entry, _ int) bool { return entry.Status == Rejected })
}

func (report *Report) AcceptedHours() int {
	return lo.SumBy(report.Accepted(), func(offering *model.Offering) int { return offering.Course.WeeklyHours })
}

type Summary struct {
	Processed     int
	Accepted      int
	Rejected      int
	AcceptedHours int
	WeeklyHourCap int
}

func (report *Report) Summary() Summary {
	accepted := len(report.Accepted())
	return Summary{
		Processed:     len(report.entries),
		Accepted:      accepted,
		Rejected:      len(report.entries) - accepted,
		AcceptedHours: report.AcceptedHours(),
		WeeklyHourCap: report.student.WeeklyHourCap,
	}
}

// GridDay holds the accepted offerings that meet on one weekday, ordered by start hour
type GridDay struct {
	Day       model.Weekday
	Offerings []*model.Offering
}

// Grid is the weekly timetable of accepted offerings; days without offerings are omitted
func (report *Report) Grid() []GridDay {
	byDay := lo.GroupBy(report.Accepted(), func(offering *model.Offering) model.Weekday { return offering.Schedule.Day() })
	days := lo.Keys(byDay)
	slices.Sort(days)

	return lo.Map(days, func(day model.Weekday, _ int) GridDay {
		offerings := byDay[day]
		slices.SortStableFunc(offerings, func(a, b *model.Offering) int { return a.Schedule.Start() - b.Schedule.Start() })
		return GridDay{Day: day, Offerings: offerings}
	})
}
