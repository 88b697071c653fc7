package simulation

import (
	"maps"

	"github.com/google/uuid"
	"github.com/limaJavier/enrollsim/pkg/enrollment"
	"github.com/limaJavier/enrollsim/pkg/model"
	"github.com/samber/lo"
)

// SimulatedScore is recorded for every accepted course when a period closes
const SimulatedScore = 70.0

// Logger matches the Printf method of *log.Logger
type Logger interface {
	Printf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}

// PeriodResult holds the reports produced by one simulated period
type PeriodResult struct {
	Id       uuid.UUID
	Period   int
	Students []*model.Student // Processed students in processing order
	Reports  map[*model.Student]*enrollment.Report
}

// System advances the academic calendar one period at a time
type System interface {
	// RunPeriod processes every student with a non-empty plan, records accepted courses in their history and clears their plans.
	// The period counter always advances.
	RunPeriod(students []*model.Student) PeriodResult
	Period() int
	// History returns the reports of a student keyed by the period they were produced in
	History(studentId string) map[int]*enrollment.Report
}

type Option func(*standardSystem)

func WithLogger(logger Logger) Option {
	return func(system *standardSystem) {
		system.logger = logger
	}
}

func WithEngine(engine enrollment.Engine) Option {
	return func(system *standardSystem) {
		system.engine = engine
	}
}

type standardSystem struct {
	engine  enrollment.Engine
	logger  Logger
	period  int
	history map[string]map[int]*enrollment.Report
}

func NewSystem(lookup model.CourseLookup, options ...Option) System {
	system := &standardSystem{
		engine:  enrollment.NewEngine(lookup),
		logger:  noopLogger{},
		period:  1,
		history: make(map[string]map[int]*enrollment.Report),
	}
	for _, option := range options {
		option(system)
	}
	return system
}

func (system *standardSystem) RunPeriod(students []*model.Student) PeriodResult {
	result := PeriodResult{
		Id:       uuid.New(),
		Period:   system.period,
		Students: make([]*model.Student, 0, len(students)),
		Reports:  make(map[*model.Student]*enrollment.Report),
	}

	for _, student := range students {
		if !student.HasPlan() {
			continue
		}
		report := system.engine.Process(student)
		result.Students = append(result.Students, student)
		result.Reports[student] = report
		system.record(student, report)

		for _, offering := range report.Accepted() {
			student.Complete(offering.Course, SimulatedScore)
		}
		student.ClearPlan()

		summary := report.Summary()
		system.logger.Printf("period %d: student %v (%v) processed: %d accepted, %d rejected, %dh/%dh",
			system.period, student.Id, student.Name, summary.Accepted, summary.Rejected, summary.AcceptedHours, summary.WeeklyHourCap)
	}

	system.logger.Printf("period %d closed: %d of %d students processed", system.period, len(result.Students), len(students))
	system.period++
	return result
}

func (system *standardSystem) record(student *model.Student, report *enrollment.Report) {
	reports, ok := system.history[student.Id]
	if !ok {
		reports = make(map[int]*enrollment.Report)
		system.history[student.Id] = reports
	}
	reports[system.period] = report
}

func (system *standardSystem) Period() int {
	return system.period
}

func (system *standardSystem) History(studentId string) map[int]*enrollment.Report {
	return maps.Clone(lo.ValueOr(system.history, studentId, map[int]*enrollment.Report{}))
}
