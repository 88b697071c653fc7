package simulation

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/limaJavier/enrollsim/pkg/enrollment"
	"github.com/limaJavier/enrollsim/pkg/model"
	. "github.com/onsi/gomega"
)

const defaultScenario = "../../test/scenarios/default.yaml"

type recordingLogger struct {
	lines []string
}

func (logger *recordingLogger) Printf(format string, args ...any) {
	logger.lines = append(logger.lines, fmt.Sprintf(format, args...))
}

func loadScenario(t *testing.T) model.Scenario {
	scenario, err := model.ScenarioFromYaml(defaultScenario)
	NewWithT(t).Expect(err).NotTo(HaveOccurred())
	return scenario
}

func acceptedIds(report *enrollment.Report) []string {
	ids := make([]string, 0)
	for _, offering := range report.Accepted() {
		ids = append(ids, offering.Id)
	}
	return ids
}

func TestRunPeriodFoldsAcceptedCourses(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	scenario := loadScenario(t)
	catalog := scenario.Catalog
	system := NewSystem(catalog)
	ana, _ := catalog.Student("202565001")
	bruno, _ := catalog.Student("202565002")
	g.Expect(scenario.ApplyPlans(1)).To(Succeed())

	//** Act
	result := system.RunPeriod(catalog.Students())

	//** Assert
	g.Expect(result.Period).To(Equal(1))
	g.Expect(result.Id).NotTo(Equal(uuid.Nil))
	g.Expect(result.Students).To(Equal([]*model.Student{ana, bruno}))
	g.Expect(result.Reports).To(HaveLen(2))
	g.Expect(system.Period()).To(Equal(2))

	g.Expect(acceptedIds(result.Reports[ana])).To(ConsistOf("T01", "T02", "T03", "T04"))
	g.Expect(ana.Completed).To(Equal(map[string]float64{
		"DCC199": SimulatedScore,
		"DC5199": SimulatedScore,
		"MAT154": SimulatedScore,
		"MAT155": SimulatedScore,
	}))

	g.Expect(acceptedIds(result.Reports[bruno])).To(ConsistOf("T05", "T06", "T10"))
	g.Expect(bruno.Completed).To(HaveKeyWithValue("DCC199", 80.0))
	g.Expect(bruno.Completed).To(HaveKeyWithValue("DCC200", SimulatedScore))
	g.Expect(bruno.Completed).To(HaveKeyWithValue("DCC047", SimulatedScore))
	g.Expect(bruno.Completed).NotTo(HaveKey("DCC046"))
	g.Expect(bruno.Completed).NotTo(HaveKey("DCC191"))

	for _, student := range catalog.Students() {
		g.Expect(student.HasPlan()).To(BeFalse())
		g.Expect(enrollment.Verify(result.Reports[student], catalog)).To(BeTrue())
	}
}

func TestRunPeriodAcrossPeriods(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	scenario := loadScenario(t)
	catalog := scenario.Catalog
	system := NewSystem(catalog)
	ana, _ := catalog.Student("202565001")
	bruno, _ := catalog.Student("202565002")

	//** Act
	results := make([]PeriodResult, 0)
	for period := 1; period <= scenario.Periods(); period++ {
		g.Expect(scenario.ApplyPlans(period)).To(Succeed())
		results = append(results, system.RunPeriod(catalog.Students()))
	}

	//** Assert
	g.Expect(results).To(HaveLen(2))
	g.Expect(results[0].Id).NotTo(Equal(results[1].Id))
	g.Expect(results[1].Period).To(Equal(2))
	g.Expect(results[1].Students).To(Equal([]*model.Student{ana}))
	g.Expect(results[1].Reports).NotTo(HaveKey(bruno))
	g.Expect(acceptedIds(results[1].Reports[ana])).To(ConsistOf("T05", "T06", "T09", "T08"))
	g.Expect(system.Period()).To(Equal(3))

	g.Expect(system.History(ana.Id)).To(HaveLen(2))
	g.Expect(system.History(ana.Id)).To(HaveKeyWithValue(2, results[1].Reports[ana]))
	g.Expect(system.History(bruno.Id)).To(HaveLen(1))
	g.Expect(system.History("unknown")).To(BeEmpty())
}

func TestRunPeriodAlwaysAdvances(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	scenario := loadScenario(t)
	logger := &recordingLogger{}
	system := NewSystem(scenario.Catalog, WithLogger(logger))

	//** Act
	first := system.RunPeriod(scenario.Catalog.Students())
	second := system.RunPeriod(nil)

	//** Assert
	g.Expect(first.Students).To(BeEmpty())
	g.Expect(first.Reports).To(BeEmpty())
	g.Expect(second.Period).To(Equal(2))
	g.Expect(system.Period()).To(Equal(3))
	g.Expect(logger.lines).To(Equal([]string{
		"period 1 closed: 0 of 2 students processed",
		"period 2 closed: 0 of 0 students processed",
	}))
}

func TestRunPeriodKeepsHistoryOfRejections(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	scenario := loadScenario(t)
	catalog := scenario.Catalog
	logger := &recordingLogger{}
	system := NewSystem(catalog, WithLogger(logger))
	ana, _ := catalog.Student("202565001")
	g.Expect(catalog.PlanFor(ana.Id, "T05", "T09")).To(Succeed())

	//** Act
	result := system.RunPeriod([]*model.Student{ana})

	//** Assert
	report := result.Reports[ana]
	g.Expect(report.Accepted()).To(BeEmpty())
	g.Expect(report.Rejections()).To(HaveLen(2))
	g.Expect(ana.Completed).To(BeEmpty())
	g.Expect(ana.HasPlan()).To(BeFalse())
	g.Expect(report.Plan()).To(HaveLen(2))
	g.Expect(logger.lines).To(ContainElement("period 1: student 202565001 (Ana (freshman)) processed: 0 accepted, 2 rejected, 0h/240h"))
}

type countingEngine struct {
	calls int
	inner enrollment.Engine
}

func (engine *countingEngine) Process(student *model.Student) *enrollment.Report {
	engine.calls++
	return engine.inner.Process(student)
}

func TestWithEngine(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	scenario := loadScenario(t)
	engine := &countingEngine{inner: enrollment.NewEngine(scenario.Catalog)}
	system := NewSystem(scenario.Catalog, WithEngine(engine))
	g.Expect(scenario.ApplyPlans(1)).To(Succeed())

	//** Act
	system.RunPeriod(scenario.Catalog.Students())

	//** Assert
	g.Expect(engine.calls).To(Equal(2))
}
