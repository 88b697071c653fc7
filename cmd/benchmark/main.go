package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/enrollsim/pkg/enrollment"
	"github.com/limaJavier/enrollsim/pkg/model"
	"github.com/limaJavier/enrollsim/pkg/simulation"
	"github.com/samber/lo"
)

const MB float64 = 1024 * 1024

type Workload struct {
	Name     string
	Courses  int
	Students int
	PlanSize int
}

type BenchmarkResult struct {
	Workload   string  `csv:"workload"`
	Courses    int     `csv:"courses"`
	Offerings  int     `csv:"offerings"`
	Students   int     `csv:"students"`
	PlanSize   int     `csv:"plan_size"`
	Duration   float64 `csv:"duration_ms"`
	Allocated  float64 `csv:"allocated_mb"`
	Entries    int     `csv:"entries"`
	Accepted   int     `csv:"accepted"`
	Rejected   int     `csv:"rejected"`
	Consistent bool    `csv:"consistent"`
}

var workloads = []Workload{
	{Name: "small", Courses: 20, Students: 50, PlanSize: 5},
	{Name: "medium", Courses: 200, Students: 1000, PlanSize: 8},
	{Name: "large", Courses: 1000, Students: 10000, PlanSize: 10},
	{Name: "overloaded", Courses: 100, Students: 2000, PlanSize: 30},
}

func main() {
	outFilePathPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	seedPtr := flag.Uint64("seed", 1, "Seed used to generate the synthetic scenarios")
	flag.Parse()

	results := make([]*BenchmarkResult, 0, len(workloads))
	for _, workload := range workloads {
		fmt.Printf("Benchmarking workload \"%v\" with %d courses, %d students and plans of %d offerings\n", workload.Name, workload.Courses, workload.Students, workload.PlanSize)

		scenario, err := generateScenario(workload, *seedPtr)
		if err != nil {
			log.Fatalf("cannot generate scenario for workload \"%v\": %v", workload.Name, err)
		}
		results = append(results, measure(workload, scenario))
	}

	file, err := os.Create(*outFilePathPtr)
	if err != nil {
		log.Fatalf("cannot create CSV file: %v", err)
	}
	defer file.Close()
	if err := gocsv.MarshalFile(&results, file); err != nil {
		log.Fatalf("cannot write CSV file: %v", err)
	}
}

// generateScenario builds a random but reproducible scenario: every fifth course requires the previous one
// and offerings are spread over the week in two-hour slots
func generateScenario(workload Workload, seed uint64) (model.Scenario, error) {
	random := rand.New(rand.NewPCG(seed, uint64(workload.Courses)))

	courses := make([]model.RawCourse, 0, workload.Courses)
	for i := range workload.Courses {
		course := model.RawCourse{
			Code:        fmt.Sprintf("C%04d", i),
			Name:        fmt.Sprintf("Course %d", i),
			WeeklyHours: 30 * (1 + random.IntN(2)),
			Category:    model.Categories[model.Category(1+random.IntN(len(model.Categories)))],
		}
		if i > 0 && i%5 == 0 {
			course.Requires = &model.RawRule{Course: fmt.Sprintf("C%04d", i-1)}
		}
		courses = append(courses, course)
	}

	// Two offerings per course
	offerings := make([]model.RawOffering, 0, 2*workload.Courses)
	for i := range 2 * workload.Courses {
		start := 8 + 2*random.IntN(6)
		offerings = append(offerings, model.RawOffering{
			Id:       fmt.Sprintf("T%05d", i),
			Course:   courses[i%workload.Courses].Code,
			Day:      model.Weekday(random.IntN(len(model.Weekdays))).String(),
			Start:    start,
			End:      start + 2,
			Capacity: 1 + random.IntN(60),
		})
	}

	students := make([]model.RawStudent, 0, workload.Students)
	for i := range workload.Students {
		history := make(map[string]float64)
		for range random.IntN(workload.PlanSize + 1) {
			history[courses[random.IntN(len(courses))].Code] = float64(random.IntN(101))
		}
		plan := lo.Times(workload.PlanSize, func(_ int) string { return offerings[random.IntN(len(offerings))].Id })
		students = append(students, model.RawStudent{
			Name:          fmt.Sprintf("Student %d", i),
			WeeklyHourCap: 60 * (2 + random.IntN(4)),
			History:       history,
			Plans:         [][]string{plan},
		})
	}

	return model.ProcessRawScenario(model.RawScenario{
		Year:      2025,
		Courses:   courses,
		Offerings: offerings,
		Students:  students,
	})
}

func measure(workload Workload, scenario model.Scenario) *BenchmarkResult {
	catalog := scenario.Catalog
	if err := scenario.ApplyPlans(1); err != nil {
		log.Fatalf("cannot submit plans: %v", err)
	}
	system := simulation.NewSystem(catalog)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()
	result := system.RunPeriod(catalog.Students())
	duration := time.Since(start)
	runtime.ReadMemStats(&after)

	benchmark := &BenchmarkResult{
		Workload:   workload.Name,
		Courses:    len(catalog.Courses()),
		Offerings:  len(catalog.Offerings()),
		Students:   len(catalog.Students()),
		PlanSize:   workload.PlanSize,
		Duration:   float64(duration.Microseconds()) / 1000,
		Allocated:  float64(after.TotalAlloc-before.TotalAlloc) / MB,
		Consistent: true,
	}
	for _, student := range result.Students {
		report := result.Reports[student]
		summary := report.Summary()
		benchmark.Entries += summary.Processed
		benchmark.Accepted += summary.Accepted
		benchmark.Rejected += summary.Rejected
		benchmark.Consistent = benchmark.Consistent && enrollment.Verify(report, catalog)
	}
	return benchmark
}
