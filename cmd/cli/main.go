package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/enrollsim/internal/config"
	"github.com/limaJavier/enrollsim/internal/csvio"
	"github.com/limaJavier/enrollsim/internal/render"
	"github.com/limaJavier/enrollsim/pkg/enrollment"
	"github.com/limaJavier/enrollsim/pkg/model"
	"github.com/limaJavier/enrollsim/pkg/simulation"
)

var loaders = map[string]func(string) (model.Scenario, error){
	".json": model.ScenarioFromJson,
	".yaml": model.ScenarioFromYaml,
	".yml":  model.ScenarioFromYaml,
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	// Extract scenario
	extension := strings.ToLower(filepath.Ext(cfg.ScenarioFile))
	loader, ok := loaders[extension]
	if !ok {
		log.Fatalf("unsupported scenario file extension \"%v\"", extension)
	}
	scenario, err := loader(cfg.ScenarioFile)
	if err != nil {
		log.Fatalf("cannot parse scenario file: %v", err)
	}

	periods := cfg.Periods
	if periods == 0 {
		periods = scenario.Periods()
	}

	// Simulate
	catalog := scenario.Catalog
	system := simulation.NewSystem(catalog, simulation.WithLogger(log.Default()))
	results := make([]simulation.PeriodResult, 0, periods)
	for period := 1; period <= periods; period++ {
		if err := scenario.ApplyPlans(period); err != nil {
			log.Fatalf("cannot submit plans for period %d: %v", period, err)
		}
		result := system.RunPeriod(catalog.Students())

		// Verify report correctness
		for _, student := range result.Students {
			if !enrollment.Verify(result.Reports[student], catalog) {
				log.Fatalf("inconsistent report for student %v in period %d", student.Id, result.Period)
			}
		}
		results = append(results, result)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if cfg.Format == "csv" {
		if cfg.OutFile == "" {
			output, err := csvio.ExportResultsString(results)
			if err != nil {
				log.Fatalf("an error occurred while building output csv: %v", err)
			}
			fmt.Print(output)
		} else if err := csvio.ExportResults(results, cfg.OutFile); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
		return
	}

	var out io.Writer = os.Stdout
	var buffer bytes.Buffer
	if cfg.OutFile != "" {
		out = &buffer
	}
	printer := render.NewPrinter(out)
	for _, result := range results {
		printer.PrintPeriod(result)
		fmt.Fprintln(out)
	}
	if cfg.OutFile != "" {
		if err := os.WriteFile(cfg.OutFile, buffer.Bytes(), 0666); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}
}
