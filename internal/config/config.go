package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	ScenarioEnv = "ENROLLSIM_SCENARIO"
	PeriodsEnv  = "ENROLLSIM_PERIODS"
	OutEnv      = "ENROLLSIM_OUT"
	FormatEnv   = "ENROLLSIM_FORMAT"
)

type Config struct {
	ScenarioFile string `validate:"required"`
	Periods      int    `validate:"gte=0"` // Zero runs every period the scenario has plans for
	OutFile      string // Empty writes to the Standard Output
	Format       string `validate:"oneof=text csv"`
}

// Load reads defaults from the environment, after loading the given .env files (".env" when none is given),
// and lets command-line flags override them. Missing .env files are ignored.
func Load(args []string, envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot load environment file: %w", err)
	}

	periods := 0
	if value := os.Getenv(PeriodsEnv); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return Config{}, fmt.Errorf("%v must be an integer: %w", PeriodsEnv, err)
		}
		periods = parsed
	}
	format := os.Getenv(FormatEnv)
	if format == "" {
		format = "text"
	}

	flags := flag.NewFlagSet("enrollsim", flag.ContinueOnError)
	filePathPtr := flags.String("file", os.Getenv(ScenarioEnv), "Path to the scenario file (.json, .yaml or .yml)")
	periodsPtr := flags.Int("periods", periods, "Number of periods to simulate, where 0 (the default) simulates every planned period")
	outFilePathPtr := flags.String("out", os.Getenv(OutEnv), "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	formatPtr := flags.String("format", format, "Output format. Allowed values are: \"text\" and \"csv\", where \"text\" is the default")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	config := Config{
		ScenarioFile: *filePathPtr,
		Periods:      *periodsPtr,
		OutFile:      *outFilePathPtr,
		Format:       strings.ToLower(*formatPtr),
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}
