package model

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type RawRule struct {
	Course     string    `mapstructure:"course"`
	All        []RawRule `mapstructure:"all" validate:"dive"`
	Any        []RawRule `mapstructure:"any" validate:"dive"`
	MinCredits int       `mapstructure:"min_credits" validate:"gte=0"`
}

type RawCourse struct {
	Code         string   `mapstructure:"code" validate:"required"`
	Name         string   `mapstructure:"name" validate:"required"`
	WeeklyHours  int      `mapstructure:"weekly_hours" validate:"gt=0"`
	Category     string   `mapstructure:"category" validate:"required,oneof=mandatory elective free"`
	Requires     *RawRule `mapstructure:"requires"`
	CoRequisites []string `mapstructure:"co_requisites" validate:"dive,required"`
}

type RawOffering struct {
	Id       string   `mapstructure:"id" validate:"required"`
	Course   string   `mapstructure:"course" validate:"required"`
	Day      string   `mapstructure:"day" validate:"required"`
	Start    int      `mapstructure:"start" validate:"gte=0,lt=24"`
	End      int      `mapstructure:"end" validate:"gtfield=Start,lte=24"`
	Capacity int      `mapstructure:"capacity" validate:"gt=0"`
	Enrolled []string `mapstructure:"enrolled" validate:"dive,required"` // Ids of students already on the roster
}

type RawStudent struct {
	Id            string             `mapstructure:"id"`
	Name          string             `mapstructure:"name" validate:"required"`
	WeeklyHourCap int                `mapstructure:"weekly_hour_cap" validate:"gt=0"`
	History       map[string]float64 `mapstructure:"history" validate:"dive,gte=0,lte=100"`
	Plans         [][]string         `mapstructure:"plans" validate:"dive,dive,required"` // Offering ids per simulated period
}

type RawScenario struct {
	Year               int           `mapstructure:"year" validate:"gte=0"`
	Courses            []RawCourse   `mapstructure:"courses" validate:"dive"`
	MutualCoRequisites [][]string    `mapstructure:"mutual_co_requisites" validate:"dive,len=2,dive,required"`
	Offerings          []RawOffering `mapstructure:"offerings" validate:"dive"`
	Students           []RawStudent  `mapstructure:"students" validate:"dive"`
}

// Scenario is a fully built catalog plus the plans each student submits in successive periods
type Scenario struct {
	Catalog *Catalog
	Plans   map[string][][]string
}

func ScenarioFromJson(file string) (Scenario, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Scenario{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Scenario{}, err
	}
	return scenarioFromMap(inputJson)
}

func ScenarioFromYaml(file string) (Scenario, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Scenario{}, err
	}
	var inputYaml map[string]any
	if err := yaml.Unmarshal(bytes, &inputYaml); err != nil {
		return Scenario{}, err
	}
	return scenarioFromMap(inputYaml)
}

func scenarioFromMap(input map[string]any) (Scenario, error) {
	var rawScenario RawScenario
	if err := mapstructure.Decode(input, &rawScenario); err != nil {
		return Scenario{}, fmt.Errorf("cannot decode scenario: %w", err)
	}
	return ProcessRawScenario(rawScenario)
}

// ProcessRawScenario validates the raw scenario and builds its catalog. Any unresolvable reference aborts construction.
func ProcessRawScenario(rawScenario RawScenario) (Scenario, error) {
	if err := validator.New().Struct(rawScenario); err != nil {
		return Scenario{}, fmt.Errorf("invalid scenario: %w", err)
	}

	catalog := NewCatalog()

	//** Manage courses
	for _, rawCourse := range rawScenario.Courses {
		category, err := ParseCategory(rawCourse.Category)
		if err != nil {
			return Scenario{}, fmt.Errorf("course %v: %w", rawCourse.Code, err)
		}
		course := &Course{
			Code:         rawCourse.Code,
			Name:         rawCourse.Name,
			WeeklyHours:  rawCourse.WeeklyHours,
			Category:     category,
			CoRequisites: make([]*Course, 0),
		}
		if err := catalog.AddCourse(course); err != nil {
			return Scenario{}, err
		}
	}

	// Rules and co-requisites are resolved once every course exists, so they may reference courses declared later
	for _, rawCourse := range rawScenario.Courses {
		course, _ := catalog.Course(rawCourse.Code)
		if rawCourse.Requires != nil {
			rule, err := buildRule(*rawCourse.Requires)
			if err != nil {
				return Scenario{}, fmt.Errorf("course %v: %w", rawCourse.Code, err)
			}
			course.Rule = &rule
		}
		for _, code := range rawCourse.CoRequisites {
			coRequisite, ok := catalog.Course(code)
			if !ok {
				return Scenario{}, fmt.Errorf("co-requisite of course %v: %w: %v", rawCourse.Code, ErrUnknownCourse, code)
			}
			course.AddCoRequisite(coRequisite)
		}
	}
	for _, pair := range rawScenario.MutualCoRequisites {
		if err := catalog.LinkCoRequisites(pair[0], pair[1]); err != nil {
			return Scenario{}, fmt.Errorf("mutual co-requisites %v: %w", pair, err)
		}
	}

	//** Manage students
	year := rawScenario.Year
	if year == 0 {
		year = time.Now().Year()
	}
	plans := make(map[string][][]string)
	for i, rawStudent := range rawScenario.Students {
		id := rawStudent.Id
		if id == "" {
			id = RegistrationNumber(year, i+1)
		}
		student := NewStudent(id, rawStudent.Name, rawStudent.WeeklyHourCap)
		for code, score := range rawStudent.History {
			course, ok := catalog.Course(code)
			if !ok {
				return Scenario{}, fmt.Errorf("history of student %v: %w: %v", id, ErrUnknownCourse, code)
			}
			student.Complete(course, score)
		}
		if err := catalog.AddStudent(student); err != nil {
			return Scenario{}, err
		}
		if len(rawStudent.Plans) > 0 {
			plans[id] = rawStudent.Plans
		}
	}

	//** Manage offerings
	for _, rawOffering := range rawScenario.Offerings {
		day, err := ParseWeekday(rawOffering.Day)
		if err != nil {
			return Scenario{}, fmt.Errorf("offering %v: %w", rawOffering.Id, err)
		}
		schedule, err := NewSchedule(day, rawOffering.Start, rawOffering.End)
		if err != nil {
			return Scenario{}, fmt.Errorf("offering %v: %w", rawOffering.Id, err)
		}
		offering, err := catalog.NewOffering(rawOffering.Id, rawOffering.Course, schedule, rawOffering.Capacity)
		if err != nil {
			return Scenario{}, err
		}
		for _, studentId := range rawOffering.Enrolled {
			student, ok := catalog.Student(studentId)
			if !ok {
				return Scenario{}, fmt.Errorf("roster of offering %v: %w: %v", rawOffering.Id, ErrUnknownStudent, studentId)
			}
			if err := offering.Enroll(student); err != nil {
				return Scenario{}, err
			}
		}
	}

	//** Verify plans
	for id, periods := range plans {
		for _, offeringId := range lo.Flatten(periods) {
			if _, ok := catalog.Offering(offeringId); !ok {
				return Scenario{}, fmt.Errorf("plan of student %v: %w: %v", id, ErrUnknownOffering, offeringId)
			}
		}
	}

	return Scenario{Catalog: catalog, Plans: plans}, nil
}

func buildRule(rawRule RawRule) (Rule, error) {
	// Exactly one of the alternatives must be set
	set := lo.Count([]bool{rawRule.Course != "", len(rawRule.All) > 0, len(rawRule.Any) > 0, rawRule.MinCredits > 0}, true)
	if set != 1 {
		return Rule{}, fmt.Errorf("a rule must set exactly one of course, all, any or min_credits: %+v", rawRule)
	}

	switch {
	case rawRule.Course != "":
		return Require(rawRule.Course), nil
	case rawRule.MinCredits > 0:
		return MinCredits(rawRule.MinCredits), nil
	}

	children := rawRule.All
	if len(rawRule.Any) > 0 {
		children = rawRule.Any
	}
	rules := make([]Rule, 0, len(children))
	for _, child := range children {
		rule, err := buildRule(child)
		if err != nil {
			return Rule{}, err
		}
		rules = append(rules, rule)
	}
	if len(rawRule.Any) > 0 {
		return Any(rules...), nil
	}
	return All(rules...), nil
}

// RegistrationNumber formats the sequential registration id handed to students without an explicit one
func RegistrationNumber(year, sequence int) string {
	return fmt.Sprintf("%d65%03d", year, sequence)
}

// ApplyPlans submits every student's plan for the given period (1-based). Students without a plan for it are left untouched.
func (scenario Scenario) ApplyPlans(period int) error {
	for id, periods := range scenario.Plans {
		if period < 1 || period > len(periods) {
			continue
		}
		if err := scenario.Catalog.PlanFor(id, periods[period-1]...); err != nil {
			return err
		}
	}
	return nil
}

// Periods is the largest number of periods any student has plans for
func (scenario Scenario) Periods() int {
	return lo.Max(lo.MapToSlice(scenario.Plans, func(_ string, periods [][]string) int { return len(periods) }))
}
