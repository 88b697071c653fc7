package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type Category int

const (
	Free Category = iota + 1
	Elective
	Mandatory
)

var Categories = map[Category]string{
	Free:      "free",
	Elective:  "elective",
	Mandatory: "mandatory",
}

func (category Category) String() string {
	if name, ok := Categories[category]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(category))
}

// Priority ranks categories for processing order and conflict resolution: mandatory (3) > elective (2) > free (1)
func (category Category) Priority() int {
	return int(category)
}

func ParseCategory(value string) (Category, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	category, ok := lo.FindKey(Categories, value)
	if !ok {
		return 0, fmt.Errorf("unknown course category \"%v\"", value)
	}
	return category, nil
}

// Course is identified by its code. It is only mutated while the catalog is being built.
type Course struct {
	Code         string
	Name         string
	WeeklyHours  int
	Category     Category
	Rule         *Rule // Nil when the course has no prerequisites
	CoRequisites []*Course
}

func (course *Course) Priority() int {
	return course.Category.Priority()
}

func (course *Course) Equal(other *Course) bool {
	return course != nil && other != nil && course.Code == other.Code
}

func (course *Course) AddCoRequisite(other *Course) {
	if lo.ContainsBy(course.CoRequisites, other.Equal) {
		return
	}
	course.CoRequisites = append(course.CoRequisites, other)
}

func (course *Course) String() string {
	return fmt.Sprintf("%v: %v - %v (%dh/week)", course.Category, course.Code, course.Name, course.WeeklyHours)
}
