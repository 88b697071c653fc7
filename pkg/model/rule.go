package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type RuleKind int

const (
	SimpleRule RuleKind = iota
	AndRule
	OrRule
	MinCreditsRule
)

// Rule is an eligibility predicate over a student's completed courses.
// Composite rules (AndRule, OrRule) hold their operands in Children.
type Rule struct {
	Kind     RuleKind
	Code     string // Required course for SimpleRule
	Credits  int    // Required completed hours for MinCreditsRule
	Children []Rule
}

// CourseLookup resolves course codes against a catalog
type CourseLookup interface {
	Course(code string) (*Course, bool)
}

func Require(code string) Rule {
	return Rule{Kind: SimpleRule, Code: code}
}

func All(rules ...Rule) Rule {
	return Rule{Kind: AndRule, Children: rules}
}

func Any(rules ...Rule) Rule {
	return Rule{Kind: OrRule, Children: rules}
}

func MinCredits(credits int) Rule {
	return Rule{Kind: MinCreditsRule, Credits: credits}
}

func (rule Rule) Evaluate(lookup CourseLookup, student *Student) bool {
	switch rule.Kind {
	case SimpleRule:
		course, ok := lookup.Course(rule.Code)
		if !ok {
			return false
		}
		return student.Approved(course)
	case AndRule:
		results := lo.Map(rule.Children, func(child Rule, _ int) bool { return child.Evaluate(lookup, student) })
		return lo.EveryBy(results, func(result bool) bool { return result })
	case OrRule:
		results := lo.Map(rule.Children, func(child Rule, _ int) bool { return child.Evaluate(lookup, student) })
		return lo.SomeBy(results, func(result bool) bool { return result })
	case MinCreditsRule:
		return student.Credits(lookup) >= rule.Credits
	}
	panic(fmt.Sprintf("unknown rule kind %d", rule.Kind))
}

// Explain describes every condition of the rule, satisfied or not, so a rejection message is self-contained.
func (rule Rule) Explain(lookup CourseLookup) string {
	switch rule.Kind {
	case SimpleRule:
		name := rule.Code
		if course, ok := lookup.Course(rule.Code); ok {
			name = course.Name
		}
		return fmt.Sprintf("approval required in \"%v\"", name)
	case AndRule:
		return rule.join(lookup, " AND ")
	case OrRule:
		return rule.join(lookup, " OR ")
	case MinCreditsRule:
		return fmt.Sprintf("at least %d completed credits required", rule.Credits)
	}
	panic(fmt.Sprintf("unknown rule kind %d", rule.Kind))
}

func (rule Rule) join(lookup CourseLookup, connector string) string {
	explanations := lo.Map(rule.Children, func(child Rule, _ int) string {
		if child.composite() && len(child.Children) > 1 {
			return "(" + child.Explain(lookup) + ")"
		}
		return child.Explain(lookup)
	})
	return strings.Join(explanations, connector)
}

func (rule Rule) composite() bool {
	return rule.Kind == AndRule || rule.Kind == OrRule
}

// Codes returns every course code referenced by the rule tree, depth first
func (rule Rule) Codes() []string {
	if rule.Kind == SimpleRule {
		return []string{rule.Code}
	}
	return lo.FlatMap(rule.Children, func(child Rule, _ int) []string { return child.Codes() })
}
