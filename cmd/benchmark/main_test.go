package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScenarioIsReproducible(t *testing.T) {
	workload := Workload{Name: "test", Courses: 15, Students: 10, PlanSize: 4}

	first, err := generateScenario(workload, 7)
	require.NoError(t, err)
	second, err := generateScenario(workload, 7)
	require.NoError(t, err)

	assert.Len(t, first.Catalog.Courses(), 15)
	assert.Len(t, first.Catalog.Offerings(), 30)
	assert.Len(t, first.Catalog.Students(), 10)
	assert.Equal(t, 1, first.Periods())
	assert.Equal(t, first.Plans, second.Plans)

	course, ok := first.Catalog.Course("C0005")
	require.True(t, ok)
	require.NotNil(t, course.Rule)
	assert.Equal(t, []string{"C0004"}, course.Rule.Codes())
}

func TestMeasure(t *testing.T) {
	workload := Workload{Name: "test", Courses: 30, Students: 40, PlanSize: 6}
	scenario, err := generateScenario(workload, 3)
	require.NoError(t, err)

	result := measure(workload, scenario)

	assert.Equal(t, 40*6, result.Entries)
	assert.Equal(t, result.Entries, result.Accepted+result.Rejected)
	assert.True(t, result.Consistent)
	assert.Equal(t, 60, result.Offerings)
}
