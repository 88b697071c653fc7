package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleConflicts(t *testing.T) {
	scenarios := []struct {
		name     string
		first    Schedule
		second   Schedule
		conflict bool
	}{
		{"Same slot", MustSchedule(Monday, 8, 10), MustSchedule(Monday, 8, 10), true},
		{"Partial overlap", MustSchedule(Monday, 8, 10), MustSchedule(Monday, 9, 11), true},
		{"Contained", MustSchedule(Friday, 8, 12), MustSchedule(Friday, 9, 10), true},
		{"Adjacent intervals are half-open", MustSchedule(Monday, 8, 10), MustSchedule(Monday, 10, 12), false},
		{"Different days", MustSchedule(Monday, 8, 10), MustSchedule(Tuesday, 8, 10), false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			assert.Equal(t, scenario.conflict, scenario.first.ConflictsWith(scenario.second))
			assert.Equal(t, scenario.conflict, scenario.second.ConflictsWith(scenario.first))
		})
	}
}

func TestNewScheduleRejectsEmptyIntervals(t *testing.T) {
	_, err := NewSchedule(Monday, 10, 10)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = NewSchedule(Weekday(9), 8, 10)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	assert.Panics(t, func() { MustSchedule(Monday, 12, 8) })
}

func TestParseWeekday(t *testing.T) {
	for _, value := range []string{"saturday", "Sat", " SATURDAY "} {
		day, err := ParseWeekday(value)
		require.NoError(t, err)
		assert.Equal(t, Saturday, day)
	}

	_, err := ParseWeekday("sunday")
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.Equal(t, "Wednesday 14h-16h", MustSchedule(Wednesday, 14, 16).String())
}
