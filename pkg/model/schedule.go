package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSchedule = errors.New("invalid schedule")

type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var Weekdays = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

func (day Weekday) String() string {
	if name, ok := Weekdays[day]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(day))
}

// ParseWeekday accepts full names or three-letter abbreviations, case-insensitively.
func ParseWeekday(value string) (Weekday, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for day, name := range Weekdays {
		name = strings.ToLower(name)
		if value == name || value == name[:3] {
			return day, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday \"%v\"", ErrInvalidSchedule, value)
}

// Schedule is a half-open hour interval [Start, End) on a single weekday.
type Schedule struct {
	day   Weekday
	start int
	end   int
}

func NewSchedule(day Weekday, start, end int) (Schedule, error) {
	if _, ok := Weekdays[day]; !ok {
		return Schedule{}, fmt.Errorf("%w: unknown weekday %d", ErrInvalidSchedule, int(day))
	} else if start >= end {
		return Schedule{}, fmt.Errorf("%w: start hour %d must be earlier than end hour %d", ErrInvalidSchedule, start, end)
	}
	return Schedule{day: day, start: start, end: end}, nil
}

// MustSchedule is NewSchedule for fixed, known-good values.
func MustSchedule(day Weekday, start, end int) Schedule {
	schedule, err := NewSchedule(day, start, end)
	if err != nil {
		panic(err)
	}
	return schedule
}

func (schedule Schedule) Day() Weekday { return schedule.day }
func (schedule Schedule) Start() int   { return schedule.start }
func (schedule Schedule) End() int     { return schedule.end }

func (schedule Schedule) ConflictsWith(other Schedule) bool {
	if schedule.day != other.day {
		return false
	}
	return schedule.start < other.end && other.start < schedule.end
}

func (schedule Schedule) String() string {
	return fmt.Sprintf("%v %dh-%dh", schedule.day, schedule.start, schedule.end)
}
