package model

import (
	"errors"
	"fmt"
)

var ErrOfferingFull = errors.New("offering is full")

// Offering is a scheduled, capacity-limited instance of a course
type Offering struct {
	Id       string
	Course   *Course
	Schedule Schedule
	Capacity int
	Enrolled []*Student
}

func (offering *Offering) Full() bool {
	return len(offering.Enrolled) >= offering.Capacity
}

func (offering *Offering) Seats() int {
	return max(offering.Capacity-len(offering.Enrolled), 0)
}

// Enroll appends the student to the roster. The simulation engine never calls it.
func (offering *Offering) Enroll(student *Student) error {
	if offering.Full() {
		return fmt.Errorf("%w: %v for course %v (capacity %d)", ErrOfferingFull, offering.Id, offering.Course.Name, offering.Capacity)
	}
	offering.Enrolled = append(offering.Enrolled, student)
	return nil
}

func (offering *Offering) ConflictsWith(other *Offering) bool {
	return offering.Schedule.ConflictsWith(other.Schedule)
}

func (offering *Offering) Priority() int {
	return offering.Course.Priority()
}

func (offering *Offering) String() string {
	return fmt.Sprintf("%v [%v] %v", offering.Id, offering.Course.Code, offering.Schedule)
}
