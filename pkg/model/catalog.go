package model

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateCourse   = errors.New("duplicate course")
	ErrDuplicateOffering = errors.New("duplicate offering")
	ErrDuplicateStudent  = errors.New("duplicate student")
	ErrUnknownCourse     = errors.New("unknown course")
	ErrUnknownOffering   = errors.New("unknown offering")
	ErrUnknownStudent    = errors.New("unknown student")
)

// Catalog holds the append-only course and offering registries plus the student repository of one simulated run.
// Registries keep insertion order so that listings are deterministic.
type Catalog struct {
	courses      map[string]*Course
	courseOrder  []string
	offerings    map[string]*Offering
	offerOrder   []string
	students     map[string]*Student
	studentOrder []string
}

func NewCatalog() *Catalog {
	return &Catalog{
		courses:   make(map[string]*Course),
		offerings: make(map[string]*Offering),
		students:  make(map[string]*Student),
	}
}

func (catalog *Catalog) AddCourse(course *Course) error {
	if course.Code == "" {
		return fmt.Errorf("course code must not be empty")
	} else if course.WeeklyHours <= 0 {
		return fmt.Errorf("course %v must have positive weekly hours: %d", course.Code, course.WeeklyHours)
	} else if _, ok := Categories[course.Category]; !ok {
		return fmt.Errorf("course %v has an unknown category: %d", course.Code, int(course.Category))
	} else if _, ok := catalog.courses[course.Code]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateCourse, course.Code)
	}
	catalog.courses[course.Code] = course
	catalog.courseOrder = append(catalog.courseOrder, course.Code)
	return nil
}

func (catalog *Catalog) Course(code string) (*Course, bool) {
	course, ok := catalog.courses[code]
	return course, ok
}

func (catalog *Catalog) Courses() []*Course {
	courses := make([]*Course, 0, len(catalog.courseOrder))
	for _, code := range catalog.courseOrder {
		courses = append(courses, catalog.courses[code])
	}
	return courses
}

// LinkCoRequisites makes each course a co-requisite of the other
func (catalog *Catalog) LinkCoRequisites(code1, code2 string) error {
	course1, ok := catalog.courses[code1]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCourse, code1)
	}
	course2, ok := catalog.courses[code2]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCourse, code2)
	}
	course1.AddCoRequisite(course2)
	course2.AddCoRequisite(course1)
	return nil
}

// NewOffering creates an offering for a catalog course and registers it
func (catalog *Catalog) NewOffering(id, courseCode string, schedule Schedule, capacity int) (*Offering, error) {
	course, ok := catalog.courses[courseCode]
	if !ok {
		return nil, fmt.Errorf("offering %v: %w: %v", id, ErrUnknownCourse, courseCode)
	}
	offering := &Offering{
		Id:       id,
		Course:   course,
		Schedule: schedule,
		Capacity: capacity,
		Enrolled: make([]*Student, 0),
	}
	if err := catalog.AddOffering(offering); err != nil {
		return nil, err
	}
	return offering, nil
}

func (catalog *Catalog) AddOffering(offering *Offering) error {
	if offering.Id == "" {
		return fmt.Errorf("offering id must not be empty")
	} else if offering.Capacity <= 0 {
		return fmt.Errorf("offering %v must have positive capacity: %d", offering.Id, offering.Capacity)
	} else if offering.Course == nil {
		return fmt.Errorf("offering %v has no course", offering.Id)
	} else if _, ok := catalog.courses[offering.Course.Code]; !ok {
		return fmt.Errorf("offering %v: %w: %v", offering.Id, ErrUnknownCourse, offering.Course.Code)
	} else if _, ok := catalog.offerings[offering.Id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateOffering, offering.Id)
	}
	catalog.offerings[offering.Id] = offering
	catalog.offerOrder = append(catalog.offerOrder, offering.Id)
	return nil
}

func (catalog *Catalog) Offering(id string) (*Offering, bool) {
	offering, ok := catalog.offerings[id]
	return offering, ok
}

func (catalog *Catalog) Offerings() []*Offering {
	offerings := make([]*Offering, 0, len(catalog.offerOrder))
	for _, id := range catalog.offerOrder {
		offerings = append(offerings, catalog.offerings[id])
	}
	return offerings
}

func (catalog *Catalog) AddStudent(student *Student) error {
	if student.Id == "" {
		return fmt.Errorf("student id must not be empty")
	} else if student.WeeklyHourCap <= 0 {
		return fmt.Errorf("student %v must have a positive weekly hour cap: %d", student.Id, student.WeeklyHourCap)
	} else if _, ok := catalog.students[student.Id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateStudent, student.Id)
	}
	catalog.students[student.Id] = student
	catalog.studentOrder = append(catalog.studentOrder, student.Id)
	return nil
}

func (catalog *Catalog) Student(id string) (*Student, bool) {
	student, ok := catalog.students[id]
	return student, ok
}

func (catalog *Catalog) Students() []*Student {
	students := make([]*Student, 0, len(catalog.studentOrder))
	for _, id := range catalog.studentOrder {
		students = append(students, catalog.students[id])
	}
	return students
}

// PlanFor resolves offering ids and replaces the student's plan. Nothing changes when an id is unknown.
func (catalog *Catalog) PlanFor(studentId string, offeringIds ...string) error {
	student, ok := catalog.students[studentId]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownStudent, studentId)
	}
	offerings := make([]*Offering, 0, len(offeringIds))
	for _, id := range offeringIds {
		offering, ok := catalog.offerings[id]
		if !ok {
			return fmt.Errorf("plan for %v: %w: %v", studentId, ErrUnknownOffering, id)
		}
		offerings = append(offerings, offering)
	}
	student.Plan(offerings...)
	return nil
}
