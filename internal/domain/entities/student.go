package entities

import (
	"github.com/encapsulab/encapsulab/internal/domain/values"
)

// Student validates its grade on every write. Not safe for concurrent use.
type Student struct {
	name  values.Name
	grade values.Grade
}

// NewStudent enrols a student with an initial grade.
func NewStudent(name string, grade int) (*Student, error) {
	n, err := values.NewName("name", name)
	if err != nil {
		return nil, err
	}
	g, err := values.NewGrade(grade)
	if err != nil {
		return nil, err
	}
	return &Student{name: n, grade: g}, nil
}

// Name returns the student's name.
func (s *Student) Name() string {
	return s.name.String()
}

// Grade returns the current grade.
func (s *Student) Grade() int {
	return s.grade.Int()
}

// SetGrade replaces the grade; an out-of-range score leaves it unchanged.
func (s *Student) SetGrade(score int) error {
	g, err := values.NewGrade(score)
	if err != nil {
		return err
	}
	s.grade = g
	return nil
}

// Passed reports whether the current grade is a pass.
func (s *Student) Passed() bool {
	return s.grade.IsPassing()
}
