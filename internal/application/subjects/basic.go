package subjects

import (
	"fmt"

	"github.com/encapsulab/encapsulab/internal/domain/entities"
)

type counterSubject struct {
	counter *entities.Counter
}

func newCounterSubject(_ Args) (Subject, error) {
	return &counterSubject{counter: entities.NewCounter()}, nil
}

func (s *counterSubject) Kind() string { return "counter" }

func (s *counterSubject) Invoke(op string, _ Args) (interface{}, error) {
	switch op {
	case "increment":
		return s.counter.Increment(), nil
	case "count":
		return s.counter.Count(), nil
	default:
		return nil, unknownOperation(s.Kind(), op)
	}
}

func (s *counterSubject) Snapshot() map[string]interface{} {
	return map[string]interface{}{"count": s.counter.Count()}
}

type personSubject struct {
	person *entities.Person
}

func newPersonSubject(args Args) (Subject, error) {
	name, err := args.StringOr("name", "")
	if err != nil {
		return nil, err
	}
	return &personSubject{person: entities.NewPerson(name)}, nil
}

func (s *personSubject) Kind() string { return "person" }

func (s *personSubject) Invoke(op string, args Args) (interface{}, error) {
	switch op {
	case "name":
		return s.person.Name(), nil
	case "set_name":
		name, err := args.String("name")
		if err != nil {
			return nil, err
		}
		s.person.SetName(name)
		return s.person.Name(), nil
	default:
		return nil, unknownOperation(s.Kind(), op)
	}
}

func (s *personSubject) Snapshot() map[string]interface{} {
	return map[string]interface{}{"name": s.person.Name()}
}

type carSubject struct {
	car *entities.Car
}

func newCarSubject(args Args) (Subject, error) {
	manufacturer, err := args.String("make")
	if err != nil {
		return nil, err
	}
	model, err := args.String("model")
	if err != nil {
		return nil, err
	}
	year, err := args.Int("year")
	if err != nil {
		return nil, err
	}
	car, err := entities.NewCar(manufacturer, model, year)
	if err != nil {
		return nil, err
	}
	return &carSubject{car: car}, nil
}

func (s *carSubject) Kind() string { return "car" }

// Car exposes no mutators; describe is the only operation.
func (s *carSubject) Invoke(op string, _ Args) (interface{}, error) {
	if op != "describe" {
		return nil, unknownOperation(s.Kind(), op)
	}
	return fmt.Sprintf("%d %s %s", s.car.Year(), s.car.Make(), s.car.Model()), nil
}

func (s *carSubject) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"make":  s.car.Make(),
		"model": s.car.Model(),
		"year":  s.car.Year(),
	}
}

type studentSubject struct {
	student *entities.Student
}

func newStudentSubject(args Args) (Subject, error) {
	name, err := args.String("name")
	if err != nil {
		return nil, err
	}
	grade, err := args.Int("grade")
	if err != nil {
		return nil, err
	}
	student, err := entities.NewStudent(name, grade)
	if err != nil {
		return nil, err
	}
	return &studentSubject{student: student}, nil
}

func (s *studentSubject) Kind() string { return "student" }

func (s *studentSubject) Invoke(op string, args Args) (interface{}, error) {
	switch op {
	case "set_grade":
		grade, err := args.Int("grade")
		if err != nil {
			return nil, err
		}
		if err := s.student.SetGrade(grade); err != nil {
			return nil, err
		}
		return s.student.Grade(), nil
	case "passed":
		return s.student.Passed(), nil
	default:
		return nil, unknownOperation(s.Kind(), op)
	}
}

func (s *studentSubject) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"name":   s.student.Name(),
		"grade":  s.student.Grade(),
		"passed": s.student.Passed(),
	}
}
