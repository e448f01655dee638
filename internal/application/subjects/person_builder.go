package subjects

import (
	"github.com/encapsulab/encapsulab/internal/domain/entities"
)

// personBuilderSubject drives a PersonBuilder. After a successful build the
// produced person is retained and its query operations become available.
type personBuilderSubject struct {
	builder *entities.PersonBuilder
	person  *entities.ImmutablePerson
}

func newPersonBuilderSubject(_ Args) (Subject, error) {
	return &personBuilderSubject{builder: entities.NewPersonBuilder()}, nil
}

func (s *personBuilderSubject) Kind() string { return "person_builder" }

func (s *personBuilderSubject) Invoke(op string, args Args) (interface{}, error) {
	switch op {
	case "name":
		name, err := args.String("name")
		if err != nil {
			return nil, err
		}
		s.builder.Name(name)
		return nil, nil
	case "age":
		age, err := args.Int("age")
		if err != nil {
			return nil, err
		}
		s.builder.Age(age)
		return nil, nil
	case "hobbies":
		hobbies, err := args.Strings("hobbies")
		if err != nil {
			return nil, err
		}
		s.builder.Hobbies(hobbies...)
		return nil, nil
	case "add_hobby":
		hobby, err := args.String("hobby")
		if err != nil {
			return nil, err
		}
		s.builder.AddHobby(hobby)
		return nil, nil
	case "build":
		person, err := s.builder.Build()
		if err != nil {
			return nil, err
		}
		s.person = person
		return personState(person), nil
	}
	if s.person != nil {
		return invokePerson(s.Kind(), s.person, op, args)
	}
	return nil, unknownOperation(s.Kind(), op)
}

func (s *personBuilderSubject) Snapshot() map[string]interface{} {
	if s.person == nil {
		return map[string]interface{}{"built": false}
	}
	state := personState(s.person)
	state["built"] = true
	return state
}

// immutablePersonSubject builds a person in a single creation step.
type immutablePersonSubject struct {
	person *entities.ImmutablePerson
}

func newImmutablePersonSubject(args Args) (Subject, error) {
	builder := entities.NewPersonBuilder()
	if _, ok := args["name"]; ok {
		name, err := args.String("name")
		if err != nil {
			return nil, err
		}
		builder.Name(name)
	}
	age, err := args.IntOr("age", 0)
	if err != nil {
		return nil, err
	}
	hobbies, err := args.Strings("hobbies")
	if err != nil {
		return nil, err
	}
	person, err := builder.Age(age).Hobbies(hobbies...).Build()
	if err != nil {
		return nil, err
	}
	return &immutablePersonSubject{person: person}, nil
}

func (s *immutablePersonSubject) Kind() string { return "immutable_person" }

func (s *immutablePersonSubject) Invoke(op string, args Args) (interface{}, error) {
	return invokePerson(s.Kind(), s.person, op, args)
}

func (s *immutablePersonSubject) Snapshot() map[string]interface{} {
	return personState(s.person)
}

// invokePerson runs a query on an immutable person. The With* operations
// return the derived person's state and leave the original untouched.
func invokePerson(kind string, person *entities.ImmutablePerson, op string, args Args) (interface{}, error) {
	switch op {
	case "has_hobby":
		hobby, err := args.String("hobby")
		if err != nil {
			return nil, err
		}
		return person.HasHobby(hobby), nil
	case "hobbies":
		return toInterfaces(person.Hobbies()), nil
	case "with_age":
		age, err := args.Int("age")
		if err != nil {
			return nil, err
		}
		derived, err := person.WithAge(age)
		if err != nil {
			return nil, err
		}
		return personState(derived), nil
	case "with_hobby":
		hobby, err := args.String("hobby")
		if err != nil {
			return nil, err
		}
		return personState(person.WithHobby(hobby)), nil
	default:
		return nil, unknownOperation(kind, op)
	}
}

func personState(person *entities.ImmutablePerson) map[string]interface{} {
	return map[string]interface{}{
		"name":    person.Name(),
		"age":     person.Age(),
		"hobbies": toInterfaces(person.Hobbies()),
	}
}

// toInterfaces widens a string slice so expressions can use it with the
// built-in collection functions. A nil slice becomes empty.
func toInterfaces(items []string) []interface{} {
	out := make([]interface{}, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}
