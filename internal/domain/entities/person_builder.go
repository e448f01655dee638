package entities

import (
	"errors"

	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
	"github.com/encapsulab/encapsulab/internal/domain/values"
)

// PersonBuilder accumulates the fields of an ImmutablePerson across chained
// calls. Nothing is validated until Build, which checks every field in one
// pass. A builder is single-use: once Build has produced a person, further
// Build calls fail with ErrInvalidState.
type PersonBuilder struct {
	name    string
	age     int
	hobbies []string
	hasName bool
	built   bool
}

// NewPersonBuilder returns an empty builder.
func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{}
}

// Name sets the candidate name.
func (b *PersonBuilder) Name(name string) *PersonBuilder {
	b.name = name
	b.hasName = true
	return b
}

// Age sets the candidate age.
func (b *PersonBuilder) Age(years int) *PersonBuilder {
	b.age = years
	return b
}

// Hobbies replaces the candidate hobbies with a copy of hobbies.
func (b *PersonBuilder) Hobbies(hobbies ...string) *PersonBuilder {
	b.hobbies = copyStrings(hobbies)
	return b
}

// AddHobby appends a single hobby.
func (b *PersonBuilder) AddHobby(hobby string) *PersonBuilder {
	b.hobbies = append(b.hobbies, hobby)
	return b
}

// Build validates the accumulated fields and produces the person. On failure
// no person is returned and the error is a *domainerrors.StateError whose
// cause lists every invalid field.
func (b *PersonBuilder) Build() (*ImmutablePerson, error) {
	if b.built {
		return nil, domainerrors.NewStateError("build", domainerrors.RuleFinalized,
			"builder already finalized", nil)
	}

	var problems []error

	name, err := values.NewName("name", b.name)
	if err != nil {
		problems = append(problems, err)
	}
	age, err := values.NewAge(b.age)
	if err != nil {
		problems = append(problems, err)
	}

	if len(problems) > 0 {
		rule, _ := domainerrors.RuleOf(problems[0])
		message := "invalid person"
		if !b.hasName {
			message = "name was never set"
		}
		return nil, domainerrors.NewStateError("build", rule, message, errors.Join(problems...))
	}

	b.built = true
	return &ImmutablePerson{
		name:    name,
		age:     age,
		hobbies: copyStrings(b.hobbies),
	}, nil
}
