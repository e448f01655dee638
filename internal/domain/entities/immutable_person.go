package entities

import (
	"github.com/encapsulab/encapsulab/internal/domain/values"
)

// ImmutablePerson never changes after construction. Build one with
// PersonBuilder. Because its state is fixed it can be read from any number of
// goroutines without coordination.
//
// Invariants:
// - name is non-empty
// - age >= 0
// - the hobbies slice is never shared with a caller
type ImmutablePerson struct {
	name    values.Name
	age     values.Age
	hobbies []string
}

// Name returns the person's name.
func (p *ImmutablePerson) Name() string {
	return p.name.String()
}

// Age returns the person's age in years.
func (p *ImmutablePerson) Age() int {
	return p.age.Int()
}

// Hobbies returns a copy of the person's hobbies.
func (p *ImmutablePerson) Hobbies() []string {
	return copyStrings(p.hobbies)
}

// HasHobby reports whether hobby is among the person's hobbies.
func (p *ImmutablePerson) HasHobby(hobby string) bool {
	for _, h := range p.hobbies {
		if h == hobby {
			return true
		}
	}
	return false
}

// WithAge returns a new person with the given age; p is unchanged.
func (p *ImmutablePerson) WithAge(years int) (*ImmutablePerson, error) {
	a, err := values.NewAge(years)
	if err != nil {
		return nil, err
	}
	return &ImmutablePerson{name: p.name, age: a, hobbies: copyStrings(p.hobbies)}, nil
}

// WithHobby returns a new person with hobby appended; p is unchanged.
func (p *ImmutablePerson) WithHobby(hobby string) *ImmutablePerson {
	hobbies := make([]string, 0, len(p.hobbies)+1)
	hobbies = append(hobbies, p.hobbies...)
	hobbies = append(hobbies, hobby)
	return &ImmutablePerson{name: p.name, age: p.age, hobbies: hobbies}
}

// copyStrings returns an independent copy of src, preserving nil.
func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
