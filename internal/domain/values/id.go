// Package values contains domain value objects that wrap primitive types
// with validation, so an invalid value can never be constructed.
package values

import (
	"fmt"

	"github.com/google/uuid"
)

// EntityID identifies an entity instance such as a bank account.
type EntityID struct {
	value uuid.UUID
}

// NewEntityID creates a new random entity ID
func NewEntityID() EntityID {
	return EntityID{value: uuid.New()}
}

// ParseEntityID parses a string into an EntityID
func ParseEntityID(s string) (EntityID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return EntityID{}, fmt.Errorf("invalid entity ID: %w", err)
	}
	return EntityID{value: id}, nil
}

// String returns the string representation
func (e EntityID) String() string {
	return e.value.String()
}

// IsZero returns true if this is the zero value
func (e EntityID) IsZero() bool {
	return e.value == uuid.Nil
}

// Equals checks if two EntityIDs are equal
func (e EntityID) Equals(other EntityID) bool {
	return e.value == other.value
}

// RunID uniquely identifies one execution of a walkthrough.
type RunID struct {
	value uuid.UUID
}

// NewRunID creates a new random run ID
func NewRunID() RunID {
	return RunID{value: uuid.New()}
}

// ParseRunID parses a string into a RunID
func ParseRunID(s string) (RunID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RunID{}, fmt.Errorf("invalid run ID: %w", err)
	}
	return RunID{value: id}, nil
}

// MustParseRunID parses a string or panics (for tests only)
func MustParseRunID(s string) RunID {
	id, err := ParseRunID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the string representation
func (r RunID) String() string {
	return r.value.String()
}

// UUID returns the underlying uuid.UUID
func (r RunID) UUID() uuid.UUID {
	return r.value
}

// IsZero returns true if this is the zero value
func (r RunID) IsZero() bool {
	return r.value == uuid.Nil
}

// Equals checks if two RunIDs are equal
func (r RunID) Equals(other RunID) bool {
	return r.value == other.value
}

// MarshalJSON implements json.Marshaler
func (r RunID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.value.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (r *RunID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 {
		return fmt.Errorf("invalid run ID JSON")
	}
	s = s[1 : len(s)-1]

	id, err := ParseRunID(s)
	if err != nil {
		return err
	}
	*r = id
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (r RunID) MarshalYAML() (interface{}, error) {
	return r.value.String(), nil
}
