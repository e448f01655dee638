package values

import (
	"encoding/json"
	"fmt"
	"strings"

	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
)

// Name is a non-empty, trimmed label such as a person's name or a car make.
type Name struct {
	value string
}

// NewName creates a Name for the given field, trimming surrounding whitespace.
// The field is reported in the error so callers can tell "make" from "model".
func NewName(field, raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, domainerrors.NewValidationError(field, domainerrors.RuleRequired,
			fmt.Sprintf("%s cannot be empty", field))
	}
	return Name{value: trimmed}, nil
}

// MustNewName creates a Name or panics (for tests/constants)
func MustNewName(field, raw string) Name {
	n, err := NewName(field, raw)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the string representation
func (n Name) String() string {
	return n.value
}

// IsEmpty returns true if this is the zero value
func (n Name) IsEmpty() bool {
	return n.value == ""
}

// Equals checks if two names are equal
func (n Name) Equals(other Name) bool {
	return n.value == other.value
}

// MarshalJSON implements json.Marshaler
func (n Name) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Name) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid name JSON: %w", err)
	}

	name, err := NewName("name", s)
	if err != nil {
		return err
	}
	*n = name
	return nil
}
