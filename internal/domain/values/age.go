package values

import (
	"fmt"

	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
)

// Age is a non-negative age in whole years.
type Age struct {
	value int
}

// NewAge creates an Age with validation
func NewAge(years int) (Age, error) {
	if years < 0 {
		return Age{}, domainerrors.NewValidationError("age", domainerrors.RuleNonNegative,
			fmt.Sprintf("age cannot be negative: %d", years))
	}
	return Age{value: years}, nil
}

// Int returns the age in years
func (a Age) Int() int {
	return a.value
}
