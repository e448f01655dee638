package values

import (
	"fmt"

	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
)

// FirstModelYear is the year the first production automobile was patented.
const FirstModelYear = 1886

// ModelYear is a car's model year, never earlier than FirstModelYear.
type ModelYear struct {
	value int
}

// NewModelYear creates a ModelYear with validation
func NewModelYear(year int) (ModelYear, error) {
	if year < FirstModelYear {
		return ModelYear{}, domainerrors.NewValidationError("year", domainerrors.RuleMinYear,
			fmt.Sprintf("invalid year %d: must be %d or later", year, FirstModelYear))
	}
	return ModelYear{value: year}, nil
}

// Int returns the numeric year
func (y ModelYear) Int() int {
	return y.value
}

// String returns the string representation
func (y ModelYear) String() string {
	return fmt.Sprintf("%d", y.value)
}
