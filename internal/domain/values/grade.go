package values

import (
	"fmt"

	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
)

const (
	MinGrade     = 0
	MaxGrade     = 100
	PassingGrade = 60
)

// Grade is an exam score between MinGrade and MaxGrade inclusive.
type Grade struct {
	value int
}

// NewGrade creates a Grade with validation
func NewGrade(score int) (Grade, error) {
	if score < MinGrade || score > MaxGrade {
		return Grade{}, domainerrors.NewValidationError("grade", domainerrors.RuleRange,
			fmt.Sprintf("grade %d is out of range [%d, %d]", score, MinGrade, MaxGrade))
	}
	return Grade{value: score}, nil
}

// Int returns the numeric score
func (g Grade) Int() int {
	return g.value
}

// IsPassing returns true if the grade meets PassingGrade
func (g Grade) IsPassing() bool {
	return g.value >= PassingGrade
}

// IsHigherThan returns true if this grade is higher than the other
func (g Grade) IsHigherThan(other Grade) bool {
	return g.value > other.value
}
