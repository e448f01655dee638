// Package domainerrors defines the invariant violations raised by domain
// value objects and entities.
//
// Every violation is one of two kinds. Callers branch with errors.Is against
// ErrInvalidArgument or ErrInvalidState, and with RuleOf to learn which
// invariant was broken.
package domainerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument matches any *ValidationError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState matches any *StateError.
	ErrInvalidState = errors.New("invalid state")
)

// Rule identifies the invariant a violation broke.
type Rule string

const (
	RuleRequired        Rule = "required"
	RulePositive        Rule = "positive"
	RuleNonNegative     Rule = "non_negative"
	RuleSufficientFunds Rule = "sufficient_funds"
	RuleMinYear         Rule = "min_year"
	RuleRange           Rule = "range"
	RuleFinalized       Rule = "finalized"
	RuleNumeric         Rule = "numeric"
)

// ValidationError indicates a supplied value failed a precondition of a
// constructor or mutator.
type ValidationError struct {
	Field   string // Field or argument that failed
	Rule    Rule   // Invariant identifier
	Message string // Human-readable reason
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewValidationError creates a new validation error.
func NewValidationError(field string, rule Rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Rule:    rule,
		Message: message,
	}
}

// StateError indicates an operation was invoked while the receiver's
// accumulated state does not permit it.
type StateError struct {
	Cause     error
	Operation string
	Rule      Rule
	Message   string
}

func (e *StateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Is reports whether target is ErrInvalidState.
func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

func (e *StateError) Unwrap() error {
	return e.Cause
}

// NewStateError creates a new state error.
func NewStateError(operation string, rule Rule, message string, cause error) *StateError {
	return &StateError{
		Operation: operation,
		Rule:      rule,
		Message:   message,
		Cause:     cause,
	}
}

// RuleOf returns the invariant identifier carried by err.
// A StateError reports its own rule, not its cause's.
func RuleOf(err error) (Rule, bool) {
	var stateErr *StateError
	if errors.As(err, &stateErr) {
		return stateErr.Rule, true
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Rule, true
	}
	return "", false
}
