// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError indicates a walkthrough file failed validation.
type ValidationError struct {
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s (%d issues):\n  - %s",
		e.Field, e.Message, len(e.Details), strings.Join(e.Details, "\n  - "))
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// StepError indicates a step could not be executed at all, as opposed to a
// domain operation that ran and reported an invariant violation.
type StepError struct {
	Cause   error
	StepID  string
	Message string
}

func (e *StepError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("step %s: %s: %v", e.StepID, e.Message, e.Cause)
	}
	return fmt.Sprintf("step %s: %s", e.StepID, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// NewStepError creates a new step error.
func NewStepError(stepID, message string, cause error) *StepError {
	return &StepError{
		StepID:  stepID,
		Message: message,
		Cause:   cause,
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
