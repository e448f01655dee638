package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	simple := NewValidationError("name", "is required")
	assert.Equal(t, "validation failed: name: is required", simple.Error())

	detailed := NewValidationError("walkthrough", "structure is invalid", "a", "b")
	assert.Equal(t, "validation failed: walkthrough: structure is invalid (2 issues):\n  - a\n  - b", detailed.Error())
}

func TestStepError(t *testing.T) {
	t.Parallel()

	cause := errors.New("unknown operation")
	err := NewStepError("deposit", "cannot invoke", cause)

	assert.Equal(t, "step deposit: cannot invoke: unknown operation", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "step x: boom", NewStepError("x", "boom", nil).Error())
}

func TestConfigurationError(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := NewConfigurationError("walkthrough", "cannot open file", cause)

	assert.Equal(t, "configuration error (walkthrough): cannot open file: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)
}
