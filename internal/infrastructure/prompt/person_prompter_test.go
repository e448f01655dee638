package prompt

import (
	"testing"

	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Prompt itself needs a TTY; the validators and parsers it relies on are
// tested directly.

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ada"))
	assert.ErrorIs(t, ValidateName("   "), domainerrors.ErrInvalidArgument)
}

func TestValidateAge(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr string
	}{
		{"0", ""},
		{" 42 ", ""},
		{"-1", "age cannot be negative"},
		{"forty", "whole number"},
		{"", "whole number"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			err := ValidateAge(tt.raw)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPersonDraft(t *testing.T) {
	draft := PersonDraft{Name: "Ada", Age: "36", Hobbies: " chess, ,maths ,"}

	age, err := draft.AgeValue()
	require.NoError(t, err)
	assert.Equal(t, 36, age)
	assert.Equal(t, []string{"chess", "maths"}, draft.HobbyList())

	assert.Nil(t, PersonDraft{}.HobbyList())
}
