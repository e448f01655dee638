package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Status_Precedence(t *testing.T) {
	tests := []struct {
		status     Status
		precedence int
	}{
		{StatusFail, 3},
		{StatusError, 2},
		{StatusSkipped, 1},
		{StatusPass, 0},
		{Status("unknown"), -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.precedence, tt.status.Precedence())
		})
	}
}

func Test_Status_Predicates(t *testing.T) {
	assert.True(t, StatusFail.IsFailure())
	assert.True(t, StatusError.IsFailure())
	assert.False(t, StatusPass.IsFailure())
	assert.False(t, StatusSkipped.IsFailure())

	assert.True(t, StatusPass.IsSuccess())
	assert.False(t, StatusSkipped.IsSuccess())
}

func Test_Status_Validate(t *testing.T) {
	for _, s := range []Status{StatusPass, StatusFail, StatusError, StatusSkipped} {
		assert.NoError(t, s.Validate())
	}
	assert.EqualError(t, Status("maybe").Validate(), "invalid status: maybe")
}

func Test_Status_Worst(t *testing.T) {
	assert.Equal(t, StatusFail, StatusPass.Worst(StatusFail))
	assert.Equal(t, StatusFail, StatusFail.Worst(StatusError))
	assert.Equal(t, StatusError, StatusSkipped.Worst(StatusError))
	assert.Equal(t, StatusPass, StatusPass.Worst(StatusPass))
}
