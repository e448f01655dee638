package values

import (
	"testing"

	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewModelYear(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{"first model year", 1886, false},
		{"modern", 2024, false},
		{"one year too early", 1885, true},
		{"zero", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := NewModelYear(tt.year)
			if tt.wantErr {
				require.Error(t, err)
				rule, _ := domainerrors.RuleOf(err)
				assert.Equal(t, domainerrors.RuleMinYear, rule)
				assert.Contains(t, err.Error(), "invalid year")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.year, y.Int())
			}
		})
	}
}

func Test_NewAge(t *testing.T) {
	a, err := NewAge(0)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Int())

	_, err = NewAge(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	assert.EqualError(t, err, "age: age cannot be negative: -1")
}

func Test_NewGrade(t *testing.T) {
	for _, score := range []int{0, 59, 60, 100} {
		_, err := NewGrade(score)
		assert.NoError(t, err, "score %d", score)
	}
	for _, score := range []int{-1, 101} {
		_, err := NewGrade(score)
		require.Error(t, err, "score %d", score)
		rule, _ := domainerrors.RuleOf(err)
		assert.Equal(t, domainerrors.RuleRange, rule)
	}
}

func Test_Grade_Ordering(t *testing.T) {
	low, _ := NewGrade(59)
	high, _ := NewGrade(60)

	assert.False(t, low.IsPassing())
	assert.True(t, high.IsPassing())
	assert.True(t, high.IsHigherThan(low))
	assert.False(t, low.IsHigherThan(high))
}
