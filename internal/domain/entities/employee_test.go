package entities_test

import (
	"testing"

	"github.com/encapsulab/encapsulab/internal/domain/entities"
	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
	"github.com/encapsulab/encapsulab/internal/domain/values"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployee(t *testing.T, salary string) *entities.Employee {
	t.Helper()
	e, err := entities.NewEmployee("Grace", values.MustParseMoney(salary))
	require.NoError(t, err)
	return e
}

func TestNewEmployee(t *testing.T) {
	t.Parallel()

	e := newEmployee(t, "50000")
	assert.Equal(t, "Grace", e.Name())
	assert.Equal(t, 0, e.YearsOfService())

	_, err := entities.NewEmployee("", values.ZeroMoney)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestEmployee_GiveRaise(t *testing.T) {
	t.Parallel()

	t.Run("positive raise", func(t *testing.T) {
		e := newEmployee(t, "50000")
		salary, err := e.GiveRaise(decimal.NewFromInt(10))
		require.NoError(t, err)
		assert.Equal(t, "55000.00", salary.String())
	})

	for _, pct := range []int64{0, -5} {
		e := newEmployee(t, "50000")
		salary, err := e.GiveRaise(decimal.NewFromInt(pct))

		require.Error(t, err)
		rule, _ := domainerrors.RuleOf(err)
		assert.Equal(t, domainerrors.RulePositive, rule)
		assert.Equal(t, "50000.00", salary.String())
		assert.Equal(t, "50000.00", e.Salary().String())
	}
}

func TestEmployee_CompleteServiceYear(t *testing.T) {
	t.Parallel()

	e := newEmployee(t, "50000")

	for year := 1; year <= 4; year++ {
		assert.False(t, e.CompleteServiceYear(), "year %d", year)
		assert.Equal(t, "50000.00", e.Salary().String(), "year %d", year)
	}

	assert.True(t, e.CompleteServiceYear())
	assert.Equal(t, 5, e.YearsOfService())
	assert.Equal(t, "52500.00", e.Salary().String())

	for year := 6; year <= 9; year++ {
		assert.False(t, e.CompleteServiceYear(), "year %d", year)
	}
	assert.True(t, e.CompleteServiceYear())
	assert.Equal(t, "55125.00", e.Salary().String())
}

func TestEmployee_CalculateBonus(t *testing.T) {
	t.Parallel()

	e := newEmployee(t, "40000")
	assert.True(t, e.CalculateBonus().IsZero())

	for i := 0; i < 3; i++ {
		e.CompleteServiceYear()
	}
	assert.Equal(t, "12000.00", e.CalculateBonus().String())
	assert.Equal(t, "40000.00", e.Salary().String())
}
