package values

import (
	"encoding/json"
	"fmt"

	domainerrors "github.com/encapsulab/encapsulab/internal/domain/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money is a non-negative monetary quantity such as a balance or a salary.
// Values are kept at cent precision.
type Money struct {
	value decimal.Decimal
}

// ZeroMoney is the empty balance.
var ZeroMoney = Money{value: decimal.Zero}

// NewMoney creates Money for the given field, rejecting negative quantities.
func NewMoney(field string, d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, domainerrors.NewValidationError(field, domainerrors.RuleNonNegative,
			fmt.Sprintf("%s cannot be negative", field))
	}
	return Money{value: d.Round(2)}, nil
}

// ParseMoney parses a decimal string such as "1250.50" into Money.
func ParseMoney(field, s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, domainerrors.NewValidationError(field, domainerrors.RuleNumeric,
			fmt.Sprintf("%s is not a number: %q", field, s))
	}
	return NewMoney(field, d)
}

// MustParseMoney parses Money or panics (for tests/constants)
func MustParseMoney(s string) Money {
	m, err := ParseMoney("money", s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the underlying decimal value
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// Float64 returns an inexact float representation, for display and expressions.
func (m Money) Float64() float64 {
	return m.value.InexactFloat64()
}

// String returns the amount with two fractional digits
func (m Money) String() string {
	return m.value.StringFixed(2)
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// Equals checks if two amounts are equal
func (m Money) Equals(other Money) bool {
	return m.value.Equal(other.value)
}

// Add returns the sum of m and a.
func (m Money) Add(a Amount) Money {
	return Money{value: m.value.Add(a.value)}
}

// Sub returns m minus a. It fails with RuleSufficientFunds when a exceeds m,
// leaving m untouched.
func (m Money) Sub(a Amount) (Money, error) {
	if a.value.GreaterThan(m.value) {
		return m, domainerrors.NewValidationError("amount", domainerrors.RuleSufficientFunds, "insufficient funds")
	}
	return Money{value: m.value.Sub(a.value)}, nil
}

// Increase returns m raised by the given percentage.
func (m Money) Increase(p Percentage) Money {
	return Money{value: m.value.Add(m.value.Mul(p.Fraction())).Round(2)}
}

// Scale returns m multiplied by num/den, rounded to cents. den must be non-zero.
func (m Money) Scale(num, den int64) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(num)).Div(decimal.NewFromInt(den)).Round(2)}
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid money JSON: %w", err)
	}
	parsed, err := NewMoney("money", d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Amount is a strictly positive quantity moved by a deposit or withdrawal.
type Amount struct {
	value decimal.Decimal
}

// NewAmount creates an Amount, rejecting zero and negative values.
func NewAmount(d decimal.Decimal) (Amount, error) {
	if !d.IsPositive() {
		return Amount{}, domainerrors.NewValidationError("amount", domainerrors.RulePositive, "amount must be positive")
	}
	return Amount{value: d.Round(2)}, nil
}

// ParseAmount parses a decimal string into an Amount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, domainerrors.NewValidationError("amount", domainerrors.RuleNumeric,
			fmt.Sprintf("amount is not a number: %q", s))
	}
	return NewAmount(d)
}

// MustParseAmount parses an Amount or panics (for tests/constants)
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the underlying decimal value
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// String returns the amount with two fractional digits
func (a Amount) String() string {
	return a.value.StringFixed(2)
}

// Percentage is a strictly positive percentage, e.g. 5 for five percent.
type Percentage struct {
	value decimal.Decimal
}

// NewPercentage creates a Percentage, rejecting zero and negative values.
func NewPercentage(d decimal.Decimal) (Percentage, error) {
	if !d.IsPositive() {
		return Percentage{}, domainerrors.NewValidationError("percentage", domainerrors.RulePositive,
			"raise percentage must be positive")
	}
	return Percentage{value: d}, nil
}

// MustNewPercentage creates a Percentage or panics (for tests/constants)
func MustNewPercentage(p int64) Percentage {
	pct, err := NewPercentage(decimal.NewFromInt(p))
	if err != nil {
		panic(err)
	}
	return pct
}

// Fraction returns the percentage as a fraction of one (5 -> 0.05).
func (p Percentage) Fraction() decimal.Decimal {
	return p.value.Div(hundred)
}

// String returns the percentage with a trailing percent sign
func (p Percentage) String() string {
	return p.value.String() + "%"
}
