package subjects

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Args holds decoded step arguments. YAML numbers arrive as int, int64,
// uint64 or float64 depending on the decoder, so accessors accept all of them.
type Args map[string]interface{}

// String returns a required string argument. Numbers are formatted.
func (a Args) String(key string) (string, error) {
	v, ok := a[key]
	if !ok {
		return "", missing(key)
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case int, int64, uint64, float64:
		return fmt.Sprint(t), nil
	default:
		return "", wrongType(key, "a string", v)
	}
}

// StringOr returns a string argument or fallback when absent.
func (a Args) StringOr(key, fallback string) (string, error) {
	if _, ok := a[key]; !ok {
		return fallback, nil
	}
	return a.String(key)
}

// Int returns a required integer argument.
func (a Args) Int(key string) (int, error) {
	v, ok := a[key]
	if !ok {
		return 0, missing(key)
	}
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case uint64:
		if t > math.MaxInt32 {
			return 0, fmt.Errorf("argument %q is too large: %d", key, t)
		}
		return int(t), nil
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("argument %q must be a whole number, got %v", key, t)
		}
		if t < math.MinInt32 || t > math.MaxInt32 {
			return 0, fmt.Errorf("argument %q is out of range: %v", key, t)
		}
		return int(t), nil
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, fmt.Errorf("argument %q must be an integer: %w", key, err)
		}
		return n, nil
	default:
		return 0, wrongType(key, "an integer", v)
	}
}

// IntOr returns an integer argument or fallback when absent.
func (a Args) IntOr(key string, fallback int) (int, error) {
	if _, ok := a[key]; !ok {
		return fallback, nil
	}
	return a.Int(key)
}

// Decimal returns a required decimal argument. Strings keep exact precision.
func (a Args) Decimal(key string) (decimal.Decimal, error) {
	v, ok := a[key]
	if !ok {
		return decimal.Zero, missing(key)
	}
	switch t := v.(type) {
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Zero, fmt.Errorf("argument %q must be a number: %w", key, err)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case uint64:
		return decimal.NewFromUint64(t), nil
	case float64:
		return decimal.NewFromFloat(t), nil
	default:
		return decimal.Zero, wrongType(key, "a number", v)
	}
}

// DecimalOr returns a decimal argument or fallback when absent.
func (a Args) DecimalOr(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if _, ok := a[key]; !ok {
		return fallback, nil
	}
	return a.Decimal(key)
}

// Strings returns an optional list of strings; absent yields nil.
func (a Args) Strings(key string) ([]string, error) {
	v, ok := a[key]
	if !ok {
		return nil, nil
	}
	switch t := v.(type) {
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out, nil
	case []interface{}:
		out := make([]string, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("argument %q item %d must be a string, got %T", key, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, wrongType(key, "a list of strings", v)
	}
}

func missing(key string) error {
	return fmt.Errorf("missing argument %q", key)
}

func wrongType(key, want string, got interface{}) error {
	return fmt.Errorf("argument %q must be %s, got %T", key, want, got)
}
