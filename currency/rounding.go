package currency

import (
	"encoding"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ensure RoundingMethod implements text marshaller and unmarshaler interface.
	_ encoding.TextMarshaler   = RoundingMethod(0)
	_ encoding.TextUnmarshaler = (*RoundingMethod)(nil)
)

// RoundingMethod selects how fractional minor units are
// turned into an integer amount.
//
// The zero value is not a valid method.
type RoundingMethod int

// Available rounding methods.
const (
	// RoundDown rounds toward negative infinity.
	RoundDown RoundingMethod = iota + 1
	// RoundHalfDown rounds to the nearest integer, ties toward zero.
	RoundHalfDown
	// RoundHalfUp rounds to the nearest integer, ties away from zero.
	RoundHalfUp
	// RoundUp rounds toward positive infinity.
	RoundUp
)

// DefaultRoundingMethod is used by every rounding operation
// unless WithRoundingMethod is given.
const DefaultRoundingMethod = RoundHalfUp

var roundingMethodNames = map[RoundingMethod]string{
	RoundDown:     "DOWN",
	RoundHalfDown: "HALF_DOWN",
	RoundHalfUp:   "HALF_UP",
	RoundUp:       "UP",
}

// ParseRoundingMethod returns the method named s.
// Valid names are DOWN, HALF_DOWN, HALF_UP and UP.
func ParseRoundingMethod(s string) (RoundingMethod, error) {
	for m, name := range roundingMethodNames {
		if name == s {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: \"%s\"", ErrInvalidRoundingMethod, s)
}

// IsValid reports whether m is one of the declared methods.
func (m RoundingMethod) IsValid() bool {
	_, ok := roundingMethodNames[m]

	return ok
}

func (m RoundingMethod) String() string {
	if name, ok := roundingMethodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("RoundingMethod(%d)", int(m))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (m RoundingMethod) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoundingMethod, m)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *RoundingMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseRoundingMethod(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

var (
	half = decimal.New(5, -1)

	minMinorUnits = decimal.NewFromInt(math.MinInt64)
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
)

// round applies m to value and returns the integer minor units.
func round(value decimal.Decimal, m RoundingMethod) (int64, error) {
	var rounded decimal.Decimal

	switch m {
	case RoundDown:
		rounded = value.Floor()

	case RoundHalfDown:
		truncated := value.Truncate(0)

		if value.Sub(truncated).Abs().Equal(half) {
			rounded = truncated
		} else {
			rounded = value.Round(0)
		}

	case RoundHalfUp:
		rounded = value.Round(0)

	case RoundUp:
		rounded = value.Ceil()

	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidRoundingMethod, m)
	}

	return toMinorUnits(rounded)
}

// toMinorUnits converts an integral decimal to int64.
func toMinorUnits(d decimal.Decimal) (int64, error) {
	if d.LessThan(minMinorUnits) || d.GreaterThan(maxMinorUnits) {
		return 0, ErrOverflow
	}

	return d.IntPart(), nil
}

// decimalFromFloat rejects NaN and infinities,
// which decimal.NewFromFloat panics on.
func decimalFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: non-finite float %v", ErrInvalidValue, f)
	}

	return decimal.NewFromFloat(f), nil
}
