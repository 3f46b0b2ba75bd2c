package currency

import (
	"testing"

	"github.com/matryer/is"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    string
		method   RoundingMethod
		expected int64
	}{
		{value: "1.5", method: RoundHalfUp, expected: 2},
		{value: "-1.5", method: RoundHalfUp, expected: -2},
		{value: "1.5", method: RoundHalfDown, expected: 1},
		{value: "-1.5", method: RoundHalfDown, expected: -1},
		{value: "1.5000001", method: RoundHalfDown, expected: 2},
		{value: "-1.5000001", method: RoundHalfDown, expected: -2},
		{value: "1.4999999", method: RoundHalfUp, expected: 1},
		{value: "1.0000001", method: RoundUp, expected: 2},
		{value: "-1.0000001", method: RoundUp, expected: -1},
		{value: "1.9999999", method: RoundDown, expected: 1},
		{value: "-1.0000001", method: RoundDown, expected: -2},
		{value: "7", method: RoundDown, expected: 7},
		{value: "7", method: RoundUp, expected: 7},
	}

	for _, test := range tests {
		test := test

		t.Run(test.method.String()+"/"+test.value, func(t *testing.T) {
			t.Parallel()

			i := is.New(t)

			got, err := round(decimal.RequireFromString(test.value), test.method)
			i.NoErr(err)

			i.Equal(test.expected, got)
		})
	}

	t.Run("Overflow", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := round(
			decimal.RequireFromString("9223372036854775808"),
			RoundDown,
		)
		i.True(errors.Is(err, ErrOverflow))

		got, err := round(
			decimal.RequireFromString("-9223372036854775808.4"),
			RoundHalfUp,
		)
		i.NoErr(err)
		i.Equal(int64(-9223372036854775808), got)
	})
}
