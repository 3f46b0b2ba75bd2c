package currency

import (
	"errors"
)

var (
	// ErrInvalidCurrency is returned when a currency code is not
	// formed of exactly 3 uppercased ASCII letters.
	ErrInvalidCurrency = errors.New("invalid currency code format " +
		"(expected 3 uppercased ASCII letters)")

	// ErrInvalidRoundingMethod is returned when an unknown
	// rounding method is used.
	ErrInvalidRoundingMethod = errors.New("invalid rounding method")

	// ErrDivisionByZero is returned by Divide when the divider is zero.
	ErrDivisionByZero = errors.New(
		"cannot divide money amount: divider equals zero",
	)

	// ErrCurrencyMismatch is returned when an operation
	// requires two amounts of the same currency.
	ErrCurrencyMismatch = errors.New("currency codes don't match")

	// ErrOverflow is returned when a result does not fit
	// in an int64 amount of minor units.
	ErrOverflow = errors.New("amount overflows int64 minor units")

	// ErrInvalidValue is returned when an unexpected value
	// is given to a constructor or an operation.
	ErrInvalidValue = errors.New("invalid value")
)
