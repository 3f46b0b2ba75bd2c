// Package currency implements a MoneyAmount type used to represent
// a monetary amount defined by the following properties:
//
// - amount, in the lowest denominator form, eg. cents for USD.
//
// - currency code, the 3 uppercased ASCII letters shorthand for
// the currency, eg. USD for United States Dollar.
//
// The amount always has 2 decimals. Arithmetic that produces
// fractional minor units is rounded to an integer using one
// of the RoundingMethod values, RoundHalfUp by default.
//
// A MoneyAmount is immutable: every operation returns a new value.
package currency
