package currency

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// minorUnitsPerUnit is the number of minor units in one unit
// of currency, eg. 100 cents in one dollar.
const minorUnitsPerUnit = 100

// maxAmountTextLength fits the longest int64 amount, "-92233720368547758.08",
// with room for leading zeros.
const maxAmountTextLength = 32

var (
	hundred = decimal.NewFromInt(minorUnitsPerUnit)

	amountTextPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]{1,2})?$`)
)

// MoneyAmount represents a type storing information
// about a monetary amount.
//
// ! The amount is stored in the smallest denomination of the currency.
// Example: for dollars the amount is stored in cents:
// for 97.23 dollars, the amount is 9723.
//
// The zero value is not a valid MoneyAmount; use New,
// NewFromFloat or Parse.
type MoneyAmount struct {
	// amount in minor units.
	amount int64

	// shorthand for the currency, always 3 uppercased ASCII letters.
	currencyCode string
}

// New creates a new MoneyAmount from an amount of minor units.
func New(amount int64, currencyCode string) (MoneyAmount, error) {
	if err := validateCurrencyCode(currencyCode); err != nil {
		return MoneyAmount{}, err
	}

	return MoneyAmount{
		amount:       amount,
		currencyCode: currencyCode,
	}, nil
}

// NewFromFloat creates a new MoneyAmount from an amount expressed
// in units of currency, eg. 123.45 for 12345 cents.
// The amount is rounded with DefaultRoundingMethod unless
// an option says otherwise.
func NewFromFloat(
	amountFloat float64,
	currencyCode string,
	opts ...Option,
) (MoneyAmount, error) {
	o := newOptions(opts)

	units, err := decimalFromFloat(amountFloat)
	if err != nil {
		return MoneyAmount{}, err
	}

	amount, err := round(units.Mul(hundred), o.roundingMethod)
	if err != nil {
		return MoneyAmount{}, err
	}

	return New(amount, currencyCode)
}

// Parse creates a new MoneyAmount from its String form,
// eg. "123.45 CAD". The amount is an optional minus sign, digits
// and at most 2 decimals; exponents and a leading plus are rejected.
func Parse(s string) (MoneyAmount, error) {
	fields := strings.Fields(s)

	const expectedFields = 2

	if len(fields) != expectedFields {
		return MoneyAmount{}, fmt.Errorf(
			"%w: \"%s\" is not of the form \"<amount> <currency>\"",
			ErrInvalidValue,
			s,
		)
	}

	if len(fields[0]) > maxAmountTextLength {
		return MoneyAmount{}, fmt.Errorf(
			"%w: amount longer than %d characters",
			ErrInvalidValue,
			maxAmountTextLength,
		)
	}

	if !amountTextPattern.MatchString(fields[0]) {
		return MoneyAmount{}, fmt.Errorf(
			"%w: amount \"%s\" is not of the form \"[-]units[.cents]\"",
			ErrInvalidValue,
			fields[0],
		)
	}

	units, err := decimal.NewFromString(fields[0])
	if err != nil {
		return MoneyAmount{}, fmt.Errorf(
			"%w: amount \"%s\": %s",
			ErrInvalidValue,
			fields[0],
			err,
		)
	}

	amount, err := toMinorUnits(units.Mul(hundred))
	if err != nil {
		return MoneyAmount{}, err
	}

	return New(amount, fields[1])
}

// Must returns MoneyAmount if err is nil and panics otherwise.
func Must(m MoneyAmount, err error) MoneyAmount {
	if err != nil {
		panic(err)
	}

	return m
}

func validateCurrencyCode(code string) error {
	const codeLength = 3

	if len(code) != codeLength {
		return fmt.Errorf("%w: \"%s\"", ErrInvalidCurrency, code)
	}

	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return fmt.Errorf("%w: \"%s\"", ErrInvalidCurrency, code)
		}
	}

	return nil
}

// Amount returns the amount in minor units.
func (m MoneyAmount) Amount() int64 {
	return m.amount
}

// CurrencyCode returns the shorthand for the currency.
func (m MoneyAmount) CurrencyCode() string {
	return m.currencyCode
}

// IntegerPart returns the amount in whole units, truncated toward zero:
// -150 minor units give -1.
func (m MoneyAmount) IntegerPart() int64 {
	return m.amount / minorUnitsPerUnit
}

// DecimalPart returns the magnitude of the minor units left over
// by IntegerPart: -150 minor units give 50.
// The sign belongs to the integer part.
func (m MoneyAmount) DecimalPart() int64 {
	d := m.amount % minorUnitsPerUnit
	if d < 0 {
		return -d
	}

	return d
}

// AmountAsString returns the amount in units with 2 decimals,
// eg. "123.45" for 12345.
func (m MoneyAmount) AmountAsString() string {
	sign := ""

	// -0.50 has no sign left in its integer part.
	if m.amount < 0 && m.IntegerPart() == 0 {
		sign = "-"
	}

	return fmt.Sprintf("%s%d.%02d", sign, m.IntegerPart(), m.DecimalPart())
}

func (m MoneyAmount) String() string {
	return m.AmountAsString() + " " + m.currencyCode
}

// Equals returns true if m and other have the same
// currency and the same amount.
func (m MoneyAmount) Equals(other MoneyAmount) bool {
	return m.currencyCode == other.currencyCode && m.amount == other.amount
}

// Add returns m + other. Both must share the same currency.
func (m MoneyAmount) Add(other MoneyAmount) (MoneyAmount, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return MoneyAmount{}, err
	}

	sum := m.amount + other.amount

	if (other.amount > 0 && sum < m.amount) ||
		(other.amount < 0 && sum > m.amount) {
		return MoneyAmount{}, fmt.Errorf(
			"%w: %d + %d",
			ErrOverflow,
			m.amount,
			other.amount,
		)
	}

	return New(sum, m.currencyCode)
}

// Subtract returns m - other. Both must share the same currency.
func (m MoneyAmount) Subtract(other MoneyAmount) (MoneyAmount, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return MoneyAmount{}, err
	}

	diff := m.amount - other.amount

	if (other.amount > 0 && diff > m.amount) ||
		(other.amount < 0 && diff < m.amount) {
		return MoneyAmount{}, fmt.Errorf(
			"%w: %d - %d",
			ErrOverflow,
			m.amount,
			other.amount,
		)
	}

	return New(diff, m.currencyCode)
}

// Multiply returns m * multiplier, rounded to minor units.
// A NaN or infinite multiplier fails with ErrInvalidValue.
func (m MoneyAmount) Multiply(
	multiplier float64,
	opts ...Option,
) (MoneyAmount, error) {
	o := newOptions(opts)

	factor, err := decimalFromFloat(multiplier)
	if err != nil {
		return MoneyAmount{}, fmt.Errorf("multiplier: %w", err)
	}

	amount, err := round(
		decimal.NewFromInt(m.amount).Mul(factor),
		o.roundingMethod,
	)
	if err != nil {
		return MoneyAmount{}, err
	}

	return New(amount, m.currencyCode)
}

// Divide returns m / divider, rounded to minor units.
// A NaN or infinite divider fails with ErrInvalidValue.
func (m MoneyAmount) Divide(
	divider float64,
	opts ...Option,
) (MoneyAmount, error) {
	o := newOptions(opts)

	if divider == 0 {
		return MoneyAmount{}, ErrDivisionByZero
	}

	d, err := decimalFromFloat(divider)
	if err != nil {
		return MoneyAmount{}, fmt.Errorf("divider: %w", err)
	}

	amount, err := round(
		decimal.NewFromInt(m.amount).Div(d),
		o.roundingMethod,
	)
	if err != nil {
		return MoneyAmount{}, err
	}

	return New(amount, m.currencyCode)
}

// Exchange converts m into targetCurrency using rate, rounded to
// minor units. The source currency is not checked.
// A NaN or infinite rate fails with ErrInvalidValue.
func (m MoneyAmount) Exchange(
	rate float64,
	targetCurrency string,
	opts ...Option,
) (MoneyAmount, error) {
	o := newOptions(opts)

	r, err := decimalFromFloat(rate)
	if err != nil {
		return MoneyAmount{}, fmt.Errorf("rate: %w", err)
	}

	amount, err := round(
		decimal.NewFromInt(m.amount).Mul(r),
		o.roundingMethod,
	)
	if err != nil {
		return MoneyAmount{}, err
	}

	return New(amount, targetCurrency)
}

func (m MoneyAmount) assertSameCurrency(other MoneyAmount) error {
	if m.currencyCode != other.currencyCode {
		return fmt.Errorf(
			"%w: %s and %s",
			ErrCurrencyMismatch,
			m.currencyCode,
			other.currencyCode,
		)
	}

	return nil
}
