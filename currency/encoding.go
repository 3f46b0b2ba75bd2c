package currency

import (
	"encoding"
	"encoding/json"
	"fmt"
)

var (
	// ensure MoneyAmount implements text marshaller and unmarshaler interface.
	_ encoding.TextMarshaler   = MoneyAmount{}
	_ encoding.TextUnmarshaler = (*MoneyAmount)(nil)

	// ensure MoneyAmount implements json marshaller and unmarshaler interface.
	_ json.Marshaler   = MoneyAmount{}
	_ json.Unmarshaler = (*MoneyAmount)(nil)
)

type jsonMoneyAmount struct {
	Amount       *int64 `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// MarshalJSON implements the json.Marshaler interface.
func (m MoneyAmount) MarshalJSON() ([]byte, error) {
	if err := validateCurrencyCode(m.currencyCode); err != nil {
		return nil, err
	}

	return json.Marshal(jsonMoneyAmount{
		Amount:       &m.amount,
		CurrencyCode: m.currencyCode,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The decoded amount goes through the same validation as New.
func (m *MoneyAmount) UnmarshalJSON(data []byte) error {
	var j jsonMoneyAmount

	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, err)
	}

	if j.Amount == nil {
		return fmt.Errorf("%w: missing amount", ErrInvalidValue)
	}

	parsed, err := New(*j.Amount, j.CurrencyCode)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (m MoneyAmount) MarshalText() ([]byte, error) {
	if err := validateCurrencyCode(m.currencyCode); err != nil {
		return nil, err
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *MoneyAmount) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
