package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money is an amount in a producer currency. Currency is the producer's label
// and may be empty when the producer has none configured.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func (m Money) String() string {
	if m.Currency == "" {
		return m.Amount.String()
	}
	return m.Amount.String() + " " + m.Currency
}

// NormalizeCurrency maps absent currencies ("" or the literal "null") to the
// empty label. Any other code is kept as is.
func NormalizeCurrency(raw string) string {
	if raw == "null" {
		return ""
	}
	return raw
}

// ValidateCurrency accepts absent currencies and ISO 4217 codes.
func ValidateCurrency(raw string) error {
	code := NormalizeCurrency(raw)
	if code == "" {
		return nil
	}

	if _, err := currency.ParseISO(code); err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}

	return nil
}
