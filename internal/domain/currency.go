package domain

import (
	"fmt"
	"math"
)

// CurrencyCode is one of the two display currencies the storefront supports.
type CurrencyCode string

const (
	CurrencySYP CurrencyCode = "SYP"
	CurrencyUSD CurrencyCode = "USD"
)

// BaseCurrency is the denomination prices are stored in when a product does
// not say otherwise.
const BaseCurrency = CurrencySYP

// DefaultExchangeRate is the fixed rate: 1 USD = 118.5 SYP. Configurable,
// not live.
const DefaultExchangeRate = 118.5

// IsValidCurrency checks whether the code is one of the supported values.
func IsValidCurrency(c CurrencyCode) bool {
	return c == CurrencySYP || c == CurrencyUSD
}

// Toggle flips between the two supported currencies. Any unrecognized value
// toggles to the base currency, so no third value is ever reachable.
func (c CurrencyCode) Toggle() CurrencyCode {
	if c == CurrencySYP {
		return CurrencyUSD
	}
	return CurrencySYP
}

// ConvertPrice converts an amount between the two display currencies at the
// given rate (SYP per USD). The amount is normalized to the base currency
// first, then converted to the target. The result is rounded to two decimal
// places. A zero amount yields zero.
func ConvertPrice(amount float64, from, to CurrencyCode, rate float64) float64 {
	if amount == 0 {
		return 0
	}

	inBase := amount
	if from == CurrencyUSD {
		inBase = amount * rate
	}

	converted := inBase
	if to == CurrencyUSD {
		converted = inBase / rate
	}

	return math.Round(converted*100) / 100
}

// FormatPrice renders the converted amount followed by the currency code,
// e.g. "1.00 USD".
func FormatPrice(amount float64, from, to CurrencyCode, rate float64) string {
	return fmt.Sprintf("%.2f %s", ConvertPrice(amount, from, to, rate), to)
}
