// Package money provides currency display helpers for the storefront.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// symbols maps normalized ISO currency codes to their display symbols.
// Codes without an entry are displayed as-is.
var symbols = map[string]string{
	"RUB": "₽",
}

// Symbol returns the display symbol for a currency code. The code is trimmed
// and uppercased before lookup; unknown codes are returned in that normalized
// form unchanged. An empty or whitespace-only code yields an empty string.
func Symbol(code string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if sym, ok := symbols[normalized]; ok {
		return sym
	}
	return normalized
}

// Format renders an amount with exactly two decimal places followed by a
// space and the symbol, e.g. "100.50 ₽". Two decimals are used for every
// currency, including zero-decimal ones like JPY; the upstream catalog prices
// everything this way.
func Format(amount decimal.Decimal, symbol string) string {
	return amount.StringFixed(2) + " " + symbol
}

// ParsePrice parses a raw price string into a decimal amount. Malformed or
// empty input degrades to zero rather than failing: one bad price must not
// reject a whole product.
func ParsePrice(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}
