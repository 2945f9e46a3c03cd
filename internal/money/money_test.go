package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "rub uppercase", code: "RUB", want: "₽"},
		{name: "rub lowercase", code: "rub", want: "₽"},
		{name: "rub padded", code: "  rub ", want: "₽"},
		{name: "unknown code passes through normalized", code: "usd", want: "USD"},
		{name: "jpy not special cased", code: "JPY", want: "JPY"},
		{name: "empty", code: "", want: ""},
		{name: "whitespace only", code: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Symbol(tt.code))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		symbol string
		want   string
	}{
		{name: "two decimals kept", amount: decimal.RequireFromString("100.50"), symbol: "₽", want: "100.50 ₽"},
		{name: "integer padded", amount: decimal.NewFromInt(7), symbol: "₽", want: "7.00 ₽"},
		{name: "rounds to two places", amount: decimal.RequireFromString("1.005"), symbol: "USD", want: "1.01 USD"},
		{name: "zero", amount: decimal.Zero, symbol: "₽", want: "0.00 ₽"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount, tt.symbol))
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want decimal.Decimal
	}{
		{name: "plain", raw: "99.90", want: decimal.RequireFromString("99.90")},
		{name: "padded", raw: " 12.5 ", want: decimal.RequireFromString("12.5")},
		{name: "garbage degrades to zero", raw: "abc", want: decimal.Zero},
		{name: "empty degrades to zero", raw: "", want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ParsePrice(tt.raw)), "got %s", ParsePrice(tt.raw))
		})
	}
}
