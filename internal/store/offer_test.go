package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/velespak/storefront/internal/catalog"
)

func TestOfferFromAPI(t *testing.T) {
	raw := catalog.Offer{
		UUID:     "o1",
		Price:    "99.90",
		Currency: "RUB",
		Unit:     "шт.",
		Quantity: 10,
	}

	got := OfferFromAPI(raw)

	assert.Equal(t, "o1", got.UUID)
	assert.True(t, decimal.RequireFromString("99.90").Equal(got.Price))
	assert.Equal(t, "RUB", got.Currency)
	assert.Equal(t, 10, got.Quantity)
	// The raw payload has a single unit field; both sides get it.
	assert.Equal(t, "шт.", got.UnitName)
	assert.Equal(t, "шт.", got.UnitAbbr)
	// Fields the API never sends stay zero.
	assert.Empty(t, got.Name)
	assert.Empty(t, got.ExternalID)
	assert.Empty(t, got.Article)
	assert.Empty(t, got.Barcode)
	assert.Empty(t, got.PriceType)
}

func TestOfferFromAPI_InvalidPrice(t *testing.T) {
	raw := catalog.Offer{UUID: "o2", Price: "abc", Currency: "USD", Quantity: 0}

	got := OfferFromAPI(raw)

	assert.True(t, got.Price.IsZero(), "malformed price must normalize to zero, got %s", got.Price)
	assert.Equal(t, 0, got.Quantity)
}
