package view

import (
	"github.com/velespak/storefront/internal/catalog"
	"github.com/velespak/storefront/internal/money"
	"github.com/velespak/storefront/internal/store"
)

// OfferFromStore derives the presentation form of a canonical offer.
func OfferFromStore(o store.Offer) Offer {
	symbol := money.Symbol(o.Currency)

	return Offer{
		UUID:           o.UUID,
		Price:          o.Price,
		Currency:       o.Currency,
		CurrencySymbol: symbol,
		FormattedPrice: money.Format(o.Price, symbol),
		Unit:           o.UnitName,
		Quantity:       o.Quantity,
		MinPurchase:    minPurchase(o.Quantity),
		IsAvailable:    o.Quantity > 0,
		PriceType:      o.PriceType,
	}
}

// OfferFromAPI is the two-stage composition for raw offers. It must stay a
// plain composition so both stages remain the single source of each field.
func OfferFromAPI(raw catalog.Offer) Offer {
	return OfferFromStore(store.OfferFromAPI(raw))
}

func minPurchase(quantity int) int {
	if quantity > 0 && quantity < maxMinPurchase {
		return quantity
	}
	return maxMinPurchase
}
