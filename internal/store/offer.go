package store

import (
	"github.com/velespak/storefront/internal/catalog"
	"github.com/velespak/storefront/internal/money"
)

// OfferFromAPI converts one raw trade offer into its canonical form. The raw
// payload does not distinguish unit name from unit abbreviation, so the
// single unit field fills both. Fields the API never sends (name, external
// id, article, price type, barcode) stay zero.
func OfferFromAPI(raw catalog.Offer) Offer {
	return Offer{
		UUID:     raw.UUID,
		UnitName: raw.Unit,
		UnitAbbr: raw.Unit,
		Price:    money.ParsePrice(raw.Price),
		Currency: raw.Currency,
		Quantity: raw.Quantity,
	}
}
