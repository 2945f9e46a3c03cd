package view

import (
	"github.com/velespak/storefront/internal/catalog"
	"github.com/velespak/storefront/internal/store"
)

// ProductFromStore derives the presentation form of a canonical product.
// The default offer is always the first one; availability aggregates over
// all offers.
func ProductFromStore(p store.Product) Product {
	offers := make([]Offer, len(p.Offers))
	inStock := false
	for i, o := range p.Offers {
		offers[i] = OfferFromStore(o)
		if offers[i].IsAvailable {
			inStock = true
		}
	}

	var defaultOffer *Offer
	if len(offers) > 0 {
		defaultOffer = &offers[0]
	}

	availability, color := AvailabilityOnOrder, ColorOnOrder
	if inStock {
		availability, color = AvailabilityInStock, ColorInStock
	}

	return Product{
		UUID:              p.UUID,
		Name:              p.Name,
		SKU:               p.SKU,
		Description:       p.Description,
		Image:             p.Image,
		Slug:              p.Slug,
		DefaultOffer:      defaultOffer,
		Offers:            offers,
		HasMultipleOffers: len(offers) > 1,
		IsInStock:         inStock,
		Availability:      availability,
		AvailabilityColor: color,
	}
}

// ProductFromAPI is the two-stage composition for raw products.
func ProductFromAPI(raw catalog.Product) Product {
	return ProductFromStore(store.ProductFromAPI(raw))
}
