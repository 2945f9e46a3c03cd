// Package view derives the presentation-ready models served to storefront
// clients. Every field here is display-oriented and recomputed from the store
// tier on each mapping call; nothing in this tier is authoritative.
package view

import "github.com/shopspring/decimal"

// Availability labels and colors form a closed two-value set: a product is
// either in stock or available on order, there is no third state.
const (
	AvailabilityInStock = "В наличии"
	AvailabilityOnOrder = "Под заказ"

	ColorInStock = "#2AC84D"
	ColorOnOrder = "#00B0FF"
)

// maxMinPurchase caps the minimum purchase quantity. Stock above the cap
// still sells in increments of at most 100; zero stock defaults to the cap
// too ("ask to order").
const maxMinPurchase = 100

// Offer is the presentation form of a trade offer.
type Offer struct {
	UUID           string
	Price          decimal.Decimal
	Currency       string
	CurrencySymbol string
	FormattedPrice string
	Unit           string
	Quantity       int
	MinPurchase    int
	IsAvailable    bool
	PriceType      string
}

// Product is the presentation form of a catalog product.
type Product struct {
	UUID              string
	Name              string
	SKU               string
	Description       string
	Image             string
	Slug              string
	DefaultOffer      *Offer
	Offers            []Offer
	HasMultipleOffers bool
	IsInStock         bool
	Availability      string
	AvailabilityColor string
}

// Category is the presentation form of a category: a strict subset of the
// store tier, keeping only the downward tree.
type Category struct {
	UUID        string
	Name        string
	Slug        string
	Description string
	Children    []Category
}
