// Package store holds the canonical internal representation of catalog
// entities: raw API payloads validated and typed, before any display fields
// are derived. Mapping into this tier is total — malformed optional data
// degrades field by field, it never rejects a whole entity.
package store

import (
	"github.com/shopspring/decimal"
)

// Offer is the canonical form of a trade offer. Price is a validated decimal;
// raw prices that fail to parse normalize to zero.
type Offer struct {
	UUID       string
	Name       string
	ExternalID string
	UnitName   string
	UnitAbbr   string
	Article    string
	Barcode    string
	Price      decimal.Decimal
	Currency   string
	Quantity   int
	PriceType  string
}

// Dimensions holds the physical dimensions extracted from a product's
// property bag. Every field is optional: nil means the property was absent or
// unparseable.
type Dimensions struct {
	Thickness *float64
	Width     *float64
	Length    *float64
	Height    *float64
	Volume    *float64
	Weight    *float64
}

// Product is the canonical form of a catalog product.
type Product struct {
	UUID         string
	Name         string
	SKU          string
	Description  string
	Slug         string
	Image        string
	CategoryUUID string
	Dimensions   *Dimensions
	Offers       []Offer
}

// Category is the canonical form of a catalog category. Parents and Children
// keep the recursive shape of the raw payload; a nil slice means the upstream
// sent no data, an empty one means an explicit empty list.
type Category struct {
	UUID        string
	Name        string
	Slug        string
	Description string
	Parents     []Category
	Children    []Category
	CreatedAt   string
	UpdatedAt   string
}
