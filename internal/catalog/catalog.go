// Package catalog defines the raw wire representation of the upstream
// catalog API and the capability the rest of the service consumes to fetch
// it. The raw shapes are owned by the upstream; validation and derivation
// happen later in the store and view tiers.
package catalog

import (
	"context"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a requested product or category does not
// exist upstream.
var ErrNotFound = errors.New("catalog: not found")

// Offer is a purchasable unit/price/quantity combination as delivered by the
// catalog API. Price arrives as a string and may be malformed.
type Offer struct {
	UUID     string `json:"uuid"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
	Unit     string `json:"unit"`
	Quantity int    `json:"quantity"`
}

// Image holds the upstream image URL pair for a product.
type Image struct {
	OriginalURL string `json:"original_url"`
	CardURL     string `json:"card_url"`
}

// Product is the raw product payload. Properties is a free-form bag of
// RU-localized keys; physical dimensions are buried in there as text.
type Product struct {
	UUID         string            `json:"uuid"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Slug         string            `json:"slug"`
	CategoryUUID string            `json:"category_uuid,omitempty"`
	Article      string            `json:"article,omitempty"`
	Offers       []Offer           `json:"offers"`
	Images       []Image           `json:"images,omitempty"`
	Properties   map[string]string `json:"properties,omitempty"`
}

// Category is the raw category payload. Parents and Children nest
// recursively; either may be absent.
type Category struct {
	UUID        string     `json:"uuid"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Parents     []Category `json:"parents,omitempty"`
	Children    []Category `json:"children,omitempty"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// ListParams selects a page of products, optionally within one category.
type ListParams struct {
	Page         int
	PerPage      int
	CategoryUUID string
}

// Service is the catalog capability the storefront consumes. Implementations
// own transport, retries and caching; callers only depend on the raw shapes.
type Service interface {
	ProductByUUID(ctx context.Context, uuid string) (*Product, error)
	ProductBySlug(ctx context.Context, slug string) (*Product, error)
	Products(ctx context.Context, params ListParams) ([]Product, error)
	Categories(ctx context.Context) ([]Category, error)
}
