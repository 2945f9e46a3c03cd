// Package handler serves the storefront HTTP API: normalized catalog
// payloads and cart state transitions.
package handler

import (
	"net/http"

	"github.com/velespak/storefront/internal/cart"
	"github.com/velespak/storefront/internal/catalog"
)

// Handler owns the API routes. Catalog reads go through the normalization
// pipeline on every request; cart mutations go through the manager.
type Handler struct {
	catalog catalog.Service
	carts   *cart.Manager
}

// New constructs a Handler with the required dependencies.
func New(catalogSvc catalog.Service, carts *cart.Manager) *Handler {
	return &Handler{
		catalog: catalogSvc,
		carts:   carts,
	}
}

// Register mounts all API routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.listProducts)
	mux.HandleFunc("GET /api/products/slug/{slug}", h.productBySlug)
	mux.HandleFunc("GET /api/products/{uuid}", h.productByUUID)
	mux.HandleFunc("GET /api/categories", h.listCategories)

	mux.HandleFunc("GET /api/cart/{cartID}", h.getCart)
	mux.HandleFunc("POST /api/cart/{cartID}/items", h.addCartItem)
	mux.HandleFunc("PATCH /api/cart/{cartID}/items/{itemID}", h.updateCartItem)
	mux.HandleFunc("DELETE /api/cart/{cartID}/items/{itemID}", h.removeCartItem)
	mux.HandleFunc("DELETE /api/cart/{cartID}", h.clearCart)
}
