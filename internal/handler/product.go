package handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/velespak/storefront/internal/catalog"
	"github.com/velespak/storefront/internal/view"
)

const (
	defaultPerPage = 24
	maxPerPage     = 100
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	params := catalog.ListParams{
		Page:         queryInt(r, "page", 1),
		PerPage:      queryInt(r, "per_page", defaultPerPage),
		CategoryUUID: r.URL.Query().Get("category"),
	}
	if params.PerPage > maxPerPage {
		params.PerPage = maxPerPage
	}

	raws, err := h.catalog.Products(r.Context(), params)
	if err != nil {
		h.catalogError(w, r, err)
		return
	}

	products := make([]view.Product, len(raws))
	for i, raw := range raws {
		products[i] = view.ProductFromAPI(raw)
	}

	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, p := range products {
				encodeProduct(e, p)
			}
		})
	})
}

func (h *Handler) productByUUID(w http.ResponseWriter, r *http.Request) {
	raw, err := h.catalog.ProductByUUID(r.Context(), r.PathValue("uuid"))
	if err != nil {
		h.catalogError(w, r, err)
		return
	}
	h.writeProduct(w, r, *raw)
}

func (h *Handler) productBySlug(w http.ResponseWriter, r *http.Request) {
	raw, err := h.catalog.ProductBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		h.catalogError(w, r, err)
		return
	}
	h.writeProduct(w, r, *raw)
}

func (h *Handler) writeProduct(w http.ResponseWriter, r *http.Request, raw catalog.Product) {
	p := view.ProductFromAPI(raw)
	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		encodeProduct(e, p)
	})
}

func (h *Handler) catalogError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	zctx.From(r.Context()).Error("catalog request failed", zap.Error(err))
	writeError(w, r, http.StatusBadGateway, "catalog unavailable")
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
