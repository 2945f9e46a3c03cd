package handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/velespak/storefront/internal/store"
	"github.com/velespak/storefront/internal/view"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	raws, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.catalogError(w, r, err)
		return
	}

	categories := make([]view.Category, 0, len(raws))
	for _, raw := range raws {
		c, err := view.CategoryFromAPI(raw)
		if err != nil {
			// A cyclic graph is upstream data corruption, not a client error.
			if errors.Is(err, store.ErrCategoryCycle) {
				zctx.From(r.Context()).Error("cyclic category graph", zap.Error(err))
				writeError(w, r, http.StatusBadGateway, "invalid category data")
				return
			}
			h.catalogError(w, r, err)
			return
		}
		categories = append(categories, c)
	}

	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, c := range categories {
				encodeCategory(e, c)
			}
		})
	})
}
