package handler

import (
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/velespak/storefront/internal/cart"
	"github.com/velespak/storefront/internal/view"
)

// addItemRequest identifies the offer to add. The line payload itself is
// built server-side from the normalized offer, so clients cannot forge
// prices.
type addItemRequest struct {
	ProductUUID string
	OfferUUID   string
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	s, err := h.carts.Get(r.Context(), r.PathValue("cartID"))
	if err != nil {
		h.cartError(w, r, err)
		return
	}
	h.writeCart(w, r, s)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAddItem(r.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductUUID == "" || req.OfferUUID == "" {
		writeError(w, r, http.StatusBadRequest, "product_uuid and offer_uuid are required")
		return
	}

	raw, err := h.catalog.ProductByUUID(r.Context(), req.ProductUUID)
	if err != nil {
		h.catalogError(w, r, err)
		return
	}
	product := view.ProductFromAPI(*raw)

	offer, ok := findOffer(product, req.OfferUUID)
	if !ok {
		writeError(w, r, http.StatusUnprocessableEntity, "offer does not belong to product")
		return
	}

	s, err := h.carts.AddItem(r.Context(), r.PathValue("cartID"), cart.AddPayload{
		ProductUUID:  product.UUID,
		OfferUUID:    offer.UUID,
		ProductName:  product.Name,
		ProductImage: product.Image,
		OfferName:    offer.Unit,
		Price:        offer.Price,
		Currency:     offer.Currency,
		Unit:         offer.Unit,
		Article:      product.SKU,
	})
	if err != nil {
		h.cartError(w, r, err)
		return
	}
	h.writeCart(w, r, s)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	quantity, err := decodeQuantity(r.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.carts.SetQuantity(r.Context(), r.PathValue("cartID"), r.PathValue("itemID"), quantity)
	if err != nil {
		h.cartError(w, r, err)
		return
	}
	h.writeCart(w, r, s)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	s, err := h.carts.RemoveItem(r.Context(), r.PathValue("cartID"), r.PathValue("itemID"))
	if err != nil {
		h.cartError(w, r, err)
		return
	}
	h.writeCart(w, r, s)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	s, err := h.carts.Clear(r.Context(), r.PathValue("cartID"))
	if err != nil {
		h.cartError(w, r, err)
		return
	}
	h.writeCart(w, r, s)
}

func (h *Handler) writeCart(w http.ResponseWriter, r *http.Request, s cart.State) {
	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		encodeCartState(e, s)
	})
}

func (h *Handler) cartError(w http.ResponseWriter, r *http.Request, err error) {
	zctx.From(r.Context()).Error("cart operation failed", zap.Error(err))
	writeError(w, r, http.StatusInternalServerError, "internal error")
}

func findOffer(p view.Product, offerUUID string) (view.Offer, bool) {
	for _, o := range p.Offers {
		if o.UUID == offerUUID {
			return o, true
		}
	}
	return view.Offer{}, false
}

func decodeAddItem(body io.Reader) (addItemRequest, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return addItemRequest{}, err
	}

	var req addItemRequest
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "product_uuid":
			v, err := d.Str()
			if err != nil {
				return err
			}
			req.ProductUUID = v
			return nil
		case "offer_uuid":
			v, err := d.Str()
			if err != nil {
				return err
			}
			req.OfferUUID = v
			return nil
		default:
			return d.Skip()
		}
	}); err != nil {
		return addItemRequest{}, err
	}
	return req, nil
}

func decodeQuantity(body io.Reader) (int, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return 0, err
	}

	quantity := 0
	found := false
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "quantity" {
			return d.Skip()
		}
		v, err := d.Int()
		if err != nil {
			return err
		}
		quantity, found = v, true
		return nil
	}); err != nil {
		return 0, err
	}
	if !found {
		return 0, errors.New("quantity is required")
	}
	return quantity, nil
}
