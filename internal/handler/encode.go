package handler

import (
	"net/http"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/velespak/storefront/internal/cart"
	"github.com/velespak/storefront/internal/view"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		zctx.From(r.Context()).Debug("write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("code", func(e *jx.Encoder) { e.Int(status) })
			e.Field("message", func(e *jx.Encoder) { e.Str(message) })
		})
	})
}

func encodeOffer(e *jx.Encoder, o view.Offer) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("uuid", func(e *jx.Encoder) { e.Str(o.UUID) })
		e.Field("price", func(e *jx.Encoder) { e.Float64(o.Price.InexactFloat64()) })
		e.Field("currency", func(e *jx.Encoder) { e.Str(o.Currency) })
		e.Field("currency_symbol", func(e *jx.Encoder) { e.Str(o.CurrencySymbol) })
		e.Field("formatted_price", func(e *jx.Encoder) { e.Str(o.FormattedPrice) })
		e.Field("unit", func(e *jx.Encoder) { e.Str(o.Unit) })
		e.Field("quantity", func(e *jx.Encoder) { e.Int(o.Quantity) })
		e.Field("min_purchase", func(e *jx.Encoder) { e.Int(o.MinPurchase) })
		e.Field("is_available", func(e *jx.Encoder) { e.Bool(o.IsAvailable) })
		e.Field("price_type", func(e *jx.Encoder) { e.Str(o.PriceType) })
	})
}

func encodeProduct(e *jx.Encoder, p view.Product) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("uuid", func(e *jx.Encoder) { e.Str(p.UUID) })
		e.Field("name", func(e *jx.Encoder) { e.Str(p.Name) })
		e.Field("sku", func(e *jx.Encoder) { e.Str(p.SKU) })
		e.Field("description", func(e *jx.Encoder) { e.Str(p.Description) })
		e.Field("image", func(e *jx.Encoder) { e.Str(p.Image) })
		e.Field("slug", func(e *jx.Encoder) { e.Str(p.Slug) })
		if p.DefaultOffer != nil {
			e.Field("default_offer", func(e *jx.Encoder) { encodeOffer(e, *p.DefaultOffer) })
		}
		e.Field("offers", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, o := range p.Offers {
					encodeOffer(e, o)
				}
			})
		})
		e.Field("has_multiple_offers", func(e *jx.Encoder) { e.Bool(p.HasMultipleOffers) })
		e.Field("is_in_stock", func(e *jx.Encoder) { e.Bool(p.IsInStock) })
		e.Field("availability", func(e *jx.Encoder) { e.Str(p.Availability) })
		e.Field("availability_color", func(e *jx.Encoder) { e.Str(p.AvailabilityColor) })
	})
}

func encodeCategory(e *jx.Encoder, c view.Category) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("uuid", func(e *jx.Encoder) { e.Str(c.UUID) })
		e.Field("name", func(e *jx.Encoder) { e.Str(c.Name) })
		e.Field("slug", func(e *jx.Encoder) { e.Str(c.Slug) })
		e.Field("description", func(e *jx.Encoder) { e.Str(c.Description) })
		if c.Children != nil {
			e.Field("children", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, child := range c.Children {
						encodeCategory(e, child)
					}
				})
			})
		}
	})
}

func encodeCartItem(e *jx.Encoder, item cart.Item) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(item.ID) })
		e.Field("product_uuid", func(e *jx.Encoder) { e.Str(item.ProductUUID) })
		e.Field("offer_uuid", func(e *jx.Encoder) { e.Str(item.OfferUUID) })
		e.Field("product_name", func(e *jx.Encoder) { e.Str(item.ProductName) })
		e.Field("product_image", func(e *jx.Encoder) { e.Str(item.ProductImage) })
		e.Field("offer_name", func(e *jx.Encoder) { e.Str(item.OfferName) })
		e.Field("price", func(e *jx.Encoder) { e.Float64(item.Price.InexactFloat64()) })
		e.Field("currency", func(e *jx.Encoder) { e.Str(item.Currency) })
		e.Field("unit", func(e *jx.Encoder) { e.Str(item.Unit) })
		e.Field("quantity", func(e *jx.Encoder) { e.Int(item.Quantity) })
		e.Field("article", func(e *jx.Encoder) { e.Str(item.Article) })
	})
}

func encodeCartState(e *jx.Encoder, s cart.State) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, item := range s.Items {
					encodeCartItem(e, item)
				}
			})
		})
		e.Field("is_open", func(e *jx.Encoder) { e.Bool(s.IsOpen) })
	})
}
