package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velespak/storefront/internal/catalog"
	"github.com/velespak/storefront/internal/store"
)

func rawProduct(offers ...catalog.Offer) catalog.Product {
	return catalog.Product{
		UUID:   "p1",
		Name:   "Стрейч-плёнка",
		Slug:   "stretch-film",
		Offers: offers,
	}
}

func TestProductFromAPI_InStock(t *testing.T) {
	got := ProductFromAPI(rawProduct(
		catalog.Offer{UUID: "o1", Price: "100", Currency: "RUB", Quantity: 0},
		catalog.Offer{UUID: "o2", Price: "200", Currency: "RUB", Quantity: 5},
	))

	assert.True(t, got.IsInStock)
	assert.Equal(t, AvailabilityInStock, got.Availability)
	assert.Equal(t, ColorInStock, got.AvailabilityColor)
	assert.True(t, got.HasMultipleOffers)
	require.NotNil(t, got.DefaultOffer)
	assert.Equal(t, "o1", got.DefaultOffer.UUID, "default offer is always the first one")
}

func TestProductFromAPI_OnOrder(t *testing.T) {
	got := ProductFromAPI(rawProduct(
		catalog.Offer{UUID: "o1", Price: "100", Currency: "RUB", Quantity: 0},
	))

	assert.False(t, got.IsInStock)
	assert.Equal(t, AvailabilityOnOrder, got.Availability)
	assert.Equal(t, ColorOnOrder, got.AvailabilityColor)
	assert.False(t, got.HasMultipleOffers)
}

func TestProductFromAPI_NoOffers(t *testing.T) {
	got := ProductFromAPI(rawProduct())

	assert.Nil(t, got.DefaultOffer)
	assert.Empty(t, got.Offers)
	assert.False(t, got.IsInStock)
	assert.False(t, got.HasMultipleOffers)
	assert.Equal(t, AvailabilityOnOrder, got.Availability)
}

func TestProductFromStore_AvailabilityConsistency(t *testing.T) {
	quantities := [][]int{{}, {0}, {0, 0}, {1}, {0, 3}, {100, 0, 0}}

	for _, qs := range quantities {
		offers := make([]store.Offer, len(qs))
		for i, q := range qs {
			offers[i] = store.Offer{UUID: "o", Quantity: q}
		}
		got := ProductFromStore(store.Product{UUID: "p", Offers: offers})

		anyAvailable := false
		for _, o := range got.Offers {
			if o.IsAvailable {
				anyAvailable = true
			}
		}
		assert.Equal(t, anyAvailable, got.IsInStock, "quantities %v", qs)
		if !got.IsInStock {
			assert.Equal(t, AvailabilityOnOrder, got.Availability)
		}
	}
}

func TestProductFromAPI_CompositionLaw(t *testing.T) {
	raws := []catalog.Product{
		rawProduct(),
		rawProduct(catalog.Offer{UUID: "o1", Price: "99.90", Currency: "RUB", Unit: "шт.", Quantity: 10}),
		{
			UUID:    "p2",
			Name:    "Пакет",
			Slug:    "paket",
			Article: "A-1",
			Images:  []catalog.Image{{OriginalURL: "orig.jpg"}},
			Properties: map[string]string{
				"Толщина, мкм": "20",
				"Вес пакета, г": "x",
			},
			Offers: []catalog.Offer{{UUID: "o1", Price: "bad", Currency: "USD", Quantity: 0}},
		},
	}

	for _, raw := range raws {
		composed := ProductFromStore(store.ProductFromAPI(raw))
		assert.Equal(t, composed, ProductFromAPI(raw))
	}
}

func TestProductFromStore_CopiesFields(t *testing.T) {
	p := store.Product{
		UUID:        "p1",
		Name:        "Пакет",
		SKU:         "A-1",
		Description: "desc",
		Slug:        "paket",
		Image:       "card.jpg",
	}

	got := ProductFromStore(p)

	assert.Equal(t, "p1", got.UUID)
	assert.Equal(t, "A-1", got.SKU)
	assert.Equal(t, "card.jpg", got.Image)
	assert.Equal(t, "paket", got.Slug)
}
