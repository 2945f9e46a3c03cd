package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velespak/storefront/internal/cart"
	"github.com/velespak/storefront/internal/catalog"
)

// --- Mock catalog ---

type mockCatalog struct {
	products   map[string]*catalog.Product
	bySlug     map[string]*catalog.Product
	categories []catalog.Category
	err        error
}

func (m *mockCatalog) ProductByUUID(_ context.Context, uuid string) (*catalog.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[uuid]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return p, nil
}

func (m *mockCatalog) ProductBySlug(_ context.Context, slug string) (*catalog.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.bySlug[slug]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return p, nil
}

func (m *mockCatalog) Products(_ context.Context, _ catalog.ListParams) ([]catalog.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]catalog.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockCatalog) Categories(_ context.Context) ([]catalog.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

// --- Helpers ---

func testProduct() *catalog.Product {
	return &catalog.Product{
		UUID:    "p1",
		Name:    "Стрейч-плёнка",
		Slug:    "stretch-film",
		Article: "A-100",
		Images:  []catalog.Image{{CardURL: "card.jpg"}},
		Offers: []catalog.Offer{
			{UUID: "o1", Price: "99.90", Currency: "RUB", Unit: "шт.", Quantity: 10},
		},
	}
}

func newTestServer(c *mockCatalog) *httptest.Server {
	mux := http.NewServeMux()
	New(c, cart.NewManager(nil)).Register(mux)
	return httptest.NewServer(mux)
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&decoded))
	return res, decoded
}

// --- Tests ---

func TestGetProduct(t *testing.T) {
	srv := newTestServer(&mockCatalog{products: map[string]*catalog.Product{"p1": testProduct()}})
	defer srv.Close()

	res, body := doJSON(t, http.MethodGet, srv.URL+"/api/products/p1", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	assert.Equal(t, "p1", body["uuid"])
	assert.Equal(t, "card.jpg", body["image"])
	assert.Equal(t, "A-100", body["sku"])
	assert.Equal(t, true, body["is_in_stock"])
	assert.Equal(t, "В наличии", body["availability"])
	assert.Equal(t, "#2AC84D", body["availability_color"])

	offers, ok := body["offers"].([]any)
	require.True(t, ok)
	require.Len(t, offers, 1)
	offer := offers[0].(map[string]any)
	assert.Equal(t, "99.90 ₽", offer["formatted_price"])
	assert.Equal(t, "₽", offer["currency_symbol"])
	assert.Equal(t, float64(10), offer["min_purchase"])
}

func TestGetProduct_NotFound(t *testing.T) {
	srv := newTestServer(&mockCatalog{})
	defer srv.Close()

	res, body := doJSON(t, http.MethodGet, srv.URL+"/api/products/missing", "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "not found", body["message"])
}

func TestGetProduct_UpstreamError(t *testing.T) {
	srv := newTestServer(&mockCatalog{err: errors.New("boom")})
	defer srv.Close()

	res, _ := doJSON(t, http.MethodGet, srv.URL+"/api/products/p1", "")
	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
}

func TestListCategories_CyclicGraph(t *testing.T) {
	srv := newTestServer(&mockCatalog{
		categories: []catalog.Category{
			{UUID: "a", Children: []catalog.Category{{UUID: "a"}}},
		},
	})
	defer srv.Close()

	res, _ := doJSON(t, http.MethodGet, srv.URL+"/api/categories", "")
	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
}

func TestCartFlow(t *testing.T) {
	srv := newTestServer(&mockCatalog{products: map[string]*catalog.Product{"p1": testProduct()}})
	defer srv.Close()

	addBody := `{"product_uuid":"p1","offer_uuid":"o1"}`

	// First add creates a line with quantity 1.
	res, body := doJSON(t, http.MethodPost, srv.URL+"/api/cart/c1/items", addBody)
	require.Equal(t, http.StatusOK, res.StatusCode)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, float64(1), item["quantity"])
	assert.Equal(t, "Стрейч-плёнка", item["product_name"])
	assert.Equal(t, 99.9, item["price"])

	// Second add of the same identity merges.
	res, body = doJSON(t, http.MethodPost, srv.URL+"/api/cart/c1/items", addBody)
	require.Equal(t, http.StatusOK, res.StatusCode)
	items = body["items"].([]any)
	require.Len(t, items, 1)
	item = items[0].(map[string]any)
	assert.Equal(t, float64(2), item["quantity"])
	id := item["id"].(string)

	// Setting quantity to zero removes the line.
	res, body = doJSON(t, http.MethodPatch, srv.URL+"/api/cart/c1/items/"+id, `{"quantity":0}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, body["items"])
}

func TestAddCartItem_OfferMismatch(t *testing.T) {
	srv := newTestServer(&mockCatalog{products: map[string]*catalog.Product{"p1": testProduct()}})
	defer srv.Close()

	res, _ := doJSON(t, http.MethodPost, srv.URL+"/api/cart/c1/items", `{"product_uuid":"p1","offer_uuid":"nope"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
}

func TestAddCartItem_BadBody(t *testing.T) {
	srv := newTestServer(&mockCatalog{})
	defer srv.Close()

	res, _ := doJSON(t, http.MethodPost, srv.URL+"/api/cart/c1/items", `{`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = doJSON(t, http.MethodPost, srv.URL+"/api/cart/c1/items", `{}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestClearCart(t *testing.T) {
	srv := newTestServer(&mockCatalog{products: map[string]*catalog.Product{"p1": testProduct()}})
	defer srv.Close()

	_, _ = doJSON(t, http.MethodPost, srv.URL+"/api/cart/c1/items", `{"product_uuid":"p1","offer_uuid":"o1"}`)

	res, body := doJSON(t, http.MethodDelete, srv.URL+"/api/cart/c1", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, body["items"])

	// Removing an unknown item is a silent no-op.
	res, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/cart/c1/items/ghost", "")
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
