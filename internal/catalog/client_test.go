package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, routes map[string]any) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": body})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ProductByUUID(t *testing.T) {
	srv := newTestServer(t, map[string]any{
		"/products/p1": Product{
			UUID: "p1",
			Name: "Стрейч-плёнка",
			Slug: "stretch-film",
			Offers: []Offer{
				{UUID: "o1", Price: "99.90", Currency: "RUB", Unit: "шт.", Quantity: 10},
			},
			Properties: map[string]string{"Толщина, мкм": "20"},
		},
	})

	c := NewClient(srv.URL)

	p, err := c.ProductByUUID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.UUID)
	assert.Equal(t, "Стрейч-плёнка", p.Name)
	require.Len(t, p.Offers, 1)
	assert.Equal(t, "99.90", p.Offers[0].Price)
	assert.Equal(t, "20", p.Properties["Толщина, мкм"])
}

func TestClient_ProductByUUID_NotFound(t *testing.T) {
	srv := newTestServer(t, nil)
	c := NewClient(srv.URL)

	_, err := c.ProductByUUID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Products_Query(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"uuid":"p1","name":"n","slug":"s","offers":[]}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	products, err := c.Products(context.Background(), ListParams{Page: 2, PerPage: 24, CategoryUUID: "c1"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "category=c1&page=2&per_page=24", gotQuery)
}

func TestClient_Categories_Nested(t *testing.T) {
	srv := newTestServer(t, map[string]any{
		"/categories": []Category{
			{
				UUID: "c1",
				Name: "Упаковка",
				Slug: "upakovka",
				Children: []Category{
					{UUID: "c2", Name: "Пакеты", Slug: "pakety"},
				},
			},
		},
	})
	c := NewClient(srv.URL)

	cats, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Len(t, cats[0].Children, 1)
	assert.Equal(t, "c2", cats[0].Children[0].UUID)
	assert.Nil(t, cats[0].Parents)
}
