// Command catalog-stub serves a small fixed catalog in the upstream API's
// wire format. It backs local development and the black-box integration
// tests, where a real catalog service is not available.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/velespak/storefront/internal/catalog"
)

var products = []catalog.Product{
	{
		UUID:         "a1000000-0000-4000-8000-000000000001",
		Name:         "Пакет фасовочный ПНД",
		Description:  "Фасовочный пакет из полиэтилена низкого давления",
		Slug:         "paket-fasovochnyi-pnd",
		CategoryUUID: "c1000000-0000-4000-8000-000000000001",
		Article:      "PKT-001",
		Offers: []catalog.Offer{
			{UUID: "o1000000-0000-4000-8000-000000000001", Price: "99.90", Currency: "RUB", Unit: "упаковка", Quantity: 10},
		},
		Images: []catalog.Image{
			{OriginalURL: "https://cdn.example.com/pkt-001.jpg", CardURL: "https://cdn.example.com/pkt-001-card.jpg"},
		},
		Properties: map[string]string{
			"Толщина, мкм": "25",
			"Ширина, мм":   "300",
			"Длина, мм":    "400",
		},
	},
	{
		UUID:         "a1000000-0000-4000-8000-000000000002",
		Name:         "Мешок для мусора 120 л",
		Description:  "Плотный мешок для строительного мусора",
		Slug:         "meshok-dlya-musora-120",
		CategoryUUID: "c1000000-0000-4000-8000-000000000002",
		Article:      "MSK-120",
		Offers: []catalog.Offer{
			{UUID: "o1000000-0000-4000-8000-000000000002", Price: "450.00", Currency: "RUB", Unit: "рулон", Quantity: 0},
		},
	},
	{
		UUID:         "a1000000-0000-4000-8000-000000000003",
		Name:         "Стретч-плёнка",
		Description:  "Упаковочная стретч-плёнка",
		Slug:         "stretch-plyonka",
		CategoryUUID: "c1000000-0000-4000-8000-000000000001",
		Article:      "STR-017",
		Offers: []catalog.Offer{
			{UUID: "o1000000-0000-4000-8000-000000000003", Price: "1200.50", Currency: "RUB", Unit: "рулон", Quantity: 5},
			{UUID: "o1000000-0000-4000-8000-000000000004", Price: "5800.00", Currency: "RUB", Unit: "коробка", Quantity: 120},
		},
	},
}

var categories = []catalog.Category{
	{
		UUID: "c0000000-0000-4000-8000-000000000000",
		Name: "Упаковка",
		Slug: "upakovka",
		Children: []catalog.Category{
			{UUID: "c1000000-0000-4000-8000-000000000001", Name: "Пакеты и плёнка", Slug: "pakety-i-plyonka", Children: []catalog.Category{}},
			{UUID: "c1000000-0000-4000-8000-000000000002", Name: "Мешки", Slug: "meshki"},
		},
	},
}

func main() {
	var addr string
	flag.StringVar(&addr, "addr", "0.0.0.0:9000", "listen address")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", listProducts)
	mux.HandleFunc("GET /products/slug/{slug}", productBySlug)
	mux.HandleFunc("GET /products/{uuid}", productByUUID)
	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, _ *http.Request) {
		writeData(w, http.StatusOK, categories)
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	slog.Info("catalog stub listening", slog.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func listProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if category == "" || p.CategoryUUID == category {
			out = append(out, p)
		}
	}
	writeData(w, http.StatusOK, out)
}

func productByUUID(w http.ResponseWriter, r *http.Request) {
	for _, p := range products {
		if p.UUID == r.PathValue("uuid") {
			writeData(w, http.StatusOK, p)
			return
		}
	}
	writeData(w, http.StatusNotFound, map[string]string{"error": "product not found"})
}

func productBySlug(w http.ResponseWriter, r *http.Request) {
	for _, p := range products {
		if p.Slug == r.PathValue("slug") {
			writeData(w, http.StatusOK, p)
			return
		}
	}
	writeData(w, http.StatusNotFound, map[string]string{"error": "product not found"})
}

func writeData(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": v})
}
