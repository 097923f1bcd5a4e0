// Package catalogtest provides fixture products and a fake products API.
package catalogtest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"storefront/models"
)

// Products returns a small catalogue spanning three categories.
func Products() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Red Shoes", Description: "Leather shoes for formal wear", Image: "https://img.example/1.png", Price: decimal.RequireFromString("59.90"), Category: "clothing"},
		{ID: 2, Title: "Wireless Mouse", Description: "A red ergonomic mouse", Image: "https://img.example/2.png", Price: decimal.RequireFromString("24.5"), Category: "electronics"},
		{ID: 3, Title: "Gold Ring", Description: "Solid gold band", Image: "https://img.example/3.png", Price: decimal.RequireFromString("695"), Category: "jewelery"},
		{ID: 4, Title: "Cotton Shirt", Description: "Slim fit shirt", Image: "https://img.example/4.png", Price: decimal.RequireFromString("19.99"), Category: "clothing"},
		{ID: 5, Title: "USB-C Monitor", Description: "27 inch display", Image: "https://img.example/5.png", Price: decimal.RequireFromString("329.00"), Category: "electronics"},
	}
}

// Server is a fake products endpoint that counts requests.
type Server struct {
	*httptest.Server
	requests  atomic.Int64
	lastLimit atomic.Int64
}

// Requests reports how many product requests have been served.
func (s *Server) Requests() int {
	return int(s.requests.Load())
}

// LastLimit reports the limit query parameter of the most recent request.
func (s *Server) LastLimit() int {
	return int(s.lastLimit.Load())
}

// NewServer serves products as the JSON body of GET /products. The server is
// closed when the test finishes.
func NewServer(t testing.TB, products []models.Product) *Server {
	t.Helper()
	body, err := json.Marshal(products)
	if err != nil {
		t.Fatalf("encode fixture products: %v", err)
	}
	return NewRawServer(t, http.StatusOK, string(body))
}

// NewRawServer replies to GET /products with the given status and body.
func NewRawServer(t testing.TB, status int, body string) *Server {
	t.Helper()
	srv := &Server{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			http.NotFound(w, r)
			return
		}
		srv.requests.Add(1)
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		srv.lastLimit.Store(int64(limit))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// Fetcher is an in-process fetcher returning fixed results.
type Fetcher struct {
	Products []models.Product
	Err      error
	Calls    int
}

// FetchProducts records the call and returns the configured result.
func (f *Fetcher) FetchProducts(_ context.Context, limit int) ([]models.Product, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	if limit > 0 && len(f.Products) > limit {
		return f.Products[:limit], nil
	}
	return f.Products, nil
}
