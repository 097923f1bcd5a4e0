package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront/internal/handlers"
	applog "storefront/internal/log"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/products", handlers.Products)
	mux.HandleFunc("/products/search", handlers.SearchProducts)
	mux.HandleFunc("/theme", handlers.UpdateTheme)
	mux.HandleFunc("/contact", handlers.Contact)
	mux.HandleFunc("/", handlers.Home)
	applog.Debug(context.Background(), "routes registered", "paths", []string{"/", "/products", "/products/search", "/theme", "/contact", "/healthz", "/metrics"})
	return mux
}
