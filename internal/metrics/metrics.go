// Package metrics defines Prometheus collectors for the storefront.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Catalog metrics.
var (
	CatalogFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_fetches_total",
		Help:      "Upstream product fetches by outcome.",
	}, []string{"outcome"})

	CatalogFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_fetch_duration_seconds",
		Help:      "Duration of upstream product fetches in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	CatalogProductsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_products_loaded",
		Help:      "Number of products returned by the most recent fetch.",
	})

	FilterResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "filter_visible_products",
		Help:      "Number of products left visible after filtering.",
		Buckets:   prometheus.LinearBuckets(0, 5, 5),
	})
)

// Theme metrics.
var ThemeChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "theme_changes_total",
	Help:      "Theme selections by chosen theme.",
}, []string{"theme"})

// skipPaths are operational endpoints excluded from request metrics.
var skipPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
}

// Middleware records request duration and status for every routed path.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if _, skip := skipPaths[path]; skip {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		status := strconv.Itoa(rec.status)
		HTTPRequestDuration.WithLabelValues(r.Method, routeLabel(path), status).Observe(time.Since(start).Seconds())
		HTTPRequestsTotal.WithLabelValues(r.Method, routeLabel(path), status).Inc()
	})
}

// routeLabel collapses unknown paths so label cardinality stays bounded.
func routeLabel(path string) string {
	switch path {
	case "/", "/products", "/products/search", "/theme", "/contact":
		return path
	default:
		return "other"
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
