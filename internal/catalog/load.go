package catalog

import (
	"context"
	"time"

	applog "storefront/internal/log"
	"storefront/internal/metrics"
	"storefront/models"
)

// State is what one page load knows about the product set.
type State struct {
	Loading    bool
	Products   []models.Product
	Categories []string
	Err        error
}

// Pending is the state before the fetch has completed.
func Pending() State {
	return State{Loading: true, Categories: []string{AllCategories}}
}

// Loaded wraps an already fetched product set.
func Loaded(products []models.Product) State {
	return State{Products: products, Categories: Categories(products)}
}

// Load performs the single fetch for a page load. Failures leave the product
// set empty; they are never retried.
func Load(ctx context.Context, fetcher Fetcher, limit int) State {
	start := time.Now()
	products, err := fetcher.FetchProducts(ctx, limit)
	metrics.CatalogFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.CatalogFetchesTotal.WithLabelValues("error").Inc()
		applog.Error(ctx, "product fetch failed", "limit", limit, "error", err)
		return State{Categories: []string{AllCategories}, Err: err}
	}

	metrics.CatalogFetchesTotal.WithLabelValues("ok").Inc()
	metrics.CatalogProductsLoaded.Set(float64(len(products)))
	applog.Debug(ctx, "product fetch completed", "count", len(products), "elapsed", time.Since(start).String())
	return Loaded(products)
}
