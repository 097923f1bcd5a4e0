package handlers

import (
	"net/http"

	"storefront/internal/catalog"
	applog "storefront/internal/log"
	"storefront/internal/metrics"
	"storefront/internal/views/pages"
)

// Products performs the single upstream fetch of a page load and returns the
// results partial, refreshing the category dropdown out of band.
func Products(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	criteria := catalog.CriteriaFromRequest(r)
	state := loadProducts(r)
	respondWithResults(w, r, criteria, state, true)
}

// SearchProducts refilters the product set fetched for this session. It only
// reaches upstream when the session holds no snapshot yet.
func SearchProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	criteria := catalog.CriteriaFromRequest(r)
	products, ok := rememberedProducts(r)
	if !ok {
		applog.Debug(r.Context(), "no product snapshot in session, fetching")
		respondWithResults(w, r, criteria, loadProducts(r), true)
		return
	}
	respondWithResults(w, r, criteria, catalog.Loaded(products), false)
}

func respondWithResults(w http.ResponseWriter, r *http.Request, criteria catalog.Criteria, state catalog.State, refreshCategories bool) {
	view := pages.NewStorefrontView(themeStore(r).Get(), criteria, state)
	visible := view.Visible()
	metrics.FilterResults.Observe(float64(len(visible)))
	applog.Debug(r.Context(), "filtered products", "query", criteria.Query, "category", criteria.Category, "visible", len(visible))

	if !wantsPartial(r) {
		render(w, r, pages.Storefront(view))
		return
	}
	render(w, r, pages.Results(view, refreshCategories))
}
