package handlers

import (
	"net/http"

	"storefront/internal/catalog"
	applog "storefront/internal/log"
	"storefront/internal/views/pages"
)

// Home renders the storefront shell. The grid starts as skeleton cards that
// pull /products once htmx has loaded. Requests whose filters narrow the
// product set, or that ask for ?nojs, are served fully rendered.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	criteria := catalog.CriteriaFromRequest(r)
	state := catalog.Pending()
	if r.URL.Query().Has("nojs") || !criteria.IsDefault() {
		applog.Debug(r.Context(), "rendering storefront without deferred load", "query", criteria.Query, "category", criteria.Category)
		state = loadProducts(r)
	}

	render(w, r, pages.Storefront(pages.NewStorefrontView(themeStore(r).Get(), criteria, state)))
}
