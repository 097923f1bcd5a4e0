package handlers

import (
	"encoding/gob"
	"net/http"

	"github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"

	"storefront/internal/catalog"
	applog "storefront/internal/log"
	"storefront/internal/theme"
	"storefront/models"
)

const (
	sessionProductsKey = "catalog:products"
	sessionLoadedKey   = "catalog:loaded"
)

var (
	sessionManager *scs.SessionManager
	fetcher        catalog.Fetcher
	preferences    theme.Storage
	catalogLimit   = catalog.DefaultLimit
)

func init() {
	gob.Register([]models.Product{})
}

// Configure installs the shared dependencies used by the HTTP handlers. prefs
// supplies the site-wide default theme for visitors who never picked one and
// may be nil.
func Configure(sm *scs.SessionManager, f catalog.Fetcher, limit int, prefs theme.Storage) {
	sessionManager = sm
	fetcher = f
	preferences = prefs
	if limit <= 0 {
		limit = catalog.DefaultLimit
	}
	catalogLimit = limit
}

// themeStore opens the visitor's theme store on top of their session.
func themeStore(r *http.Request) *theme.Store {
	var session theme.Storage
	if sessionManager != nil {
		session = theme.NewSessionStorage(sessionManager)
	}
	if preferences == nil {
		return theme.Open(r.Context(), session)
	}
	return theme.Open(r.Context(), theme.Layered(session, preferences))
}

// loadProducts performs the page-load fetch and remembers the outcome in the
// session so later searches refilter it without another upstream request. A
// failed fetch is remembered as an empty set.
func loadProducts(r *http.Request) catalog.State {
	if fetcher == nil {
		applog.Error(r.Context(), "product fetcher not configured")
		return catalog.State{Categories: []string{catalog.AllCategories}, Err: catalog.ErrUnavailable}
	}
	state := catalog.Load(r.Context(), fetcher, catalogLimit)
	rememberProducts(r, state.Products)
	return state
}

func rememberProducts(r *http.Request, products []models.Product) {
	if sessionManager == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			applog.Debug(r.Context(), "no session to hold product snapshot", "panic", rec)
		}
	}()
	sessionManager.Put(r.Context(), sessionLoadedKey, true)
	if len(products) == 0 {
		sessionManager.Remove(r.Context(), sessionProductsKey)
		return
	}
	sessionManager.Put(r.Context(), sessionProductsKey, products)
}

func rememberedProducts(r *http.Request) (products []models.Product, ok bool) {
	if sessionManager == nil {
		return nil, false
	}
	defer func() {
		if rec := recover(); rec != nil {
			products, ok = nil, false
		}
	}()
	if !sessionManager.GetBool(r.Context(), sessionLoadedKey) {
		return nil, false
	}
	products, _ = sessionManager.Get(r.Context(), sessionProductsKey).([]models.Product)
	return products, true
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render view", "path", r.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
