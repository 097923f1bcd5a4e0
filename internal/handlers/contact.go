package handlers

import (
	"net/http"

	"storefront/internal/views/pages"
)

// Contact renders the static contact page in the visitor's theme.
func Contact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	render(w, r, pages.Contact(themeStore(r).Get()))
}
