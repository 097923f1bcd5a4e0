package handlers

import "net/http"

// wantsPartial reports whether htmx issued the request to swap a fragment.
// Boosted navigations replace the whole body and get the full page.
func wantsPartial(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Boosted") != "true"
}

// refreshPage tells htmx to reload the page so every region re-renders.
func refreshPage(w http.ResponseWriter) {
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusNoContent)
}
