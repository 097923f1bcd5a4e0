package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	applog "storefront/internal/log"
	"storefront/internal/metrics"
	"storefront/models"
)

type themeResponse struct {
	Theme string `json:"theme"`
}

// UpdateTheme switches the visitor's active theme and persists it in their
// session.
func UpdateTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "theme update with unsupported method", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse theme form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	value := strings.TrimSpace(r.FormValue("theme"))
	if !models.ValidTheme(value) {
		applog.Debug(r.Context(), "received invalid theme selection", "value", value)
		http.Error(w, "invalid theme selection", http.StatusBadRequest)
		return
	}

	store := themeStore(r)
	unsubscribe := store.Subscribe(func(active models.Theme) {
		metrics.ThemeChangesTotal.WithLabelValues(string(active)).Inc()
		applog.Info(r.Context(), "theme changed", "theme", string(active))
	})
	defer unsubscribe()
	store.Set(r.Context(), models.Theme(value))

	switch {
	case strings.Contains(r.Header.Get("Accept"), "application/json"):
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(themeResponse{Theme: string(store.Get())}); err != nil {
			applog.Error(r.Context(), "failed to encode theme response", "error", err)
		}
	case wantsPartial(r):
		refreshPage(w)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
