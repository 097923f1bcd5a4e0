package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	applog "storefront/internal/log"
)

type healthResponse struct {
	Status      string    `json:"status"`
	Catalog     string    `json:"catalog"`
	Sessions    bool      `json:"sessions"`
	Preferences bool      `json:"preferences"`
	Time        time.Time `json:"time"`
}

// Health reports whether the storefront can serve pages. It never calls the
// upstream catalog; a missing fetcher reports "degraded" with status 503.
func Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:      "ok",
		Catalog:     "configured",
		Sessions:    sessionManager != nil,
		Preferences: preferences != nil,
		Time:        time.Now().UTC(),
	}
	status := http.StatusOK
	if fetcher == nil {
		resp.Status = "degraded"
		resp.Catalog = "missing"
		status = http.StatusServiceUnavailable
	}
	applog.Debug(r.Context(), "health check", "status", resp.Status, "catalog", resp.Catalog)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		applog.Error(r.Context(), "failed to encode health response", "error", err)
	}
}
