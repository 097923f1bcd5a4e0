package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/catalog/catalogtest"
	"storefront/internal/theme"
)

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) healthResponse {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}
	var resp healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Time.IsZero() {
		t.Fatal("expected response time to be populated")
	}
	return resp
}

func TestHealthReportsConfiguredStorefront(t *testing.T) {
	f := &catalogtest.Fetcher{}
	withTestPreferences(t, f, theme.NewMemoryStorage())

	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	resp := decodeHealth(t, w)
	if resp.Status != "ok" || resp.Catalog != "configured" || !resp.Sessions || !resp.Preferences {
		t.Fatalf("unexpected health response: %+v", resp)
	}
	if f.Calls != 0 {
		t.Fatalf("health must not reach the catalog, got %d fetches", f.Calls)
	}
}

func TestHealthReportsMissingFetcher(t *testing.T) {
	withTestDependencies(t, nil)

	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
	resp := decodeHealth(t, w)
	if resp.Status != "degraded" || resp.Catalog != "missing" || resp.Preferences {
		t.Fatalf("unexpected health response: %+v", resp)
	}
}
