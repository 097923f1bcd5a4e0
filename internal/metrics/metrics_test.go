package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/products", "418"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products", nil))

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/products", "418"))
	if after != before+1 {
		t.Fatalf("expected request counter to increase by one, got %v -> %v", before, after)
	}
	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected wrapped status to pass through, got %d", rr.Code)
	}
}

func TestMiddlewareSkipsOperationalPaths(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "other", "200"))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "other", "200"))

	if after != before {
		t.Fatalf("expected /healthz to be excluded from request metrics")
	}
}

func TestRouteLabelCollapsesUnknownPaths(t *testing.T) {
	t.Parallel()

	if got := routeLabel("/products/search"); got != "/products/search" {
		t.Fatalf("routeLabel kept known path as %q", got)
	}
	if got := routeLabel("/contact"); got != "/contact" {
		t.Fatalf("routeLabel kept contact page as %q", got)
	}
	if got := routeLabel("/wp-admin"); got != "other" {
		t.Fatalf("routeLabel(/wp-admin) = %q, want other", got)
	}
}
