package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Post("/declarations/sample", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/declarations/sample", http.MethodPost, "409"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/declarations/sample", nil))
	if rr.Code != http.StatusConflict {
		t.Fatalf("status=%d", rr.Code)
	}
	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/declarations/sample", http.MethodPost, "409")); got != before+1 {
		t.Fatalf("requests_total=%v want %v", got, before+1)
	}
	if n := testutil.CollectAndCount(httpRequestDuration, "shaderinspector_http_request_duration_seconds"); n == 0 {
		t.Fatal("expected a duration series")
	}
	if v := testutil.ToFloat64(httpInflight); v != 0 {
		t.Fatalf("inflight=%v after request", v)
	}
}

func TestMetricsMiddleware_UnmatchedPathsCollapse(t *testing.T) {
	h := MetricsMiddleware(http.NotFoundHandler())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404"))
	for _, p := range []string{"/a", "/b/c", "/shader.hlsl"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404")); got != before+3 {
		t.Fatalf("unmatched count=%v want %v", got, before+3)
	}
}

func TestMetricsEndpoint_ExposesFamilies(t *testing.T) {
	srv := newTestServer(t)
	rr := srv.do(http.MethodGet, "/healthz", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("healthz=%d", rr.Code)
	}
	rr = srv.do(http.MethodGet, "/metrics", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", rr.Code)
	}
	for _, name := range []string{"shaderinspector_http_requests_total", "shaderinspector_http_inflight_requests"} {
		if !strings.Contains(rr.Body.String(), name) {
			t.Fatalf("metrics missing %s", name)
		}
	}
}
