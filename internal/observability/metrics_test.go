package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/riskibarqy/matchday/internal/domain/ad"
)

type staticClockGauges struct {
	tickers     int
	subscribers int
}

func (g staticClockGauges) ActiveTickers() int { return g.tickers }
func (g staticClockGauges) Subscribers() int   { return g.subscribers }

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := NewMetrics()
	m.ObserveHTTPRequest(http.MethodGet, "GET /v1/ads", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "GET /v1/ads", http.StatusOK, 30*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "GET /v1/ads", http.StatusBadRequest, time.Millisecond)

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "GET /v1/ads", "200")); got != 2 {
		t.Fatalf("unexpected 200 count: %v", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "GET /v1/ads", "400")); got != 1 {
		t.Fatalf("unexpected 400 count: %v", got)
	}
}

func TestMetrics_ObserveAdsServed(t *testing.T) {
	m := NewMetrics()
	m.ObserveAdsServed("home", ad.SizeInline, 3)
	m.ObserveAdsServed("news", ad.SizeInline, 0)
	m.ObserveAdsServed("home", ad.SizeSidebar, 1)

	if got := testutil.ToFloat64(m.adsServed.WithLabelValues("inline")); got != 3 {
		t.Fatalf("unexpected inline creatives: %v", got)
	}
	if got := testutil.ToFloat64(m.adRequests.WithLabelValues("inline", "false")); got != 1 {
		t.Fatalf("unexpected empty inline requests: %v", got)
	}
	if got := testutil.ToFloat64(m.adRequests.WithLabelValues("sidebar", "true")); got != 1 {
		t.Fatalf("unexpected filled sidebar requests: %v", got)
	}
}

func TestMetrics_HandlerExposesClockGauges(t *testing.T) {
	m := NewMetrics()
	if err := m.RegisterClockHub(staticClockGauges{tickers: 2, subscribers: 5}); err != nil {
		t.Fatalf("register clock hub: %v", err)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{"matchday_clock_active_tickers 2", "matchday_clock_subscribers 5"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveHTTPRequest(http.MethodGet, "GET /healthz", http.StatusOK, time.Millisecond)
	m.ObserveAdsServed("home", ad.SizeFull, 1)
	if err := m.RegisterClockHub(staticClockGauges{}); err != nil {
		t.Fatalf("register on nil metrics: %v", err)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
