package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riskibarqy/matchday/internal/domain/ad"
)

const metricsNamespace = "matchday"

// ClockGauges exposes the live state of the match clock hub.
type ClockGauges interface {
	ActiveTickers() int
	Subscribers() int
}

// Metrics owns a private prometheus registry. A nil *Metrics records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	adRequests   *prometheus.CounterVec
	adsServed    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		adRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "ads",
			Name:      "slot_requests_total",
			Help:      "Ad slot requests by size type and whether any creative was returned.",
		}, []string{"size_type", "filled"}),
		adsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "ads",
			Name:      "creatives_served_total",
			Help:      "Creatives returned to ad slots by size type.",
		}, []string{"size_type"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.adRequests,
		m.adsServed,
	)

	return m
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveAdsServed drops the page label: pages are client supplied.
func (m *Metrics) ObserveAdsServed(_ string, sizeType ad.SizeType, count int) {
	if m == nil {
		return
	}
	label := string(sizeType)
	m.adRequests.WithLabelValues(label, strconv.FormatBool(count > 0)).Inc()
	if count > 0 {
		m.adsServed.WithLabelValues(label).Add(float64(count))
	}
}

// RegisterClockHub adds gauges read from the hub on every scrape.
func (m *Metrics) RegisterClockHub(hub ClockGauges) error {
	if m == nil || hub == nil {
		return nil
	}

	tickers := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "clock",
		Name:      "active_tickers",
		Help:      "Matches with a running clock ticker.",
	}, func() float64 { return float64(hub.ActiveTickers()) })
	subscribers := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "clock",
		Name:      "subscribers",
		Help:      "Open match clock subscriptions.",
	}, func() float64 { return float64(hub.Subscribers()) })

	if err := m.registry.Register(tickers); err != nil {
		return err
	}
	return m.registry.Register(subscribers)
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
