// Package metrics exposes the web tier's Prometheus instruments.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "summits_web"

// Metrics holds every instrument and implements the service-level Metrics hook.
type Metrics struct {
	registry *prometheus.Registry

	authFetches     *prometheus.CounterVec
	authFetchTime   prometheus.Histogram
	navigations     *prometheus.CounterVec
	pageChanges     *prometheus.CounterVec
	authStates      prometheus.Gauge
	httpRequests    *prometheus.CounterVec
	httpRequestTime *prometheus.HistogramVec
}

// New registers all instruments on a fresh registry, together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		authFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_fetch_total",
			Help:      "Auth status fetches against the API by outcome",
		}, []string{"outcome"}),
		authFetchTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "auth_fetch_duration_seconds",
			Help:      "Auth status fetch latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		navigations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "Navigation guard decisions by route",
		}, []string{"route", "decision"}),
		pageChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_changes_total",
			Help:      "Effective pagination changes by source",
		}, []string{"source"}),
		authStates: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "auth_states",
			Help:      "Page sessions currently holding an auth state",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by route pattern and status code",
		}, []string{"route", "code"}),
		httpRequestTime: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds by route pattern",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Registry returns the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveAuthFetch(outcome string, elapsed time.Duration) {
	m.authFetches.WithLabelValues(outcome).Inc()
	m.authFetchTime.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveNavigation(route, decision string) {
	m.navigations.WithLabelValues(route, decision).Inc()
}

func (m *Metrics) ObservePageChange(source string) {
	m.pageChanges.WithLabelValues(source).Inc()
}

func (m *Metrics) SetAuthStates(n int) {
	m.authStates.Set(float64(n))
}

// ObserveHTTP records one served request. route is the matched pattern, never the raw path.
func (m *Metrics) ObserveHTTP(route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.httpRequestTime.WithLabelValues(route).Observe(elapsed.Seconds())
}
