package service

import "time"

// Auth fetch outcomes reported to Metrics.
const (
	AuthOutcomeAuthenticated   = "authenticated"
	AuthOutcomeUnauthenticated = "unauthenticated"
	AuthOutcomeError           = "error"
)

// Navigation decisions reported to Metrics.
const (
	NavigationAllowed    = "allowed"
	NavigationRedirected = "redirected"
)

// Page change sources reported to Metrics.
const (
	PageChangeURL      = "url"
	PageChangeExplicit = "explicit"
)

// Metrics receives service-level measurements. internal/observability/metrics
// provides the Prometheus implementation.
type Metrics interface {
	ObserveAuthFetch(outcome string, elapsed time.Duration)
	ObserveNavigation(route, decision string)
	ObservePageChange(source string)
	SetAuthStates(n int)
}

type nopMetrics struct{}

func (nopMetrics) ObserveAuthFetch(string, time.Duration) {}
func (nopMetrics) ObserveNavigation(string, string)       {}
func (nopMetrics) ObservePageChange(string)               {}
func (nopMetrics) SetAuthStates(int)                      {}

func metricsOrNop(m Metrics) Metrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}
