package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summitlog/summits-web/internal/service"
)

var _ service.Metrics = (*Metrics)(nil)

func TestMetrics_ServiceObservations(t *testing.T) {
	m := New()

	m.ObserveAuthFetch(service.AuthOutcomeAuthenticated, 20*time.Millisecond)
	m.ObserveAuthFetch(service.AuthOutcomeUnauthenticated, 5*time.Millisecond)
	m.ObserveAuthFetch(service.AuthOutcomeUnauthenticated, 5*time.Millisecond)
	m.ObserveNavigation("user_me", service.NavigationRedirected)
	m.ObservePageChange(service.PageChangeExplicit)
	m.SetAuthStates(4)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.authFetches.WithLabelValues(service.AuthOutcomeAuthenticated)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.authFetches.WithLabelValues(service.AuthOutcomeUnauthenticated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.navigations.WithLabelValues("user_me", service.NavigationRedirected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pageChanges.WithLabelValues(service.PageChangeExplicit)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.authStates))
	assert.Equal(t, 1, testutil.CollectAndCount(m.authFetchTime))
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := New()
	m.ObserveHTTP("/{ridge_id}/{summit_id}", http.StatusOK, time.Millisecond)
	m.ObserveHTTP("", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/{ridge_id}/{summit_id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("unmatched", "404")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.SetAuthStates(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "summits_web_auth_states 2"), body)
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
