package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/summitlog/summits-web/config"
	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	"github.com/summitlog/summits-web/internal/mocks"
	mockauth "github.com/summitlog/summits-web/internal/mocks/auth"
)

type fakeAPI struct {
	*mocks.MockSummitsAPI
	*mockauth.StaticAuthSource
}

func testConfig() config.AppConfig {
	cfg := config.AppConfig{
		Auth: config.AuthConfig{APIBaseURL: "http://api.invalid"},
		UI:   config.UIConfig{PreserveScroll: true},
	}
	cfg.Observability.Metrics.Enabled = true
	cfg.Sanitize()
	return cfg
}

func buildTestApp(t *testing.T, cfg config.AppConfig) *App {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := fakeAPI{
		MockSummitsAPI: mocks.NewMockSummitsAPI(ctrl),
		StaticAuthSource: mockauth.NewStaticAuthSource(map[string]domainauth.User{
			"s3cr3t": {ID: 7, Name: "Anna"},
		}),
	}

	app, err := Build(context.Background(), BuildOptions{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		API:    api,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, app.Close()) })
	return app
}

func TestBuild_ServesPagesAndOps(t *testing.T) {
	app := buildTestApp(t, testConfig())

	tests := []struct {
		path string
		want int
	}{
		{"/about", http.StatusOK},
		{"/healthz", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/static/js/app.js", http.StatusOK},
		{"/climber_no_photo.svg", http.StatusOK},
		{"/user/me", http.StatusSeeOther},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			app.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestBuild_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Observability.Metrics.Enabled = false
	app := buildTestApp(t, cfg)

	rec := httptest.NewRecorder()
	app.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuild_ServesConfiguredPlaceholder(t *testing.T) {
	cfg := testConfig()
	cfg.UI.ImagePlaceholder = "/img/nobody.svg"
	app := buildTestApp(t, cfg)

	rec := httptest.NewRecorder()
	app.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/img/nobody.svg", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlaceholderPath(t *testing.T) {
	assert.Equal(t, "/img/nobody.svg", placeholderPath("/img/nobody.svg"))
	assert.Equal(t, "/climber_no_photo.svg", placeholderPath("https://cdn.example/none.svg"))
	assert.Equal(t, "/climber_no_photo.svg", placeholderPath("//cdn.example/none.svg"))
}

func TestBuild_BadRoutesFile(t *testing.T) {
	cfg := testConfig()
	cfg.UI.RoutesFile = "/does/not/exist.yaml"

	_, err := Build(context.Background(), BuildOptions{Config: cfg})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load routes")
}

func TestBuild_RequiresAPIBaseURL(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.APIBaseURL = ""

	_, err := Build(context.Background(), BuildOptions{Config: cfg})
	require.Error(t, err)
}

func TestServe_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	app := buildTestApp(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Serve(ctx, app, "127.0.0.1:0", slog.New(slog.NewTextHandler(io.Discard, nil))) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestNewServer_Timeouts(t *testing.T) {
	srv := newServer("", http.NotFoundHandler())
	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, 30*time.Second, srv.ReadTimeout)
	assert.Equal(t, 120*time.Second, srv.IdleTimeout)
}
