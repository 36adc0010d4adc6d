package config

import (
	"log/slog"
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_ParseAuthEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/")
	t.Setenv("AUTH_ME_PATH", "/api/user/me")
	t.Setenv("AUTH_LOGIN_URL", "/auth/oauth/vk")
	t.Setenv("AUTH_STATE_IDLE_TTL", "5m")
	t.Setenv("AUTH_REQUEST_TIMEOUT", "3s")
	t.Setenv("AUTH_SNAPSHOT_STORE_ENABLED", "true")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	expected := AuthConfig{
		APIBaseURL:           "https://api.example.com",
		MePath:               "/api/user/me",
		LoginURL:             "/auth/oauth/vk",
		StateIdleTTL:         5 * time.Minute,
		RequestTimeout:       3 * time.Second,
		SnapshotStoreEnabled: true,
	}

	if !reflect.DeepEqual(cfg.Auth, expected) {
		t.Fatalf("unexpected auth configuration:\nexpected: %#v\ngot:      %#v", expected, cfg.Auth)
	}
}

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr: expected :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.SessionCookie != "session" {
		t.Errorf("HTTP.SessionCookie: expected session, got %q", cfg.HTTP.SessionCookie)
	}
	if cfg.Auth.LoginURL != "/auth/oauth/vk" {
		t.Errorf("Auth.LoginURL: expected /auth/oauth/vk, got %q", cfg.Auth.LoginURL)
	}
	if cfg.UI.ImagePlaceholder != "/climber_no_photo.svg" {
		t.Errorf("UI.ImagePlaceholder: unexpected %q", cfg.UI.ImagePlaceholder)
	}
	if !cfg.UI.PreserveScroll {
		t.Error("UI.PreserveScroll should default to true")
	}
	if cfg.UI.ScrollRestoreDelay != 100*time.Millisecond {
		t.Errorf("UI.ScrollRestoreDelay: expected 100ms, got %s", cfg.UI.ScrollRestoreDelay)
	}
	if cfg.UI.ItemsPerPage != 20 {
		t.Errorf("UI.ItemsPerPage: expected 20, got %d", cfg.UI.ItemsPerPage)
	}
	if cfg.Redis.Prefix != "summits:auth:" {
		t.Errorf("Redis.Prefix: unexpected %q", cfg.Redis.Prefix)
	}
}

func TestUIConfig_Sanitize(t *testing.T) {
	cfg := UIConfig{
		ImagePlaceholder:   "  ",
		DefaultTitle:       "",
		ScrollRestoreDelay: -time.Second,
		DefaultLocale:      " ",
		ItemsPerPage:       0,
		RoutesFile:         " routes.yaml ",
	}
	cfg.Sanitize()

	if cfg.ImagePlaceholder != defaultPlaceholder {
		t.Errorf("expected placeholder fallback, got %q", cfg.ImagePlaceholder)
	}
	if cfg.DefaultTitle != defaultTitle {
		t.Errorf("expected default title fallback, got %q", cfg.DefaultTitle)
	}
	if cfg.ScrollRestoreDelay != 0 {
		t.Errorf("negative delay should clamp to 0, got %s", cfg.ScrollRestoreDelay)
	}
	if cfg.DefaultLocale != "ru" {
		t.Errorf("expected ru locale fallback, got %q", cfg.DefaultLocale)
	}
	if cfg.ItemsPerPage != defaultItemsPerPage {
		t.Errorf("expected %d items per page, got %d", defaultItemsPerPage, cfg.ItemsPerPage)
	}
	if cfg.RoutesFile != "routes.yaml" {
		t.Errorf("expected trimmed routes file, got %q", cfg.RoutesFile)
	}
}

func TestObservabilityConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: " WARN ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "", want: slog.LevelInfo},
		{in: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg := ObservabilityConfig{LogLevel: tt.in}
			cfg.Sanitize()
			if got := cfg.SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel(%q): expected %v, got %v", tt.in, tt.want, got)
			}
		})
	}
}

func TestObservabilityTracingConfig_DisabledWithoutEndpoint(t *testing.T) {
	cfg := ObservabilityTracingConfig{Enabled: true, Endpoint: "  "}
	cfg.Sanitize()
	if cfg.IsEnabled() {
		t.Fatal("tracing must stay disabled without an endpoint")
	}
	if cfg.ServiceName != "summits-web" {
		t.Errorf("expected default service name, got %q", cfg.ServiceName)
	}
}

func TestAppConfig_DetectDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")
	cfg := AppConfig{}
	cfg.Sanitize()
	if !cfg.IsDev {
		t.Fatal("NODE_ENV=development should enable dev mode")
	}
}
