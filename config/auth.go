package config

import (
	"strings"
	"time"
)

const (
	defaultMePath   = "/api/user/me"
	defaultLoginURL = "/auth/oauth/vk"
)

// AuthConfig groups the settings used to resolve who the visitor is.
type AuthConfig struct {
	// APIBaseURL is the origin of the climbing-log API.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:5000"`

	// MePath is the "who am I" endpoint queried to initialize auth state.
	MePath string `env:"AUTH_ME_PATH" envDefault:"/api/user/me"`

	// LoginURL is the external login entry point unauthenticated navigations are sent to.
	LoginURL string `env:"AUTH_LOGIN_URL" envDefault:"/auth/oauth/vk"`

	// StateIdleTTL evicts per-page auth states that have not been used for this long.
	StateIdleTTL time.Duration `env:"AUTH_STATE_IDLE_TTL" envDefault:"30m"`

	// RequestTimeout bounds a single API call. Zero disables the client-side timeout.
	RequestTimeout time.Duration `env:"AUTH_REQUEST_TIMEOUT" envDefault:"10s"`

	// SnapshotStoreEnabled shares resolved auth states between instances through Redis.
	SnapshotStoreEnabled bool `env:"AUTH_SNAPSHOT_STORE_ENABLED" envDefault:"false"`
}

// Sanitize normalises auth configuration values.
func (a *AuthConfig) Sanitize() {
	a.APIBaseURL = strings.TrimRight(strings.TrimSpace(a.APIBaseURL), "/")
	if a.MePath = strings.TrimSpace(a.MePath); a.MePath == "" {
		a.MePath = defaultMePath
	}
	if a.LoginURL = strings.TrimSpace(a.LoginURL); a.LoginURL == "" {
		a.LoginURL = defaultLoginURL
	}
	if a.StateIdleTTL <= 0 {
		a.StateIdleTTL = 30 * time.Minute
	}
	if a.RequestTimeout < 0 {
		a.RequestTimeout = 0
	}
}
