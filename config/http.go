package config

import "strings"

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the public base URL of the web tier (e.g., "https://summits.example.com").
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// SessionCookie is the name of the API session cookie forwarded on every API call.
	SessionCookie string `env:"HTTP_SESSION_COOKIE" envDefault:"session"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	h.Addr = strings.TrimSpace(h.Addr)
	if h.Addr == "" {
		h.Addr = ":8080"
	}
	h.BaseURL = strings.TrimRight(strings.TrimSpace(h.BaseURL), "/")
	if h.SessionCookie = strings.TrimSpace(h.SessionCookie); h.SessionCookie == "" {
		h.SessionCookie = "session"
	}
}
