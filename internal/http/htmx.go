package httpx

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// PageIDHeader carries the page session ID on requests issued from a rendered page.
const PageIDHeader = "X-Page-Id"

// IsHTMX reports whether the request was initiated by htmx (Hx-Request: true).
func IsHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Request"), "true")
}

// IsBoosted reports whether the request was initiated by hx-boost (Hx-Boosted: true).
func IsBoosted(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Boosted"), "true")
}

// IsHistoryRestore reports true when htmx is restoring history (Hx-History-Restore-Request: true).
func IsHistoryRestore(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-History-Restore-Request"), "true")
}

// IsNavigation reports whether the request moves the browser to a new URL:
// a plain page load, a boosted link, or a history restore.
func IsNavigation(r *http.Request) bool {
	return !IsHTMX(r) || IsBoosted(r) || IsHistoryRestore(r)
}

// WantsPartial returns true when the handler should return only the targeted fragment.
// Navigations always get the full layout; htmx extracts the body for boosted swaps.
func WantsPartial(r *http.Request) bool {
	return !IsNavigation(r)
}

// CurrentURL returns the browser URL the htmx request was issued from.
func CurrentURL(r *http.Request) (*url.URL, bool) {
	raw := strings.TrimSpace(r.Header.Get("Hx-Current-Url"))
	if raw == "" {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	return u, true
}

// RequestPageID returns the page session ID sent by htmx, if any.
func RequestPageID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(PageIDHeader))
}

// SetHXRedirect instructs htmx to redirect the browser to the given URL.
func SetHXRedirect(w http.ResponseWriter, url string) { w.Header().Set("Hx-Redirect", url) }

// SetHXReplaceURL replaces the current browser URL without adding a history entry.
func SetHXReplaceURL(w http.ResponseWriter, url string) { w.Header().Set("Hx-Replace-Url", url) }

// SetHXTriggerAfterSettle triggers a client-side event once the swapped content has settled.
// The header is a JSON object {"<event>": <payload>}; a nil payload sends true.
func SetHXTriggerAfterSettle(w http.ResponseWriter, event string, payload any) {
	setTrigger(w, "Hx-Trigger-After-Settle", event, payload)
}

func setTrigger(w http.ResponseWriter, header, event string, payload any) {
	var value any = true
	if payload != nil {
		value = payload
	}
	b, err := json.Marshal(map[string]any{event: value})
	if err != nil {
		// Fall back to a boolean trigger if payload cannot be serialized
		w.Header().Set(header, "{\""+event+"\":true}")
		return
	}
	w.Header().Set(header, string(b))
}

// HTMXResponse provides a fluent API for building HTMX responses.
type HTMXResponse struct {
	w http.ResponseWriter
}

// HTMX creates a new HTMXResponse for fluent response building.
func HTMX(w http.ResponseWriter) *HTMXResponse {
	return &HTMXResponse{w: w}
}

// Redirect sets HX-Redirect and writes 204 No Content.
// The handler should return immediately afterwards.
func (h *HTMXResponse) Redirect(url string) {
	SetHXRedirect(h.w, url)
	h.w.WriteHeader(http.StatusNoContent)
}

// ReplaceURL replaces the browser URL for the new content. Chainable.
func (h *HTMXResponse) ReplaceURL(url string) *HTMXResponse {
	SetHXReplaceURL(h.w, url)
	return h
}

// TriggerAfterSettle triggers a client-side event after settle. Chainable.
func (h *HTMXResponse) TriggerAfterSettle(event string, payload any) *HTMXResponse {
	SetHXTriggerAfterSettle(h.w, event, payload)
	return h
}

// NoContent tells htmx there is nothing to swap.
func (h *HTMXResponse) NoContent() {
	h.w.WriteHeader(http.StatusNoContent)
}
