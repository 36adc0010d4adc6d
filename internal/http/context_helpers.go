package httpx

import (
	"context"

	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	"github.com/summitlog/summits-web/internal/domain/route"
	"github.com/summitlog/summits-web/internal/http/uiutil"
)

// Unexported context key types avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same keys.
type (
	requestIDKey struct{}
	pageIDKey    struct{}
	localeKey    struct{}
	navKey       struct{}
)

// Navigation is what the guard resolved for an allowed page request.
type Navigation struct {
	Route   route.Route
	Title   string
	User    *domainauth.User
	Session string // raw API session cookie value, forwarded to API calls
}

// SetRequestIDInContext returns a child context carrying the request ID.
func SetRequestIDInContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID, or "" outside the RequestID middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// SetPageIDInContext returns a child context carrying the page session ID.
func SetPageIDInContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, pageIDKey{}, id)
}

// PageIDFromContext returns the page session ID; "" means the request has none.
func PageIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(pageIDKey{}).(string)
	return id
}

// SetLocaleInContext returns a child context carrying the presentation locale.
func SetLocaleInContext(ctx context.Context, loc uiutil.Locale) context.Context {
	return context.WithValue(ctx, localeKey{}, loc)
}

// LocaleFromContext returns the request locale, defaulting to Russian.
func LocaleFromContext(ctx context.Context) uiutil.Locale {
	if loc, ok := ctx.Value(localeKey{}).(uiutil.Locale); ok && loc != "" {
		return loc
	}
	return uiutil.LocaleRU
}

// SetNavigationInContext returns a child context carrying the guard's result.
// If nav is nil, the original ctx is returned unchanged.
func SetNavigationInContext(ctx context.Context, nav *Navigation) context.Context {
	if nav == nil {
		return ctx
	}
	return context.WithValue(ctx, navKey{}, nav)
}

// NavigationFromContext returns the guard's result and whether one is present.
func NavigationFromContext(ctx context.Context) (*Navigation, bool) {
	nav, ok := ctx.Value(navKey{}).(*Navigation)
	return nav, ok && nav != nil
}
