package service

import (
	"context"
	"log/slog"

	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	"github.com/summitlog/summits-web/internal/domain/route"
)

// NavigationGuardOptions groups dependencies for NavigationGuard.
type NavigationGuardOptions struct {
	LoginURL     string // Required: external login entry point
	DefaultTitle string // Used when a route has no title
	Hooks        NavigationGuardHooks
}

// NavigationGuardHooks are optional observers of guard decisions.
type NavigationGuardHooks struct {
	Logger  *slog.Logger
	Metrics Metrics
}

// Decision is the outcome of checking one navigation.
type Decision struct {
	// Allow is false when the navigation must leave the app for RedirectURL.
	Allow       bool
	RedirectURL string
	// Title is the document title for an allowed navigation.
	Title string
	User  *domainauth.User
}

// NavigationGuard decides, per navigation, whether the target route may render.
type NavigationGuard struct {
	loginURL     string
	defaultTitle string
	logger       *slog.Logger
	metrics      Metrics
}

// NewNavigationGuard constructs a NavigationGuard.
func NewNavigationGuard(opts NavigationGuardOptions) *NavigationGuard {
	if opts.LoginURL == "" {
		panic("service: NavigationGuard requires a login URL")
	}
	return &NavigationGuard{
		loginURL:     opts.LoginURL,
		defaultTitle: opts.DefaultTitle,
		logger:       opts.Hooks.Logger,
		metrics:      metricsOrNop(opts.Hooks.Metrics),
	}
}

// LoginURL returns the redirect target for unauthenticated navigations.
func (g *NavigationGuard) LoginURL() string { return g.loginURL }

// Check waits for the auth state to initialize, then allows the navigation or
// redirects it to the login URL when the route requires a user and there is none.
func (g *NavigationGuard) Check(ctx context.Context, state *AuthState, r route.Route) Decision {
	state.EnsureInitialized(ctx)
	user := state.User()

	if r.Meta.RequiresAuth && user == nil {
		g.metrics.ObserveNavigation(r.Name, NavigationRedirected)
		if g.logger != nil {
			g.logger.DebugContext(ctx, "navigation requires auth", "route", r.Name)
		}
		return Decision{RedirectURL: g.loginURL}
	}

	g.metrics.ObserveNavigation(r.Name, NavigationAllowed)
	return Decision{Allow: true, Title: g.Title(r), User: user}
}

// Title returns the route title, or the default title when the route has none.
func (g *NavigationGuard) Title(r route.Route) string {
	if r.Meta.Title != "" {
		return r.Meta.Title
	}
	return g.defaultTitle
}
