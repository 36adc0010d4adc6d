package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/summitlog/summits-web/internal/domain/route"
	"github.com/summitlog/summits-web/internal/service"
)

// GuardOptions groups dependencies for Guard.
type GuardOptions struct {
	States        *service.AuthStates      // Required
	Navigation    *service.NavigationGuard // Required
	SessionCookie string                   // Name of the API session cookie
	Logger        *slog.Logger             // Optional
}

// Guard runs the navigation guard in front of every page route.
type Guard struct {
	states        *service.AuthStates
	nav           *service.NavigationGuard
	sessionCookie string
	logger        *slog.Logger
}

// NewGuard constructs a Guard.
func NewGuard(opts GuardOptions) (*Guard, error) {
	if opts.States == nil {
		return nil, errors.New("AuthStates is required")
	}
	if opts.Navigation == nil {
		return nil, errors.New("NavigationGuard is required")
	}
	if opts.SessionCookie == "" {
		opts.SessionCookie = "session"
	}
	return &Guard{
		states:        opts.States,
		nav:           opts.Navigation,
		sessionCookie: opts.SessionCookie,
		logger:        opts.Logger,
	}, nil
}

// Route returns the middleware guarding rt. Allowed requests carry a Navigation
// in their context; the rest leave the app for the login URL.
func (g *Guard) Route(rt route.Route) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			session := g.session(r)
			state := g.states.Get(ctx, PageIDFromContext(ctx), session)

			d := g.nav.Check(ctx, state, rt)
			if !d.Allow {
				redirectOut(w, r, d.RedirectURL)
				return
			}

			nav := &Navigation{Route: rt, Title: d.Title, User: d.User, Session: session}
			next.ServeHTTP(w, r.WithContext(SetNavigationInContext(ctx, nav)))
		})
	}
}

func (g *Guard) session(r *http.Request) string {
	c, err := r.Cookie(g.sessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// redirectOut sends the browser to target with a full navigation: htmx
// requests get HX-Redirect, plain requests a 303.
func redirectOut(w http.ResponseWriter, r *http.Request, target string) {
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
