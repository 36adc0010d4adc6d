package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	apperrors "github.com/summitlog/summits-web/internal/errors"
	"github.com/summitlog/summits-web/internal/ports"
	"golang.org/x/sync/singleflight"
)

const fetchKey = "me"

// AuthStateOptions groups dependencies for AuthState.
type AuthStateOptions struct {
	Source  ports.AuthStatusSource // Required: "who am I" lookup
	Session string                 // Session cookie value forwarded to Source
	Hooks   AuthStateHooks         // Optional
}

// AuthStateHooks are optional observers of an AuthState.
type AuthStateHooks struct {
	Logger  *slog.Logger
	Metrics Metrics
	// OnResolve is called after every completed fetch with the resulting snapshot.
	OnResolve func(ctx context.Context, snap domainauth.Snapshot)
}

// AuthState holds the visitor's user record (or its absence) for one page session.
//
// Initialized goes false→true exactly once, after the first completed fetch,
// whatever its outcome. Concurrent FetchAuthStatus calls share one request.
type AuthState struct {
	source  ports.AuthStatusSource
	session string
	hooks   AuthStateHooks
	metrics Metrics

	group singleflight.Group

	mu          sync.RWMutex
	user        *domainauth.User
	initialized bool
}

// NewAuthState constructs an uninitialized AuthState.
func NewAuthState(opts AuthStateOptions) *AuthState {
	if opts.Source == nil {
		panic("service: AuthStatusSource is required")
	}
	return &AuthState{
		source:  opts.Source,
		session: opts.Session,
		hooks:   opts.Hooks,
		metrics: metricsOrNop(opts.Hooks.Metrics),
	}
}

// restoreAuthState builds an already initialized state from a shared snapshot.
func restoreAuthState(opts AuthStateOptions, snap domainauth.Snapshot) *AuthState {
	s := NewAuthState(opts)
	s.user = cloneUser(snap.User)
	s.initialized = snap.Initialized
	return s
}

// User returns a copy of the authenticated user, or nil.
func (s *AuthState) User() *domainauth.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.user)
}

// Initialized reports whether a fetch has completed at least once.
func (s *AuthState) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// Snapshot returns the current state in its shareable form.
func (s *AuthState) Snapshot() domainauth.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domainauth.Snapshot{
		User:        cloneUser(s.user),
		Initialized: s.initialized,
		Session:     fingerprint(s.session),
	}
}

// FetchAuthStatus queries the "who am I" endpoint and records the outcome.
// Any failure leaves the user unset. It never returns an error: callers read
// User() and treat nil as unauthenticated.
//
// The shared request is detached from the caller's cancellation so one caller
// giving up does not fail the others; a caller whose ctx ends stops waiting.
func (s *AuthState) FetchAuthStatus(ctx context.Context) {
	ch := s.group.DoChan(fetchKey, func() (any, error) {
		s.fetch(context.WithoutCancel(ctx))
		return nil, nil
	})

	select {
	case <-ch:
	case <-ctx.Done():
	}
}

// EnsureInitialized fetches only when no fetch has completed yet.
func (s *AuthState) EnsureInitialized(ctx context.Context) {
	if s.Initialized() {
		return
	}
	s.FetchAuthStatus(ctx)
}

func (s *AuthState) fetch(ctx context.Context) {
	start := time.Now()
	user, err := s.source.CurrentUser(ctx, s.session)

	outcome := AuthOutcomeAuthenticated
	switch {
	case err != nil && apperrors.IsUnauthenticated(err):
		outcome = AuthOutcomeUnauthenticated
		user = nil
	case err != nil:
		outcome = AuthOutcomeError
		user = nil
		if s.hooks.Logger != nil {
			s.hooks.Logger.WarnContext(ctx, "auth status fetch failed", "error", err)
		}
	case user == nil:
		outcome = AuthOutcomeUnauthenticated
	}
	s.metrics.ObserveAuthFetch(outcome, time.Since(start))

	s.mu.Lock()
	s.user = user
	s.initialized = true
	s.mu.Unlock()

	if s.hooks.OnResolve != nil {
		s.hooks.OnResolve(ctx, s.Snapshot())
	}
}

func cloneUser(u *domainauth.User) *domainauth.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
