package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	"github.com/summitlog/summits-web/internal/ports"
)

const defaultIdleTTL = 30 * time.Minute

// AuthStatesOptions groups dependencies for AuthStates.
type AuthStatesOptions struct {
	Source ports.AuthStatusSource  // Required: "who am I" lookup
	Store  ports.AuthSnapshotStore // Optional: shares resolved states between instances
	Config AuthStatesConfig
}

// AuthStatesConfig tunes the registry.
type AuthStatesConfig struct {
	IdleTTL time.Duration
	Logger  *slog.Logger
	Metrics Metrics
	Now     func() time.Time
}

type authEntry struct {
	state    *AuthState
	lastUsed time.Time
}

// AuthStates hands out one AuthState per page session.
//
// A page session is identified by the page ID minted on a full page load.
// Entries are bound to the session cookie they were created with and are
// evicted once idle for longer than IdleTTL.
type AuthStates struct {
	source  ports.AuthStatusSource
	store   ports.AuthSnapshotStore
	idleTTL time.Duration
	logger  *slog.Logger
	metrics Metrics
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]*authEntry
}

// NewAuthStates constructs an empty registry.
func NewAuthStates(opts AuthStatesOptions) (*AuthStates, error) {
	if opts.Source == nil {
		return nil, errors.New("AuthStatusSource is required")
	}

	cfg := opts.Config
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = defaultIdleTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	var logger *slog.Logger
	if cfg.Logger != nil {
		logger = cfg.Logger.With("component", "auth_states")
	}

	return &AuthStates{
		source:  opts.Source,
		store:   opts.Store,
		idleTTL: cfg.IdleTTL,
		logger:  logger,
		metrics: metricsOrNop(cfg.Metrics),
		now:     cfg.Now,
		entries: make(map[string]*authEntry),
	}, nil
}

// Get returns the state for pageID, creating it on first use. An empty pageID
// yields a fresh state that is not registered.
func (r *AuthStates) Get(ctx context.Context, pageID, session string) *AuthState {
	if pageID == "" {
		return r.newState(session, "")
	}

	now := r.now()
	fp := fingerprint(session)

	stale := false
	r.mu.Lock()
	if e, ok := r.entries[pageID]; ok {
		if e.state.session == session {
			e.lastUsed = now
			r.mu.Unlock()
			return e.state
		}
		// Cookie changed under the same page: start over.
		delete(r.entries, pageID)
		stale = true
	}
	r.mu.Unlock()

	if stale {
		r.forget(ctx, pageID)
	}

	state := r.restore(ctx, pageID, session, fp)
	if state == nil {
		state = r.newState(session, pageID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[pageID]; ok && e.state.session == session {
		// Lost a race with a concurrent Get for the same page.
		e.lastUsed = now
		return e.state
	}
	r.entries[pageID] = &authEntry{state: state, lastUsed: now}
	r.metrics.SetAuthStates(len(r.entries))
	return state
}

// Len returns the number of registered page sessions.
func (r *AuthStates) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep evicts entries idle for longer than IdleTTL and returns how many were removed.
func (r *AuthStates) Sweep(ctx context.Context) int {
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	var evicted []string
	for id, e := range r.entries {
		if e.lastUsed.Before(cutoff) {
			delete(r.entries, id)
			evicted = append(evicted, id)
		}
	}
	r.metrics.SetAuthStates(len(r.entries))
	r.mu.Unlock()

	if r.logger != nil && len(evicted) > 0 {
		r.logger.DebugContext(ctx, "evicted idle auth states", "count", len(evicted))
	}
	return len(evicted)
}

// Run sweeps every half IdleTTL until ctx is cancelled.
// Returns nil on graceful shutdown (context.Canceled), error otherwise.
func (r *AuthStates) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.idleTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

func (r *AuthStates) newState(session, pageID string) *AuthState {
	hooks := AuthStateHooks{Logger: r.logger, Metrics: r.metrics}
	if r.store != nil && pageID != "" {
		hooks.OnResolve = func(ctx context.Context, snap domainauth.Snapshot) {
			if err := r.store.Save(ctx, pageID, snap); err != nil && r.logger != nil {
				r.logger.WarnContext(ctx, "save auth snapshot failed", "error", err)
			}
		}
	}
	return NewAuthState(AuthStateOptions{Source: r.source, Session: session, Hooks: hooks})
}

// forget drops the shared snapshot of a page whose cookie changed.
func (r *AuthStates) forget(ctx context.Context, pageID string) {
	if r.store == nil {
		return
	}
	if err := r.store.Delete(ctx, pageID); err != nil && r.logger != nil {
		r.logger.WarnContext(ctx, "delete auth snapshot failed", "error", err)
	}
}

// restore rebuilds a state resolved by another instance for the same page and cookie.
func (r *AuthStates) restore(ctx context.Context, pageID, session, fp string) *AuthState {
	if r.store == nil {
		return nil
	}

	snap, err := r.store.Get(ctx, pageID)
	if err != nil {
		if !errors.Is(err, ports.ErrSnapshotNotFound) && r.logger != nil {
			r.logger.WarnContext(ctx, "load auth snapshot failed", "error", err)
		}
		return nil
	}
	if !snap.Initialized || snap.Session != fp {
		return nil
	}

	fresh := r.newState(session, pageID)
	return restoreAuthState(AuthStateOptions{
		Source:  r.source,
		Session: session,
		Hooks:   fresh.hooks,
	}, snap)
}

// fingerprint keeps raw cookie values out of shared storage.
func fingerprint(session string) string {
	if session == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(session))
	return hex.EncodeToString(sum[:16])
}
