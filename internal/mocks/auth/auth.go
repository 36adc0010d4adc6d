package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	apperrors "github.com/summitlog/summits-web/internal/errors"
	"github.com/summitlog/summits-web/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthStatusSource  = (*StaticAuthSource)(nil)
	_ ports.AuthSnapshotStore = (*MemorySnapshotStore)(nil)
)

// StaticAuthSource resolves sessions from a fixed table. Unknown sessions are
// reported as unauthenticated, the way the API answers 401.
type StaticAuthSource struct {
	CurrentUserFunc func(ctx context.Context, session string) (*domainauth.User, error)

	mu    sync.Mutex
	users map[string]domainauth.User
	calls atomic.Int64
}

// NewStaticAuthSource creates a StaticAuthSource with the given session→user table.
func NewStaticAuthSource(users map[string]domainauth.User) *StaticAuthSource {
	if users == nil {
		users = make(map[string]domainauth.User)
	}
	return &StaticAuthSource{users: users}
}

// SetUser registers or replaces the user for a session.
func (s *StaticAuthSource) SetUser(session string, u domainauth.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.users == nil {
		s.users = make(map[string]domainauth.User)
	}
	s.users[session] = u
}

// Calls returns how many times CurrentUser was invoked.
func (s *StaticAuthSource) Calls() int { return int(s.calls.Load()) }

func (s *StaticAuthSource) CurrentUser(ctx context.Context, session string) (*domainauth.User, error) {
	s.calls.Add(1)
	if s.CurrentUserFunc != nil {
		return s.CurrentUserFunc(ctx, session)
	}

	s.mu.Lock()
	u, ok := s.users[session]
	s.mu.Unlock()
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeUnauthenticated, "get current user: unexpected status 401")
	}
	return &u, nil
}

// MemorySnapshotStore is an in-memory snapshot store for unit tests.
type MemorySnapshotStore struct {
	mu        sync.Mutex
	snapshots map[string]domainauth.Snapshot
}

// NewMemorySnapshotStore creates a new in-memory snapshot store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{snapshots: make(map[string]domainauth.Snapshot)}
}

func (m *MemorySnapshotStore) Save(_ context.Context, pageID string, snap domainauth.Snapshot) error {
	if pageID == "" {
		return errors.New("page ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[pageID] = snap
	return nil
}

func (m *MemorySnapshotStore) Get(_ context.Context, pageID string) (domainauth.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snapshots[pageID]
	if !ok {
		return domainauth.Snapshot{}, ports.ErrSnapshotNotFound
	}
	return snap, nil
}

func (m *MemorySnapshotStore) Delete(_ context.Context, pageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, pageID)
	return nil
}

// Len returns the number of stored snapshots.
func (m *MemorySnapshotStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snapshots)
}
