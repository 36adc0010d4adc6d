package ports

// Package ports defines interfaces (hexagonal ports) between the web tier's services and
// its collaborators. Implementations live in internal/adapters and internal/http;
// orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
)

// ErrSnapshotNotFound is returned by AuthSnapshotStore.Get when no snapshot exists for a page.
var ErrSnapshotNotFound = errors.New("auth snapshot not found")

// AuthStatusSource resolves the visitor behind a session cookie value.
type AuthStatusSource interface {
	// CurrentUser queries the "who am I" endpoint. An unauthenticated session yields an error
	// classified as unauthenticated by internal/errors.
	CurrentUser(ctx context.Context, session string) (*domainauth.User, error)
}

// AuthSnapshotStore shares resolved auth states between web instances, keyed by page ID.
type AuthSnapshotStore interface {
	Save(ctx context.Context, pageID string, snap domainauth.Snapshot) error
	Get(ctx context.Context, pageID string) (domainauth.Snapshot, error)
	Delete(ctx context.Context, pageID string) error
}
