package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	"github.com/summitlog/summits-web/internal/ports"
	"github.com/summitlog/summits-web/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := testutil.SetupTestRedis(t)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestAuthSnapshotStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	store := NewAuthSnapshotStore(client)
	ctx := context.Background()

	snap := domainauth.Snapshot{
		User:        &domainauth.User{ID: 12, Name: "Анна"},
		Initialized: true,
		Session:     "fingerprint",
	}
	require.NoError(t, store.Save(ctx, "page-1", snap))

	got, err := store.Get(ctx, "page-1")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	ttl, err := client.TTL(ctx, defaultPrefix+"page-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 29*time.Minute)
}

func TestAuthSnapshotStore_AnonymousSnapshot(t *testing.T) {
	client := setupTestRedis(t)
	store := NewAuthSnapshotStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "page-2", domainauth.Snapshot{Initialized: true}))

	got, err := store.Get(ctx, "page-2")
	require.NoError(t, err)
	assert.Nil(t, got.User)
	assert.True(t, got.Initialized)
}

func TestAuthSnapshotStore_GetNonExistent(t *testing.T) {
	client := setupTestRedis(t)
	store := NewAuthSnapshotStore(client)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ports.ErrSnapshotNotFound)
}

func TestAuthSnapshotStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	store := NewAuthSnapshotStoreWithOptions(client, "test:auth:", time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "page-3", domainauth.Snapshot{Initialized: true}))
	require.NoError(t, store.Delete(ctx, "page-3"))
	require.NoError(t, store.Delete(ctx, ""))

	_, err := store.Get(ctx, "page-3")
	assert.ErrorIs(t, err, ports.ErrSnapshotNotFound)
}

func TestAuthSnapshotStore_EmptyPageID(t *testing.T) {
	store := NewAuthSnapshotStore(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}))
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "", domainauth.Snapshot{}))
	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, ports.ErrSnapshotNotFound)
}
