// Package redis provides Redis-based adapters for the web tier.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	domainauth "github.com/summitlog/summits-web/internal/domain/auth"
	"github.com/summitlog/summits-web/internal/ports"
)

const (
	defaultPrefix = "summits:auth:"
	defaultTTL    = 30 * time.Minute
)

var _ ports.AuthSnapshotStore = (*AuthSnapshotStore)(nil)

// AuthSnapshotStore keeps resolved auth states in Redis so any web instance
// serving a page session can reuse them. Keys expire after TTL; every Save
// extends it.
type AuthSnapshotStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewAuthSnapshotStore creates a store with the default prefix and TTL.
func NewAuthSnapshotStore(client redis.UniversalClient) *AuthSnapshotStore {
	return NewAuthSnapshotStoreWithOptions(client, defaultPrefix, defaultTTL)
}

// NewAuthSnapshotStoreWithOptions creates a store with a custom key prefix and TTL.
func NewAuthSnapshotStoreWithOptions(client redis.UniversalClient, prefix string, ttl time.Duration) *AuthSnapshotStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &AuthSnapshotStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *AuthSnapshotStore) Save(ctx context.Context, pageID string, snap domainauth.Snapshot) error {
	if pageID == "" {
		return errors.New("page ID cannot be empty")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal auth snapshot: %w", err)
	}

	return s.client.Set(ctx, s.prefix+pageID, data, s.ttl).Err()
}

func (s *AuthSnapshotStore) Get(ctx context.Context, pageID string) (domainauth.Snapshot, error) {
	if pageID == "" {
		return domainauth.Snapshot{}, ports.ErrSnapshotNotFound
	}

	data, err := s.client.Get(ctx, s.prefix+pageID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Snapshot{}, ports.ErrSnapshotNotFound
		}
		return domainauth.Snapshot{}, fmt.Errorf("redis get: %w", err)
	}

	var snap domainauth.Snapshot
	if unmarshalErr := json.Unmarshal(data, &snap); unmarshalErr != nil {
		return domainauth.Snapshot{}, fmt.Errorf("unmarshal auth snapshot: %w", unmarshalErr)
	}
	return snap, nil
}

func (s *AuthSnapshotStore) Delete(ctx context.Context, pageID string) error {
	if pageID == "" {
		return nil // Nothing to delete
	}
	return s.client.Del(ctx, s.prefix+pageID).Err()
}
