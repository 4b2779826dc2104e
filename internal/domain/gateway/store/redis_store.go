package store

import (
	"context"
	"fmt"

	"vatsim-traffic/internal/domain/model"
	"vatsim-traffic/pkg/redis"
)

// snapshotKey is the cache key under the datafeed namespace.
const snapshotKey = "snapshot"

// redisStore keeps the snapshot in a Redis cache, useful when several
// sessions on one machine should share the same feed download.
type redisStore struct {
	cache *redis.Cache
}

// NewRedisStore creates a snapshot store backed by the given Redis cache.
func NewRedisStore(cache *redis.Cache) SnapshotStore {
	return &redisStore{cache: cache}
}

// Load returns the stored snapshot, or ErrNoSnapshot when absent
func (s *redisStore) Load(ctx context.Context) (*model.Datafeed, error) {
	var feed model.Datafeed
	if err := s.cache.Get(ctx, snapshotKey, &feed); err != nil {
		if redis.IsMiss(err) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load snapshot from redis: %w", err)
	}

	return &feed, nil
}

// Save replaces the stored snapshot
func (s *redisStore) Save(ctx context.Context, feed *model.Datafeed) error {
	if err := s.cache.Set(ctx, snapshotKey, feed); err != nil {
		return fmt.Errorf("failed to store snapshot in redis: %w", err)
	}

	return nil
}
