package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Cache provides JSON caching on top of a Client. Keys are namespaced as
// CacheName::key.
type Cache struct {
	client *Client
	name   string
	ttl    time.Duration
}

// NewCache creates a cache with the given namespace and TTL.
func NewCache(client *Client, name string, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		name:   name,
		ttl:    ttl,
	}
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func (c *Cache) buildCacheKey(key string) string {
	if c.name != "" {
		return c.name + "::" + key
	}
	return key
}

// Get retrieves a value from cache and deserializes it into dest.
// ErrKeyNotFound is returned on a cache miss.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set serializes a value and stores it in cache with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.SetBytes(ctx, c.buildCacheKey(key), data, c.ttl)
}

// IsMiss reports whether an error from Get is a cache miss.
func IsMiss(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
