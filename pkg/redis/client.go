package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned when a key does not exist.
var ErrKeyNotFound = redis.Nil

// Client wraps a go-redis client with the subset of operations this
// application needs.
type Client struct {
	rdb    *redis.Client
	config *Config
}

// NewClient connects to Redis with the given configuration and verifies the
// connection with a ping.
func NewClient(ctx context.Context, config *Config) (*Client, error) {
	if config == nil {
		config = NewRedisConfig()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         config.Addr(),
		Password:     config.Password,
		DB:           config.Database,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", config.Addr(), err)
	}

	return &Client{rdb: rdb, config: config}, nil
}

// GetBytes retrieves the raw value stored at key.
func (c *Client) GetBytes(ctx context.Context, key string) ([]byte, error) {
	return c.rdb.Get(ctx, key).Bytes()
}

// SetBytes stores a raw value at key with the given TTL. A zero TTL keeps the
// key until overwritten.
func (c *Client) SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}
