// Package cache stores generated maze layouts in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/redis/go-redis/v9"
)

// RedisLayoutCache keeps maze layouts as JSON strings with a TTL.
type RedisLayoutCache struct {
	client *redis.Client
}

// NewRedisLayoutCache wraps client.
func NewRedisLayoutCache(client *redis.Client) *RedisLayoutCache {
	return &RedisLayoutCache{client: client}
}

// Get returns the layout stored under key, or (nil, nil) when absent.
func (c *RedisLayoutCache) Get(ctx context.Context, key string) (*maze.Layout, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var layout maze.Layout
	if err := json.Unmarshal(raw, &layout); err != nil {
		return nil, err
	}
	return &layout, nil
}

// Set stores layout under key for ttl.
func (c *RedisLayoutCache) Set(ctx context.Context, key string, layout *maze.Layout, ttl time.Duration) error {
	raw, err := json.Marshal(layout)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}
