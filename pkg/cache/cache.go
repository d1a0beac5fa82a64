package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLNav     = 5 * time.Minute  // resolved nav trees (invalidated on edit anyway)
	TTLCatalog = 30 * time.Minute // game catalog (changes only on reseed)
	TTLGames   = 2 * time.Minute  // per-subcategory game lists
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixNav     = "nav:"
	PrefixCatalog = "catalog:"
	PrefixGames   = "games:"
)

// Service is the Redis cache interface. Every method degrades to a
// no-op (or a miss) when Redis is not configured, so the server runs
// fine without it.
type Service interface {
	// Generic operations
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Resolved nav trees, keyed per brand. Cached before targeting is
	// applied; targeting is always evaluated per request.
	GetNav(ctx context.Context, brandID string) ([]byte, error)
	SetNav(ctx context.Context, brandID string, data interface{}) error
	InvalidateNav(ctx context.Context, brandID string) error
	InvalidateAllNav(ctx context.Context) error

	// Game catalog
	GetCatalog(ctx context.Context) ([]byte, error)
	SetCatalog(ctx context.Context, data interface{}) error
	InvalidateCatalog(ctx context.Context) error

	// Per-subcategory game lists
	GetSubcategoryGames(ctx context.Context, subcategoryID string) ([]byte, error)
	SetSubcategoryGames(ctx context.Context, subcategoryID string, data interface{}) error
	InvalidateSubcategoryGames(ctx context.Context) error

	// Utilities
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache is the Redis-backed implementation
type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service. A nil client is allowed and
// turns every operation into a no-op.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a Redis client is configured
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping tests the Redis connection
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get reads and unmarshals a cached value
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set marshals and stores a value
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes keys
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Exists checks key presence
func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}

// ========================================
// Nav cache
// ========================================

func (c *redisCache) navKey(brandID string) string {
	return PrefixNav + brandID
}

func (c *redisCache) GetNav(ctx context.Context, brandID string) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, c.navKey(brandID)).Bytes()
}

func (c *redisCache) SetNav(ctx context.Context, brandID string, data interface{}) error {
	if c.client == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.navKey(brandID), jsonData, TTLNav).Err()
}

func (c *redisCache) InvalidateNav(ctx context.Context, brandID string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.navKey(brandID)).Err()
}

func (c *redisCache) InvalidateAllNav(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	if err := c.deleteByPattern(ctx, PrefixNav+"*"); err != nil {
		return err
	}
	return c.deleteByPattern(ctx, PrefixGames+"*")
}

// ========================================
// Catalog cache
// ========================================

func (c *redisCache) GetCatalog(ctx context.Context) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, PrefixCatalog+"all").Bytes()
}

func (c *redisCache) SetCatalog(ctx context.Context, data interface{}) error {
	if c.client == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, PrefixCatalog+"all", jsonData, TTLCatalog).Err()
}

func (c *redisCache) InvalidateCatalog(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, PrefixCatalog+"all").Err()
}

// ========================================
// Subcategory game lists
// ========================================

func (c *redisCache) gamesKey(subcategoryID string) string {
	return PrefixGames + subcategoryID
}

func (c *redisCache) GetSubcategoryGames(ctx context.Context, subcategoryID string) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, c.gamesKey(subcategoryID)).Bytes()
}

func (c *redisCache) SetSubcategoryGames(ctx context.Context, subcategoryID string, data interface{}) error {
	if c.client == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.gamesKey(subcategoryID), jsonData, TTLGames).Err()
}

func (c *redisCache) InvalidateSubcategoryGames(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.deleteByPattern(ctx, PrefixGames+"*")
}

// ========================================
// Internal utilities
// ========================================

func (c *redisCache) deleteByPattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
