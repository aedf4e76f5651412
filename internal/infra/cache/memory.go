// Package cache provides the QueryCache adapters and the read-through helper
// used by list queries.
package cache

import (
	"context"
	"time"

	"scoop/config"
	"scoop/internal/domain/service"

	"github.com/viccon/sturdyc"
)

// entry carries its own deadline so every Set can choose a TTL shorter
// than the client-wide one.
type entry struct {
	value     []byte
	expiresAt time.Time
}

// memoryCache is a process-local QueryCache backed by a sharded sturdyc client.
type memoryCache struct {
	client *sturdyc.Client[entry]
	maxTTL time.Duration
	now    func() time.Time
}

// NewMemoryCache builds an in-process cache. Entries never outlive cfg.TTL.
func NewMemoryCache(cfg *config.CacheConfig) service.QueryCache {
	return newMemoryCache(cfg, time.Now)
}

func newMemoryCache(cfg *config.CacheConfig, now func() time.Time) *memoryCache {
	client := sturdyc.New[entry](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
	)

	return &memoryCache{client: client, maxTTL: cfg.TTL, now: now}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := c.lookup(key)
	if !ok {
		return nil, false, nil
	}

	return e.value, true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 || ttl > c.maxTTL {
		ttl = c.maxTTL
	}
	c.client.Set(key, entry{value: value, expiresAt: c.now().Add(ttl)})

	return nil
}

func (c *memoryCache) Has(_ context.Context, key string) bool {
	_, ok := c.lookup(key)
	return ok
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.client.Delete(key)
	return nil
}

func (c *memoryCache) lookup(key string) (entry, bool) {
	e, ok := c.client.Get(key)
	if !ok {
		return entry{}, false
	}
	if !c.now().Before(e.expiresAt) {
		c.client.Delete(key)
		return entry{}, false
	}

	return e, true
}
