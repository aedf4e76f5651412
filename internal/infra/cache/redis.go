package cache

import (
	"context"
	"time"

	"scoop/config"
	"scoop/internal/domain/service"
	"scoop/internal/errors"

	"github.com/go-redis/redis/v8"
)

// redisCommands is the subset of redis.Cmdable the cache relies on.
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// redisCache shares cached list results between every replica of the service.
type redisCache struct {
	client redisCommands
	ttl    time.Duration
}

// NewRedisClient opens a client for the configured server.
func NewRedisClient(cfg *config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// NewRedisCache wraps a redis client as a QueryCache.
func NewRedisCache(client redisCommands, cfg *config.CacheConfig) service.QueryCache {
	return &redisCache{client: client, ttl: cfg.TTL}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "redis get %s", key)
	}

	return b, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}

	return errors.Wrapf(c.client.Set(ctx, key, value, ttl).Err(), "redis set %s", key)
}

func (c *redisCache) Has(ctx context.Context, key string) bool {
	n, err := c.client.Exists(ctx, key).Result()
	return err == nil && n > 0
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(c.client.Del(ctx, key).Err(), "redis del %s", key)
}
