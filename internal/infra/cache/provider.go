package cache

import (
	"context"
	"log/slog"

	"scoop/config"
	"scoop/internal/domain/constants"
	"scoop/internal/domain/lifecycle"
	"scoop/internal/domain/service"
	"scoop/internal/errors"

	"go.uber.org/fx"
)

// QueryCacheParams holds dependencies for creating a QueryCache
type QueryCacheParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewQueryCache creates the cache selected by cache.provider. An empty
// provider means memory.
func NewQueryCache(params QueryCacheParams) (service.QueryCache, error) {
	cfg := params.Config.Cache
	if cfg == nil {
		params.Logger.Info("Cache not configured, list queries go straight to the database")
		return NewNoopCache(), nil
	}

	switch cfg.Provider {
	case "", constants.CacheProviderMemory:
		params.Logger.Info("Using in-memory query cache",
			slog.Int("capacity", cfg.Capacity),
			slog.Duration("ttl", cfg.TTL),
		)

		return NewMemoryCache(cfg), nil

	case constants.CacheProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis cache provider")
		}

		client := NewRedisClient(cfg)
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		params.Logger.Info("Using redis query cache",
			slog.String("addr", cfg.Redis.Addr),
			slog.Duration("ttl", cfg.TTL),
		)

		return NewRedisCache(client, cfg), nil

	case constants.CacheProviderNone:
		params.Logger.Info("Query cache disabled")
		return NewNoopCache(), nil

	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
}
