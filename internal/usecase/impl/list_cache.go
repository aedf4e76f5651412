package impl

import (
	"context"
	"log/slog"
	"time"

	"scoop/config"
	deliverycontext "scoop/internal/delivery/context"
	"scoop/internal/domain/listing"
	"scoop/internal/domain/service"
	"scoop/internal/infra/cache"

	"go.uber.org/fx"
)

// ListCache fronts every list query with the query cache.
type ListCache struct {
	cache   service.QueryCache
	metrics service.MetricsRecorder
	ttl     time.Duration
	logger  *slog.Logger
}

// ListCacheParams holds dependencies for ListCache, injected by Fx.
type ListCacheParams struct {
	fx.In

	Cache   service.QueryCache
	Metrics service.MetricsRecorder
	Config  *config.Config
	Logger  *slog.Logger
}

// NewListCache is the constructor for ListCache.
func NewListCache(params ListCacheParams) *ListCache {
	return &ListCache{
		cache:   params.Cache,
		metrics: params.Metrics,
		ttl:     params.Config.Cache.TTL,
		logger:  params.Logger,
	}
}

// cachedList validates params, then answers from the cache or runs fetch
// and stores the page. scope adds caller-dependent parts to the key.
func cachedList[T any](
	ctx context.Context,
	lc *ListCache,
	schema *listing.Schema,
	params listing.Params,
	fetch func(ctx context.Context, q listing.Query) ([]T, int64, error),
	scope ...string,
) (listing.Page[T], error) {
	q, err := schema.Build(params)
	if err != nil {
		return listing.Page[T]{}, err
	}

	return cachedQuery(ctx, lc, schema.Resource, listing.Key(schema.Resource, params, scope...), q, fetch)
}

func cachedQuery[T any](
	ctx context.Context,
	lc *ListCache,
	resource, key string,
	q listing.Query,
	fetch func(ctx context.Context, q listing.Query) ([]T, int64, error),
) (listing.Page[T], error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, lc.logger)

	page, hit, err := cache.ReadThrough(ctx, lc.cache, logger, key, lc.ttl, func(ctx context.Context) (listing.Page[T], error) {
		rows, total, err := fetch(ctx, q)
		if err != nil {
			return listing.Page[T]{}, err
		}

		return listing.Paginate(rows, total, q.Page, q.PerPage), nil
	})
	if err != nil {
		return listing.Page[T]{}, err
	}
	lc.metrics.RecordCacheLookup(resource, hit)

	return page, nil
}
