package cache

import (
	"context"
	"log/slog"
	"time"

	"scoop/internal/domain/service"
	"scoop/internal/errors"

	"github.com/vmihailenco/msgpack/v5"
)

// ReadThrough returns the decoded value stored under key, or calls fetch
// and stores its result for ttl. hit reports whether the cache answered.
// Cache failures are logged and never fail the read.
func ReadThrough[T any](
	ctx context.Context,
	c service.QueryCache,
	logger *slog.Logger,
	key string,
	ttl time.Duration,
	fetch func(ctx context.Context) (T, error),
) (value T, hit bool, err error) {
	raw, ok, getErr := c.Get(ctx, key)
	switch {
	case getErr != nil:
		logger.WarnContext(ctx, "Cache lookup failed", slog.String("key", key), slog.Any("error", getErr))
	case ok:
		decodeErr := msgpack.Unmarshal(raw, &value)
		if decodeErr == nil {
			return value, true, nil
		}
		logger.WarnContext(ctx, "Cache entry undecodable", slog.String("key", key), slog.Any("error", decodeErr))
	}

	value, err = fetch(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}

	encoded, encodeErr := msgpack.Marshal(value)
	if encodeErr != nil {
		logger.WarnContext(ctx, "Cache entry not encodable", slog.String("key", key), slog.Any("error", errors.WithStack(encodeErr)))
		return value, false, nil
	}
	if setErr := c.Set(ctx, key, encoded, ttl); setErr != nil {
		logger.WarnContext(ctx, "Cache store failed", slog.String("key", key), slog.Any("error", setErr))
	}

	return value, false, nil
}
