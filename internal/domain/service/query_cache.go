package service

import (
	"context"
	"time"
)

// QueryCache is a keyed byte store with per-entry expiry fronting read
// queries. Get and Has report a miss for expired entries.
type QueryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Has(ctx context.Context, key string) bool
	Delete(ctx context.Context, key string) error
}
