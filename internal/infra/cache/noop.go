package cache

import (
	"context"
	"time"

	"scoop/internal/domain/service"
)

// noopCache always misses.
type noopCache struct{}

// NewNoopCache returns a QueryCache that stores nothing.
func NewNoopCache() service.QueryCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, bool, error)         { return nil, false, nil }
func (noopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (noopCache) Has(context.Context, string) bool                          { return false }
func (noopCache) Delete(context.Context, string) error                      { return nil }
