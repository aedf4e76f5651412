package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"scoop/config"
	"scoop/internal/domain/entity"
	"scoop/internal/domain/listing"
	"scoop/internal/infra/cache"
	mockService "scoop/internal/mocks/service"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Cache: &config.CacheConfig{
			Provider:           "memory",
			TTL:                time.Minute,
			Capacity:           100,
			NumShards:          4,
			EvictionPercentage: 10,
		},
	}
}

// newTestLists returns a ListCache over a real in-memory cache. Lookups
// are recorded on the returned metrics mock.
func newTestLists(t *testing.T) (*ListCache, *mockService.MockMetricsRecorder) {
	cfg := newTestConfig()
	metrics := mockService.NewMockMetricsRecorder(t)
	metrics.On("RecordCacheLookup", mock.Anything, mock.Anything).Maybe()

	return NewListCache(ListCacheParams{
		Cache:   cache.NewMemoryCache(cfg.Cache),
		Metrics: metrics,
		Config:  cfg,
		Logger:  newDiscardLogger(),
	}), metrics
}

func adminCaller() usecase.Caller {
	return usecase.Caller{UserID: uuid.New(), Name: "Test Admin", Role: entity.RoleAdmin}
}

func clientCaller() usecase.Caller {
	return usecase.Caller{UserID: uuid.New(), Name: "Ana", Role: entity.RoleClient}
}

func memberCaller() usecase.Caller {
	return usecase.Caller{UserID: uuid.New(), Name: "Bia", Role: entity.RoleMember}
}

func ptr[T any](v T) *T {
	return &v
}

func listingParams() listing.Params {
	return listing.Params{Page: 1, PerPage: 10}
}
