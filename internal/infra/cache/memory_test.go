package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"scoop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testCacheConfig() *config.CacheConfig {
	return &config.CacheConfig{
		TTL:                time.Minute,
		Capacity:           100,
		NumShards:          4,
		EvictionPercentage: 10,
	}
}

func TestMemoryCache_SetGetHas(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	c := newMemoryCache(testCacheConfig(), clock.Now)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, c.Has(ctx, "k"))

	require.NoError(t, c.Set(ctx, "k", []byte("v1"), 5*time.Second))
	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v1"), got)
	assert.True(t, c.Has(ctx, "k"))

	require.NoError(t, c.Set(ctx, "k", []byte("v2"), 5*time.Second))
	got, _, _ = c.Get(ctx, "k")
	assert.Equal(t, []byte("v2"), got)
}

func TestMemoryCache_PerEntryExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	c := newMemoryCache(testCacheConfig(), clock.Now)

	require.NoError(t, c.Set(ctx, "short", []byte("a"), 2*time.Second))
	require.NoError(t, c.Set(ctx, "long", []byte("b"), 10*time.Second))

	clock.Advance(2 * time.Second)
	assert.False(t, c.Has(ctx, "short"), "expired exactly at its deadline")
	assert.True(t, c.Has(ctx, "long"))

	clock.Advance(8 * time.Second)
	_, ok, _ := c.Get(ctx, "long")
	assert.False(t, ok)
}

func TestMemoryCache_TTLCappedByConfig(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	c := newMemoryCache(testCacheConfig(), clock.Now)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Hour))
	clock.Advance(time.Minute)

	assert.False(t, c.Has(ctx, "k"))
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(testCacheConfig())

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	require.NoError(t, c.Delete(ctx, "k"))
	assert.False(t, c.Has(ctx, "k"))
}

func TestMemoryCache_ConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(testCacheConfig())

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			_ = c.Set(ctx, key, []byte(key), time.Minute)
			got, ok, _ := c.Get(ctx, key)
			assert.True(t, ok)
			assert.Equal(t, []byte(key), got)
		}(i)
	}
	wg.Wait()
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopCache()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, c.Has(ctx, "k"))
	assert.NoError(t, c.Delete(ctx, "k"))
}
