package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Hour)
	defer c.Close() //nolint:errcheck
	ctx := context.Background()

	_, found, err := c.Get(ctx, "price_A")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "price_A", 400, time.Minute))
	amount, found, err := c.Get(ctx, "price_A")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(400), amount)

	require.NoError(t, c.Delete(ctx, "price_A"))
	_, found, _ = c.Get(ctx, "price_A")
	assert.False(t, found)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Hour)
	defer c.Close() //nolint:errcheck
	ctx := context.Background()

	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "price_A", 600, time.Minute))
	now = now.Add(2 * time.Minute)

	_, found, err := c.Get(ctx, "price_A")
	require.NoError(t, err)
	assert.False(t, found, "expired entry must read as a miss")
	assert.Equal(t, 1, c.Len())

	c.sweep()
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryCache(time.Hour)
	defer c.Close() //nolint:errcheck
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = c.Set(ctx, "price_A", int64(i), time.Minute)
			_, _, _ = c.Get(ctx, "price_A")
		}(i)
	}
	wg.Wait()

	_, found, err := c.Get(ctx, "price_A")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestMemoryCache_CloseIsIdempotent(t *testing.T) {
	c := NewMemoryCache(0)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}
