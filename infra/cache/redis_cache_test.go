package cache

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedisCache starts a Redis container and returns a cache bound to it.
func setupRedisCache(t *testing.T) *RedisPriceCache {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0.5",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("redis container unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	c, err := NewRedisPriceCache("redis://"+host+":"+port.Port()+"/0", "price:amount:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	require.NoError(t, c.Ping(ctx))
	return c
}

func TestRedisPriceCache(t *testing.T) {
	c := setupRedisCache(t)
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
	_, found, err = c.Get(ctx, "price_A")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisPriceCache_Expiry(t *testing.T) {
	c := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "price_B", 900, 50*time.Millisecond))
	assert.Eventually(t, func() bool {
		_, found, err := c.Get(ctx, "price_B")
		return err == nil && !found
	}, 5*time.Second, 50*time.Millisecond)
}

func TestNewRedisPriceCache_BadURL(t *testing.T) {
	_, err := NewRedisPriceCache("not-a-url", "p:", nil)
	assert.Error(t, err)
}
