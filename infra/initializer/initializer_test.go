package initializer

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	infra_cache "github.com/amirasaad/storefront/infra/cache"
	"github.com/amirasaad/storefront/infra/provider/mockpayment"
	"github.com/amirasaad/storefront/infra/provider/stripepayment"
	"github.com/amirasaad/storefront/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.App {
	return &config.App{
		PaymentProvider: "stripe",
		Server:          &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:             &config.Log{Format: "text", Prefix: "[storefront]"},
		Stripe:          &config.Stripe{HTTPTimeout: time.Second},
		PriceCache:      &config.PriceCache{Driver: "none", TTL: time.Minute, Prefix: "price:amount:"},
		Redis:           &config.Redis{URL: "redis://localhost:6379/0"},
	}
}

func TestBuildDependencies(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("stripe without cache", func(t *testing.T) {
		deps, err := buildDependencies(testConfig(), logger)
		require.NoError(t, err)
		assert.IsType(t, &stripepayment.StripePaymentProvider{}, deps.PaymentGateway)
		assert.Nil(t, deps.PriceCache)
		assert.NotNil(t, deps.Catalog)
		assert.Error(t, deps.PaymentGateway.Ready(), "no secret key configured")
	})

	t.Run("mock with memory cache", func(t *testing.T) {
		cfg := testConfig()
		cfg.PaymentProvider = "mock"
		cfg.PriceCache.Driver = "memory"

		deps, err := buildDependencies(cfg, logger)
		require.NoError(t, err)
		assert.IsType(t, &mockpayment.MockPaymentProvider{}, deps.PaymentGateway)
		assert.IsType(t, &infra_cache.MemoryCache{}, deps.PriceCache)
		assert.NoError(t, deps.PaymentGateway.Ready())
	})

	t.Run("bad redis url", func(t *testing.T) {
		cfg := testConfig()
		cfg.PriceCache.Driver = "redis"
		cfg.Redis.URL = "::nope"

		_, err := buildDependencies(cfg, logger)
		assert.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Log{Format: "json", Prefix: "[storefront]"})

	logger.Info("hello", "price_id", "price_A")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "price_A")
}
