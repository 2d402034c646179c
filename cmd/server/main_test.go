package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	infra_cache "github.com/amirasaad/storefront/infra/cache"
	"github.com/amirasaad/storefront/infra/provider/mockpayment"
	"github.com/amirasaad/storefront/pkg/app"
	"github.com/amirasaad/storefront/pkg/config"
	"github.com/amirasaad/storefront/webapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocsRegistered(t *testing.T) {
	cfg := &config.App{
		RateLimit:   &config.RateLimit{MaxRequests: 100, Window: time.Minute},
		Stripe:      &config.Stripe{},
		Checkout:    &config.Checkout{},
		PriceLookup: &config.PriceLookup{Concurrency: 1},
		PriceCache:  &config.PriceCache{},
	}
	deps := &app.Deps{
		PaymentGateway: mockpayment.NewMockPaymentProvider("http://localhost:3000"),
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "/api/checkout")
	assert.Contains(t, string(body), "/api/prices")
}

func TestCloseDeps(t *testing.T) {
	c := infra_cache.NewMemoryCache(time.Hour)
	deps := &app.Deps{PriceCache: c}

	closeDeps(deps, slog.New(slog.NewTextHandler(io.Discard, nil)))
	closeDeps(&app.Deps{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, c.Close())
}
