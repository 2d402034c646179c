package initializer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	infra_cache "github.com/amirasaad/storefront/infra/cache"
	"github.com/amirasaad/storefront/infra/provider/mockpayment"
	"github.com/amirasaad/storefront/infra/provider/stripepayment"
	"github.com/amirasaad/storefront/pkg/app"
	"github.com/amirasaad/storefront/pkg/cache"
	"github.com/amirasaad/storefront/pkg/catalog"
	"github.com/amirasaad/storefront/pkg/config"
	"github.com/amirasaad/storefront/pkg/provider"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	logger := SetupLogger(cfg.Log)
	return buildDependencies(cfg, logger)
}

func buildDependencies(cfg *config.App, logger *slog.Logger) (*app.Deps, error) {
	deps := &app.Deps{
		Catalog: catalog.Default(),
		Logger:  logger,
	}

	deps.PaymentGateway = newPaymentGateway(cfg, deps.Catalog, logger)

	priceCache, err := newPriceCache(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize price cache: %w", err)
	}
	deps.PriceCache = priceCache

	return deps, nil
}

func newPaymentGateway(
	cfg *config.App,
	cat *catalog.Catalog,
	logger *slog.Logger,
) provider.PaymentGateway {
	gateways := map[string]func() provider.PaymentGateway{
		"mock": func() provider.PaymentGateway {
			logger.Warn("Using mock payment gateway; no real sessions will be created")
			return mockpayment.NewFromCatalog(cat, serverURL(cfg.Server))
		},
	}
	if factory, ok := gateways[cfg.PaymentProvider]; ok {
		return factory()
	}
	return stripepayment.New(cfg.Stripe, logger)
}

func newPriceCache(cfg *config.App, logger *slog.Logger) (cache.PriceCache, error) {
	switch cfg.PriceCache.Driver {
	case "memory":
		logger.Info("Using in-memory price cache", "ttl", cfg.PriceCache.TTL)
		return infra_cache.NewMemoryCache(cfg.PriceCache.TTL), nil
	case "redis":
		c, err := infra_cache.NewRedisPriceCache(
			cfg.Redis.URL,
			cfg.PriceCache.Prefix,
			logger,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Ping(ctx); err != nil {
			logger.Warn("Redis price cache unreachable; lookups will fall through", "error", err)
		}
		logger.Info("Using Redis price cache", "ttl", cfg.PriceCache.TTL)
		return c, nil
	default:
		return nil, nil
	}
}

func serverURL(s *config.Server) string {
	return fmt.Sprintf("%s://%s:%d", s.Scheme, s.Host, s.Port)
}
