package app

import (
	"log/slog"

	"github.com/amirasaad/storefront/pkg/cache"
	"github.com/amirasaad/storefront/pkg/catalog"
	"github.com/amirasaad/storefront/pkg/config"
	"github.com/amirasaad/storefront/pkg/domain"
	"github.com/amirasaad/storefront/pkg/money"
	"github.com/amirasaad/storefront/pkg/provider"
	"github.com/amirasaad/storefront/pkg/service/checkout"
	"github.com/amirasaad/storefront/pkg/service/pricing"
)

// Deps contains all the dependencies the services are built from
type Deps struct {
	PaymentGateway provider.PaymentGateway
	// PriceCache is nil when display-price caching is off.
	PriceCache cache.PriceCache
	Catalog    *catalog.Catalog
	Logger     *slog.Logger
}

type App struct {
	Deps            *Deps
	Config          *config.App
	CheckoutService *checkout.Service
	PricingService  *pricing.Service
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.CheckoutService = checkout.New(
		deps.PaymentGateway,
		checkout.Config{
			SuccessURL:  cfg.Stripe.SuccessURL,
			CancelURL:   cfg.Stripe.CancelURL,
			Options:     SessionOptions(cfg.Checkout),
			Concurrency: cfg.PriceLookup.Concurrency,
		},
		deps.Logger,
	)
	app.PricingService = pricing.New(
		deps.PaymentGateway,
		pricing.Config{
			Concurrency: cfg.PriceLookup.Concurrency,
			Cache:       deps.PriceCache,
			CacheTTL:    cfg.PriceCache.TTL,
		},
		deps.Logger,
	)
	return app
}

// customFieldMaxLength is the provider's limit for text custom fields.
const customFieldMaxLength = 255

// SessionOptions builds the option bundle sent with every checkout session.
func SessionOptions(cfg *config.Checkout) domain.SessionOptions {
	opts := domain.SessionOptions{
		Locale:                cfg.Locale,
		RequireBillingAddress: true,
		CollectPhone:          true,
		AllowedCountries:      append([]string(nil), cfg.AllowedCountries...),
		AllowPromotionCodes:   cfg.AllowPromotionCodes,
		CustomerCreation:      cfg.CustomerCreation,
		AutomaticTax:          cfg.AutomaticTax,
	}
	if s := cfg.Shipping; s != nil {
		opts.Shipping = domain.ShippingRate{
			DisplayName: s.Label,
			Amount:      s.Amount,
			Currency:    money.ParseCode(s.Currency).Lower(),
			MinDays:     s.MinDays,
			MaxDays:     s.MaxDays,
		}
	}
	if cfg.CustomFieldKey != "" {
		opts.CustomField = &domain.CustomField{
			Key:       cfg.CustomFieldKey,
			Label:     cfg.CustomFieldLabel,
			MaxLength: customFieldMaxLength,
		}
	}
	return opts
}
