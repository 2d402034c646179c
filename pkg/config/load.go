package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/storefront/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// SessionIDPlaceholder is replaced by Stripe with the checkout session id
// when redirecting to the success URL.
const SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

// Load reads the first env file found (searching parent directories), then
// the process environment, and validates the result.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	if len(envFilePath) == 0 {
		envFilePath = []string{".env"}
	}
	loaded := false
	for _, path := range envFilePath {
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		logger.Info("Loaded environment from file", "path", foundPath)
		loaded = true
		break
	}
	if !loaded {
		logger.Warn("No .env file found, using system environment variables")
	}
	return loadFromEnv(logger)
}

func loadFromEnv(logger *slog.Logger) (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	for i, c := range cfg.Checkout.AllowedCountries {
		cfg.Checkout.AllowedCountries[i] = strings.ToUpper(strings.TrimSpace(c))
	}
	if err := validation.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Stripe.SecretKey == "" && cfg.PaymentProvider == "stripe" {
		logger.Warn("STRIPE_SECRET_KEY is not set; checkout and price lookups will fail")
	}
	if cfg.Stripe.SuccessURL == "" {
		logger.Warn("STRIPE_SUCCESS_URL is not set; checkout will fail")
	} else if !strings.Contains(cfg.Stripe.SuccessURL, SessionIDPlaceholder) {
		logger.Warn("STRIPE_SUCCESS_URL has no session placeholder", "placeholder", SessionIDPlaceholder)
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"payment_provider", cfg.PaymentProvider,
		"stripe_secret_key", maskValue(cfg.Stripe.SecretKey),
		"stripe_success_url", cfg.Stripe.SuccessURL,
		"stripe_cancel_url", cfg.Stripe.CancelURL,
		"checkout_locale", cfg.Checkout.Locale,
		"checkout_countries", len(cfg.Checkout.AllowedCountries),
		"price_cache_driver", cfg.PriceCache.Driver,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
