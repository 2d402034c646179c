package provider

import (
	"context"

	"github.com/amirasaad/storefront/pkg/domain"
)

// PaymentGateway is the payment processor the storefront sells through.
type PaymentGateway interface {
	// Ready reports a *domain.ConfigurationError when the gateway cannot
	// make remote calls, e.g. because its credential is missing.
	Ready() error

	// GetPrice reads one price by id. Failures are *domain.UpstreamError.
	GetPrice(ctx context.Context, priceID string) (*domain.Price, error)

	// CreateCheckoutSession creates a hosted checkout session.
	// Failures are *domain.UpstreamError.
	CreateCheckoutSession(
		ctx context.Context,
		req *domain.CheckoutSessionRequest,
	) (*domain.CheckoutSession, error)
}
