package stripepayment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/amirasaad/storefront/pkg/config"
	"github.com/amirasaad/storefront/pkg/domain"
	"github.com/stripe/stripe-go/v82"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// SecretKeySetting is the configuration name reported when the key is absent.
const SecretKeySetting = "STRIPE_SECRET_KEY"

// StripePaymentProvider implements provider.PaymentGateway using the Stripe API.
type StripePaymentProvider struct {
	client *stripe.Client
	cfg    *config.Stripe
	logger *slog.Logger
}

// New creates a StripePaymentProvider. Network retries are disabled so a
// checkout session is created at most once per call.
func New(cfg *config.Stripe, logger *slog.Logger) *StripePaymentProvider {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("provider", "stripe")

	backendCfg := &stripe.BackendConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.HTTPTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		LeveledLogger:     &leveledLogger{logger: logger},
		MaxNetworkRetries: stripe.Int64(0),
	}
	if cfg.APIBaseURL != "" {
		backendCfg.URL = stripe.String(cfg.APIBaseURL)
	}

	return &StripePaymentProvider{
		client: stripe.NewClient(
			cfg.SecretKey,
			stripe.WithBackends(stripe.NewBackendsWithConfig(backendCfg)),
		),
		cfg:    cfg,
		logger: logger,
	}
}

// Ready reports a configuration error when no secret key is set.
func (s *StripePaymentProvider) Ready() error {
	if s.cfg.SecretKey == "" {
		return &domain.ConfigurationError{Setting: SecretKeySetting}
	}
	return nil
}

// GetPrice retrieves a price by id.
func (s *StripePaymentProvider) GetPrice(
	ctx context.Context,
	priceID string,
) (*domain.Price, error) {
	p, err := s.client.V1Prices.Retrieve(ctx, priceID, &stripe.PriceRetrieveParams{})
	if err != nil {
		s.logger.Warn("failed to retrieve price", "price_id", priceID, "error", err)
		return nil, upstreamError("retrieve price "+priceID, err)
	}

	price := &domain.Price{
		ID:         p.ID,
		Active:     p.Active,
		Type:       domain.PriceTypeOneTime,
		UnitAmount: p.UnitAmount,
		Currency:   string(p.Currency),
	}
	if p.Type == stripe.PriceTypeRecurring {
		price.Type = domain.PriceTypeRecurring
	}
	if price.ID == "" {
		price.ID = priceID
	}
	return price, nil
}

// CreateCheckoutSession creates a new Stripe Checkout Session
func (s *StripePaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	req *domain.CheckoutSessionRequest,
) (*domain.CheckoutSession, error) {
	params := sessionParams(req)

	session, err := s.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		s.logger.Error("failed to create checkout session", "error", err)
		return nil, upstreamError("create checkout session", err)
	}

	s.logger.Info(
		"✅ Created checkout session",
		"session_id", session.ID,
		"line_items", len(req.LineItems),
	)
	return &domain.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func sessionParams(req *domain.CheckoutSessionRequest) *stripe.CheckoutSessionCreateParams {
	opts := req.Options
	mode := req.Mode
	if mode == "" {
		mode = domain.SessionModePayment
	}

	lineItems := make([]*stripe.CheckoutSessionCreateLineItemParams, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		lineItems = append(lineItems, &stripe.CheckoutSessionCreateLineItemParams{
			Price:    stripe.String(item.PriceID),
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionCreateParams{
		Mode:       stripe.String(mode),
		LineItems:  lineItems,
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		PhoneNumberCollection: &stripe.CheckoutSessionCreatePhoneNumberCollectionParams{
			Enabled: stripe.Bool(opts.CollectPhone),
		},
		AllowPromotionCodes: stripe.Bool(opts.AllowPromotionCodes),
	}
	if opts.Locale != "" {
		params.Locale = stripe.String(opts.Locale)
	}
	if opts.RequireBillingAddress {
		params.BillingAddressCollection = stripe.String("required")
	}
	if opts.CustomerCreation != "" {
		params.CustomerCreation = stripe.String(opts.CustomerCreation)
	}
	if opts.AutomaticTax {
		params.AutomaticTax = &stripe.CheckoutSessionCreateAutomaticTaxParams{
			Enabled: stripe.Bool(true),
		}
	}
	if len(opts.AllowedCountries) > 0 {
		params.ShippingAddressCollection = &stripe.CheckoutSessionCreateShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(opts.AllowedCountries),
		}
	}
	if opts.Shipping.DisplayName != "" {
		params.ShippingOptions = []*stripe.CheckoutSessionCreateShippingOptionParams{{
			ShippingRateData: shippingRateData(opts.Shipping),
		}}
	}
	if cf := opts.CustomField; cf != nil && cf.Key != "" {
		field := &stripe.CheckoutSessionCreateCustomFieldParams{
			Key: stripe.String(cf.Key),
			Label: &stripe.CheckoutSessionCreateCustomFieldLabelParams{
				Type:   stripe.String("custom"),
				Custom: stripe.String(cf.Label),
			},
			Type:     stripe.String("text"),
			Optional: stripe.Bool(true),
		}
		if cf.MaxLength > 0 {
			field.Text = &stripe.CheckoutSessionCreateCustomFieldTextParams{
				MaximumLength: stripe.Int64(cf.MaxLength),
			}
		}
		params.CustomFields = []*stripe.CheckoutSessionCreateCustomFieldParams{field}
	}
	return params
}

func shippingRateData(rate domain.ShippingRate) *stripe.CheckoutSessionCreateShippingOptionShippingRateDataParams {
	return &stripe.CheckoutSessionCreateShippingOptionShippingRateDataParams{
		Type:        stripe.String("fixed_amount"),
		DisplayName: stripe.String(rate.DisplayName),
		FixedAmount: &stripe.CheckoutSessionCreateShippingOptionShippingRateDataFixedAmountParams{
			Amount:   stripe.Int64(rate.Amount),
			Currency: stripe.String(rate.Currency),
		},
		DeliveryEstimate: &stripe.CheckoutSessionCreateShippingOptionShippingRateDataDeliveryEstimateParams{
			Minimum: &stripe.CheckoutSessionCreateShippingOptionShippingRateDataDeliveryEstimateMinimumParams{
				Unit:  stripe.String("business_day"),
				Value: stripe.Int64(rate.MinDays),
			},
			Maximum: &stripe.CheckoutSessionCreateShippingOptionShippingRateDataDeliveryEstimateMaximumParams{
				Unit:  stripe.String("business_day"),
				Value: stripe.Int64(rate.MaxDays),
			},
		},
	}
}

// upstreamError keeps Stripe's own message and status when the API answered,
// and the transport error otherwise.
func upstreamError(op string, err error) error {
	ue := &domain.UpstreamError{Op: op, Err: err}
	var serr *stripe.Error
	if errors.As(err, &serr) {
		ue.Message = serr.Msg
		ue.StatusCode = serr.HTTPStatusCode
		ue.Code = string(serr.Code)
	}
	return ue
}
