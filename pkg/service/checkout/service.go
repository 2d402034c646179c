package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/storefront/pkg/domain"
	"github.com/amirasaad/storefront/pkg/provider"
	"golang.org/x/sync/errgroup"
)

// SuccessURLSetting names the redirect setting reported when it is absent.
const SuccessURLSetting = "STRIPE_SUCCESS_URL"

// Config is the fixed part of every checkout session.
type Config struct {
	SuccessURL string
	CancelURL  string
	Options    domain.SessionOptions
	// Concurrency bounds parallel price reads; 1 reads sequentially.
	Concurrency int
}

// Service validates carts against live prices and opens checkout sessions.
type Service struct {
	gateway provider.PaymentGateway
	cfg     Config
	logger  *slog.Logger
}

// New creates a new checkout service
func New(gateway provider.PaymentGateway, cfg Config, logger *slog.Logger) *Service {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gateway: gateway,
		cfg:     cfg,
		logger:  logger.With("service", "checkout"),
	}
}

// CreateSession validates every cart line and creates one payment session
// for the validated items in input order, returning its redirect URL.
//
// Errors are *domain.BadRequestError for unusable carts,
// *domain.ConfigurationError when the gateway or redirect is not configured,
// and *domain.UpstreamError when session creation fails.
func (s *Service) CreateSession(
	ctx context.Context,
	lines []domain.CartLineRequest,
) (string, error) {
	if len(lines) == 0 {
		return "", domain.NewBadRequest("No items")
	}
	if err := s.ready(); err != nil {
		return "", err
	}

	items, err := s.validate(ctx, lines)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", domain.NewBadRequest("No valid items")
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, &domain.CheckoutSessionRequest{
		Mode:       domain.SessionModePayment,
		LineItems:  items,
		SuccessURL: s.cfg.SuccessURL,
		CancelURL:  s.cfg.CancelURL,
		Options:    s.cfg.Options,
	})
	if err != nil {
		return "", err
	}
	s.logger.Info("checkout session created", "session_id", session.ID, "items", len(items))
	return session.URL, nil
}

func (s *Service) ready() error {
	if err := s.gateway.Ready(); err != nil {
		return err
	}
	if s.cfg.SuccessURL == "" {
		return &domain.ConfigurationError{Setting: SuccessURLSetting}
	}
	return nil
}

// validate reads the price of every line before the first malformed
// identifier and walks the results in input order, so the reported failure
// is the one a sequential pass would hit first.
func (s *Service) validate(
	ctx context.Context,
	lines []domain.CartLineRequest,
) ([]domain.LineItem, error) {
	firstBad := -1
	for i, line := range lines {
		if !domain.IsPriceID(string(line.PriceID)) {
			firstBad = i
			break
		}
	}
	readable := lines
	if firstBad >= 0 {
		readable = lines[:firstBad]
	}

	results := s.fetch(ctx, readable)

	items := make([]domain.LineItem, 0, len(readable))
	for _, line := range readable {
		id := string(line.PriceID)
		res := results[id]
		if res.err != nil {
			return nil, lookupError(id, res.err)
		}
		if err := res.price.Purchasable(); err != nil {
			return nil, err
		}
		items = append(items, domain.LineItem{PriceID: id, Quantity: line.Quantity()})
	}
	if firstBad >= 0 {
		return nil, domain.NewBadRequest("Invalid priceId: %q", string(lines[firstBad].PriceID))
	}
	return items, nil
}

type priceResult struct {
	price *domain.Price
	err   error
}

// fetch reads each distinct price once. A failed read does not cancel the
// others; their results are simply not consulted past the first failure.
func (s *Service) fetch(
	ctx context.Context,
	lines []domain.CartLineRequest,
) map[string]priceResult {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		id := string(line.PriceID)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	out := make([]priceResult, len(ids))
	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)
	for i, id := range ids {
		g.Go(func() error {
			p, err := s.gateway.GetPrice(ctx, id)
			out[i] = priceResult{price: p, err: err}
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]priceResult, len(ids))
	for i, id := range ids {
		results[id] = out[i]
	}
	return results
}

// lookupError turns a failed price read into a caller-facing error when the
// provider rejected the identifier itself; anything else stays upstream.
func lookupError(priceID string, err error) error {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) && !ue.CallerFault() {
		return err
	}
	if !errors.As(err, &ue) {
		return fmt.Errorf("retrieve price %s: %w", priceID, err)
	}
	if msg := domain.UpstreamMessage(err); msg != "" {
		return domain.NewBadRequest("Price %q not found: %s", priceID, msg)
	}
	return domain.NewBadRequest("Price %q not found", priceID)
}
