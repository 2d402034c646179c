package mockpayment

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/amirasaad/storefront/pkg/catalog"
	"github.com/amirasaad/storefront/pkg/domain"
	"github.com/google/uuid"
)

// DefaultUnitAmount is used for catalog prices with no display price.
const DefaultUnitAmount int64 = 400

// MockPaymentProvider simulates the payment gateway for tests and local
// development. It answers from an in-memory price table and hands out a
// fresh session URL for every checkout.
//
// This is NOT for production use.
type MockPaymentProvider struct {
	mu       sync.RWMutex
	baseURL  string
	prices   map[string]domain.Price
	sessions []domain.CheckoutSessionRequest
}

// NewMockPaymentProvider creates a provider with no prices.
func NewMockPaymentProvider(baseURL string) *MockPaymentProvider {
	return &MockPaymentProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		prices:  make(map[string]domain.Price),
	}
}

// NewFromCatalog seeds one active one-time price per sellable catalog entry.
func NewFromCatalog(cat *catalog.Catalog, baseURL string) *MockPaymentProvider {
	m := NewMockPaymentProvider(baseURL)
	for _, p := range cat.Products() {
		amount := p.PriceCents
		if amount <= 0 {
			amount = DefaultUnitAmount
		}
		for _, id := range p.PriceIDs() {
			m.SetPrice(domain.Price{
				ID:         id,
				Active:     true,
				Type:       domain.PriceTypeOneTime,
				UnitAmount: amount,
				Currency:   cat.Currency().Lower(),
			})
		}
	}
	return m
}

// SetPrice adds or replaces a price.
func (m *MockPaymentProvider) SetPrice(p domain.Price) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[p.ID] = p
}

// Ready is always nil; the mock needs no credential.
func (m *MockPaymentProvider) Ready() error { return nil }

// GetPrice returns a copy of the stored price or a not-found upstream error.
func (m *MockPaymentProvider) GetPrice(_ context.Context, priceID string) (*domain.Price, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.prices[priceID]
	if !ok {
		return nil, &domain.UpstreamError{
			Op:         "retrieve price " + priceID,
			Message:    fmt.Sprintf("No such price: '%s'", priceID),
			StatusCode: http.StatusNotFound,
			Code:       "resource_missing",
		}
	}
	return &p, nil
}

// CreateCheckoutSession records the request and returns a new session.
func (m *MockPaymentProvider) CreateCheckoutSession(
	_ context.Context,
	req *domain.CheckoutSessionRequest,
) (*domain.CheckoutSession, error) {
	id := "cs_mock_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	m.mu.Lock()
	defer m.mu.Unlock()
	recorded := *req
	recorded.LineItems = append([]domain.LineItem(nil), req.LineItems...)
	m.sessions = append(m.sessions, recorded)

	return &domain.CheckoutSession{
		ID:  id,
		URL: m.baseURL + "/mock-checkout/" + id,
	}, nil
}

// Sessions returns the session requests received so far.
func (m *MockPaymentProvider) Sessions() []domain.CheckoutSessionRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.CheckoutSessionRequest(nil), m.sessions...)
}
