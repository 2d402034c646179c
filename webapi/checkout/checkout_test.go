package checkout_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/storefront/internal/fixtures/mocks"
	"github.com/amirasaad/storefront/pkg/domain"
	"github.com/amirasaad/storefront/pkg/service/checkout"
	checkoutweb "github.com/amirasaad/storefront/webapi/checkout"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	gateway *mocks.PaymentGateway
	app     *fiber.App
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.gateway = mocks.NewPaymentGateway(s.T())
	svc := checkout.New(s.gateway, checkout.Config{
		SuccessURL:  "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   "http://localhost:3000/",
		Concurrency: 2,
	}, logger)
	s.app = fiber.New()
	checkoutweb.Routes(s.app, svc, logger)
}

func (s *CheckoutHandlerTestSuite) post(body string) (int, map[string]string) {
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	out := map[string]string{}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func (s *CheckoutHandlerTestSuite) active(id string) *domain.Price {
	return &domain.Price{ID: id, Active: true, Type: domain.PriceTypeOneTime, UnitAmount: 400}
}

func (s *CheckoutHandlerTestSuite) TestRejectsUnusableBodies() {
	cases := map[string]string{
		"invalid json":   `{"items":`,
		"missing items":  `{}`,
		"items object":   `{"items":{"priceId":"price_A"}}`,
		"items string":   `{"items":"price_A"}`,
		"empty items":    `{"items":[]}`,
		"null items":     `{"items":null}`,
		"top-level list": `[]`,
	}
	for name, body := range cases {
		status, out := s.post(body)
		s.Equal(http.StatusBadRequest, status, name)
		s.NotEmpty(out["error"], name)
	}
	s.gateway.AssertNotCalled(s.T(), "Ready")
	s.gateway.AssertNotCalled(s.T(), "GetPrice", mock.Anything, mock.Anything)
	s.gateway.AssertNotCalled(s.T(), "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func (s *CheckoutHandlerTestSuite) TestMalformedPriceIDIsNamed() {
	s.gateway.EXPECT().Ready().Return(nil)

	status, out := s.post(`{"items":[{"priceId":"price-abc","qty":1}]}`)

	s.Equal(http.StatusBadRequest, status)
	s.Contains(out["error"], `"price-abc"`)
	s.gateway.AssertNotCalled(s.T(), "GetPrice", mock.Anything, mock.Anything)
}

func (s *CheckoutHandlerTestSuite) TestSecondItemInactive() {
	s.gateway.EXPECT().Ready().Return(nil)
	s.gateway.EXPECT().GetPrice(mock.Anything, "price_A").Return(s.active("price_A"), nil)
	inactive := s.active("price_B")
	inactive.Active = false
	s.gateway.EXPECT().GetPrice(mock.Anything, "price_B").Return(inactive, nil)

	status, out := s.post(`{"items":[{"priceId":"price_A","qty":1},{"priceId":"price_B","qty":1}]}`)

	s.Equal(http.StatusBadRequest, status)
	s.Contains(out["error"], "price_B")
	s.gateway.AssertNotCalled(s.T(), "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func (s *CheckoutHandlerTestSuite) TestSuccess() {
	s.gateway.EXPECT().Ready().Return(nil)
	s.gateway.EXPECT().GetPrice(mock.Anything, "price_A").Return(s.active("price_A"), nil)
	s.gateway.EXPECT().GetPrice(mock.Anything, "price_B").Return(s.active("price_B"), nil)
	s.gateway.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.MatchedBy(func(req *domain.CheckoutSessionRequest) bool {
			return len(req.LineItems) == 2 &&
				req.LineItems[0] == domain.LineItem{PriceID: "price_A", Quantity: 1} &&
				req.LineItems[1] == domain.LineItem{PriceID: "price_B", Quantity: 3}
		})).
		Return(&domain.CheckoutSession{ID: "cs_1", URL: "https://checkout.example.com/cs_1"}, nil).
		Once()

	status, out := s.post(`{"items":[{"priceId":"price_A","qty":0},{"priceId":"price_B","qty":"3.7"}]}`)

	s.Equal(http.StatusOK, status)
	s.Equal("https://checkout.example.com/cs_1", out["url"])
}

func (s *CheckoutHandlerTestSuite) TestConfigurationErrorIsGeneric() {
	s.gateway.EXPECT().Ready().Return(&domain.ConfigurationError{Setting: "STRIPE_SECRET_KEY"})

	status, out := s.post(`{"items":[{"priceId":"price_A","qty":1}]}`)

	s.Equal(http.StatusInternalServerError, status)
	s.Equal("Server error", out["error"])
}

func (s *CheckoutHandlerTestSuite) TestUpstreamFailureIsGeneric() {
	s.gateway.EXPECT().Ready().Return(nil)
	s.gateway.EXPECT().GetPrice(mock.Anything, "price_A").Return(s.active("price_A"), nil)
	s.gateway.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.CheckoutSessionRequest) (*domain.CheckoutSession, error) {
			return nil, &domain.UpstreamError{Op: "create checkout session", Message: "Invalid API Key provided: sk_live_****", StatusCode: 401}
		})

	status, out := s.post(`{"items":[{"priceId":"price_A","qty":1}]}`)

	s.Equal(http.StatusInternalServerError, status)
	s.Equal("Server error", out["error"])
}

func TestCheckoutHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}
