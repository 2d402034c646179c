package checkout

import (
	"log/slog"

	"github.com/amirasaad/storefront/pkg/domain"
	"github.com/amirasaad/storefront/pkg/service/checkout"
	"github.com/amirasaad/storefront/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers HTTP routes for checkout-related operations.
func Routes(
	app *fiber.App,
	checkoutSvc *checkout.Service,
	logger *slog.Logger,
) {
	app.Post("/api/checkout", CreateSession(checkoutSvc, logger))
}

// CreateSession returns a Fiber handler that opens a hosted checkout session
// for the posted cart.
// @Summary Create a checkout session
// @Description Validates every cart line against the payment provider and
// @Description returns the hosted checkout URL. Each call creates a new session.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "Cart"
// @Success 200 {object} CheckoutResponse "Session created"
// @Failure 400 {object} common.ErrorResponse "Unusable cart"
// @Failure 429 {object} common.ErrorResponse "Too many requests"
// @Failure 500 {object} common.ErrorResponse "Server error"
// @Router /api/checkout [post]
func CreateSession(checkoutSvc *checkout.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := common.RequestLogger(c, logger).With("handler", "CreateSession")

		lines, err := domain.ParseCheckoutRequest(c.Body())
		if err != nil {
			log.Info("rejected checkout body", "reason", err)
			return common.ErrorJSON(c, fiber.StatusBadRequest, err.Error())
		}

		url, err := checkoutSvc.CreateSession(c.UserContext(), lines)
		if err != nil {
			if common.ErrorToStatusCode(err) == fiber.StatusBadRequest {
				log.Info("rejected cart", "reason", err, "items", len(lines))
				return common.ErrorJSON(c, fiber.StatusBadRequest, err.Error())
			}
			log.Error("checkout failed", "error", err)
			return common.ErrorJSON(c, fiber.StatusInternalServerError, common.GenericServerError)
		}

		return c.Status(fiber.StatusOK).JSON(CheckoutResponse{URL: url})
	}
}
