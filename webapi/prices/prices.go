package prices

import (
	"errors"
	"log/slog"

	"github.com/amirasaad/storefront/pkg/domain"
	"github.com/amirasaad/storefront/pkg/service/pricing"
	"github.com/amirasaad/storefront/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// lookupFailed is sent when a failure carries no message of its own.
const lookupFailed = "price-lookup-failed"

// Routes registers HTTP routes for price lookups.
func Routes(app *fiber.App, pricingSvc *pricing.Service, logger *slog.Logger) {
	app.Get("/api/prices", GetPrices(pricingSvc, logger))
}

// GetPrices returns a Fiber handler mapping price ids to unit amounts.
// @Summary Look up live prices
// @Description Returns each requested price's unit amount in minor currency
// @Description units. One failing id fails the whole request.
// @Tags prices
// @Produce json
// @Param ids query string false "Comma-separated price ids" example(price_1RwS1dKpM0dEkwAqj82rF4Ea,price_1RwS2iKpM0dEkwAqNgWt778n)
// @Success 200 {object} map[string]int64 "Unit amounts by price id"
// @Failure 429 {object} common.ErrorResponse "Too many requests"
// @Failure 500 {object} common.ErrorResponse "Missing configuration or provider failure"
// @Router /api/prices [get]
func GetPrices(pricingSvc *pricing.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := common.RequestLogger(c, logger).With("handler", "GetPrices")
		ids := pricing.ParseIDs(c.Query("ids"))

		amounts, err := pricingSvc.UnitAmounts(c.UserContext(), ids)
		if err != nil {
			log.Error("price lookup failed", "ids", len(ids), "error", err)
			return common.ErrorJSON(c, fiber.StatusInternalServerError, errorMessage(err))
		}
		return c.Status(fiber.StatusOK).JSON(amounts)
	}
}

func errorMessage(err error) string {
	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		return "Missing " + cfgErr.Setting
	}
	if msg := domain.UpstreamMessage(err); msg != "" {
		return msg
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return lookupFailed
}
