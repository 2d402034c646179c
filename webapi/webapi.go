// Package webapi provides HTTP handlers and API endpoints for the storefront.
// It is organized into sub-packages for different domains:
// - checkout: hosted checkout session creation
// - prices: live price lookup
// - catalog: the product table
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/storefront/pkg/app"
	catalogweb "github.com/amirasaad/storefront/webapi/catalog"
	checkoutweb "github.com/amirasaad/storefront/webapi/checkout"
	"github.com/amirasaad/storefront/webapi/common"
	pricesweb "github.com/amirasaad/storefront/webapi/prices"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	log := app.Deps.Logger

	fiberApp := fiber.New(fiber.Config{
		AppName:     "storefront",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
			if status >= fiber.StatusInternalServerError {
				common.RequestLogger(c, log).Error("unhandled error", "error", err)
				return common.ErrorJSON(c, status, common.GenericServerError)
			}
			return common.ErrorJSON(c, status, err.Error())
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	// Configure rate limiting middleware
	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				// Take the first IP in the chain
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorJSON(c, fiber.StatusTooManyRequests, "rate limit exceeded")
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: common.RequestIDKey,
	}))
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid} | ${error}\n",
	}))

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("Storefront API is running! 🚀")
		},
	)

	checkoutweb.Routes(fiberApp, app.CheckoutService, log)
	pricesweb.Routes(fiberApp, app.PricingService, log)
	catalogweb.Routes(fiberApp, app.Deps.Catalog)
	return fiberApp
}
