// Package common holds the response helpers shared by the HTTP handlers.
package common

import (
	"errors"
	"log/slog"

	"github.com/amirasaad/storefront/pkg/domain"
	"github.com/gofiber/fiber/v2"
)

// GenericServerError is the body sent for failures whose detail stays in
// the server log.
const GenericServerError = "Server error"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"No items"`
}

// ErrorJSON writes {"error": message} with the given status.
func ErrorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// RequestLogger returns logger tagged with the request id, when one is set.
func RequestLogger(c *fiber.Ctx, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	if id, ok := c.Locals(RequestIDKey).(string); ok && id != "" {
		return logger.With("request_id", id)
	}
	return logger
}

// RequestIDKey is the Fiber locals key the requestid middleware writes to.
const RequestIDKey = "requestid"
