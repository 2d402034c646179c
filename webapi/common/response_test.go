package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/storefront/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", domain.NewBadRequest("No items"), fiber.StatusBadRequest},
		{"wrapped bad request", fmt.Errorf("validate: %w", domain.NewBadRequest("Invalid priceId: %q", "x")), fiber.StatusBadRequest},
		{"configuration", &domain.ConfigurationError{Setting: "STRIPE_SECRET_KEY"}, fiber.StatusInternalServerError},
		{"upstream", &domain.UpstreamError{Op: "get price", Err: errors.New("boom")}, fiber.StatusInternalServerError},
		{"other", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorToStatusCode(tt.err))
		})
	}
}
