// Package validation builds the go-playground validator used for start-up
// settings and the product catalog.
package validation

import (
	"github.com/amirasaad/storefront/pkg/domain"
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a validator with the storefront's custom tags registered:
//   - priceid: provider price identifier shape (price_ followed by letters/digits)
func New() *validatorv10.Validate {
	v := validatorv10.New(validatorv10.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("priceid", func(fl validatorv10.FieldLevel) bool {
		return domain.IsPriceID(fl.Field().String())
	})
	return v
}
