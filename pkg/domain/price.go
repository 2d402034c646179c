package domain

import "regexp"

// PriceIDPrefix is the literal prefix of every provider price identifier.
const PriceIDPrefix = "price_"

var priceIDPattern = regexp.MustCompile(`^price_[A-Za-z0-9]+$`)

// IsPriceID reports whether s has the provider's price identifier shape.
func IsPriceID(s string) bool {
	return priceIDPattern.MatchString(s)
}

// PriceType distinguishes one-time prices from subscription prices.
type PriceType string

const (
	PriceTypeOneTime   PriceType = "one_time"
	PriceTypeRecurring PriceType = "recurring"
)

// Price is a read-only snapshot of a provider price record.
type Price struct {
	ID         string
	Active     bool
	Type       PriceType
	UnitAmount int64 // minor currency units
	Currency   string
}

// Purchasable returns a BadRequest error when the price cannot be put in a
// one-off payment cart.
func (p *Price) Purchasable() error {
	if !p.Active {
		return NewBadRequest("Price %q is inactive", p.ID)
	}
	if p.Type == PriceTypeRecurring {
		return NewBadRequest("Price %q is recurring; only one-time prices can be purchased", p.ID)
	}
	return nil
}
