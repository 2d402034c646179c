// Package money formats amounts held in minor currency units.
//
// Invariants:
//   - Amounts are always int64 in the smallest currency unit (e.g., cents for EUR).
//   - Conversion to major units is exact; no floating point is involved.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary amount in the smallest currency unit.
type Amount = int64

// Code represents an ISO 4217 currency code (e.g., "EUR").
type Code string

// Common currency codes.
const (
	EUR Code = "EUR" // Euro
	USD Code = "USD" // US Dollar
	GBP Code = "GBP" // British Pound
	JPY Code = "JPY" // Japanese Yen
	KWD Code = "KWD" // Kuwaiti Dinar
)

// ParseCode normalises a provider currency ("eur") to a Code ("EUR").
func ParseCode(s string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(s)))
}

// IsValid checks if the currency code has the ISO 4217 shape.
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// Decimals returns the number of minor-unit digits for the currency.
func (c Code) Decimals() int32 {
	switch c {
	case JPY, "KRW", "VND", "CLP", "ISK", "UGX":
		return 0
	case KWD, "BHD", "JOD", "OMR", "TND":
		return 3
	default:
		return 2
	}
}

// Lower returns the lowercase form the payment provider expects.
func (c Code) Lower() string { return strings.ToLower(string(c)) }

// Major converts a minor-unit amount to its major-unit decimal value.
func Major(amount Amount, c Code) decimal.Decimal {
	return decimal.New(amount, -c.Decimals())
}

// Format renders a minor-unit amount as "4.00 EUR".
func Format(amount Amount, c Code) string {
	return Major(amount, c).StringFixed(c.Decimals()) + " " + string(c)
}
