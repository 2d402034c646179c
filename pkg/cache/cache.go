package cache

import (
	"context"
	"time"
)

// PriceCache stores price unit amounts (minor units) by price id.
// Get reports found=false on a miss; err is reserved for backend failures.
type PriceCache interface {
	Get(ctx context.Context, priceID string) (amount int64, found bool, err error)
	Set(ctx context.Context, priceID string, amount int64, ttl time.Duration) error
	Delete(ctx context.Context, priceID string) error
}
