package domain_test

import (
	"fmt"
	"testing"

	"github.com/amirasaad/storefront/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPriceID(t *testing.T) {
	valid := []string{"price_ABC123", "price_1RwS0lKpM0dEkwAqGpLvj7se", "price_x"}
	invalid := []string{"", "price_", "prod_ABC", "price_cup_washer_test", "price_AB-C", " price_A", "PRICE_A", "price_A\n"}

	for _, id := range valid {
		assert.True(t, domain.IsPriceID(id), id)
	}
	for _, id := range invalid {
		assert.False(t, domain.IsPriceID(id), fmt.Sprintf("%q", id))
	}
}

func TestPrice_Purchasable(t *testing.T) {
	tests := []struct {
		name    string
		price   domain.Price
		wantErr string
	}{
		{"active one-time", domain.Price{ID: "price_A", Active: true, Type: domain.PriceTypeOneTime}, ""},
		{"inactive", domain.Price{ID: "price_B", Active: false, Type: domain.PriceTypeOneTime}, `Price "price_B" is inactive`},
		{"recurring", domain.Price{ID: "price_C", Active: true, Type: domain.PriceTypeRecurring}, `Price "price_C" is recurring`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.price.Purchasable()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrBadRequest)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
