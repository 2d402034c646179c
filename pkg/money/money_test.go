package money_test

import (
	"testing"

	"github.com/amirasaad/storefront/pkg/money"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount money.Amount
		code   money.Code
		want   string
	}{
		{"EUR cents", 400, money.EUR, "4.00 EUR"},
		{"EUR odd cents", 1999, money.EUR, "19.99 EUR"},
		{"zero", 0, money.USD, "0.00 USD"},
		{"JPY has no minor unit", 500, money.JPY, "500 JPY"},
		{"KWD has three decimals", 1234, money.KWD, "1.234 KWD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(tt.amount, tt.code))
		})
	}
}

func TestParseCode(t *testing.T) {
	assert.Equal(t, money.EUR, money.ParseCode(" eur "))
	assert.True(t, money.ParseCode("usd").IsValid())
	assert.False(t, money.Code("EU").IsValid())
	assert.False(t, money.Code("eur").IsValid())
	assert.Equal(t, "eur", money.EUR.Lower())
}

func TestMajor_IsExact(t *testing.T) {
	assert.Equal(t, "0.1", money.Major(10, money.EUR).String())
	assert.Equal(t, "1234567890.12", money.Major(123456789012, money.EUR).String())
}
