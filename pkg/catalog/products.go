package catalog

import "github.com/amirasaad/storefront/pkg/money"

// DefaultProducts is the shop's product table. Price identifiers point at the
// live Stripe account; PriceCents is only a display fallback.
var DefaultProducts = []Product{
	{
		ID:          "cup-washer",
		Name:        "Leather Cup Washer",
		Description: "Leather cup washer for sprayer pumps (Hardi, Ilemo, Mañez y Lozano, Abella).",
		Image:       "/Ilemos%202.JPG",
		Variants: []Variant{
			{ID: "d45", Label: `Ø45 mm (1.77")`, PriceID: "price_1RwS0lKpM0dEkwAqGpLvj7se"},
			{ID: "d50", Label: `Ø50 mm (1.97")`, PriceID: "price_1RwflJKpM0dEkwAqyfVOlu4i"},
			{ID: "d55", Label: `Ø55 mm (2.17")`, PriceID: "price_1RwflJKpM0dEkwAqQ2u4z7rN"},
			{ID: "d60", Label: `Ø60 mm (2.36")`, PriceID: "price_1RwflJKpM0dEkwAq2oDqTNbZ"},
		},
	},
	{
		ID:          "valve-leather",
		Name:        "Valve Leather Disc",
		Description: "Smooth finish, controlled flatness for valves & compressors.",
		PriceCents:  400,
		PriceID:     "price_1RwS1dKpM0dEkwAqj82rF4Ea",
		Image:       "/Cierre%20valvula.JPG",
	},
	{
		ID:          "leather-washer",
		Name:        "Leather Washer",
		Description: "Custom die-cut washers for restoration & OEM needs.",
		PriceCents:  400,
		PriceID:     "price_1RwS2iKpM0dEkwAqNgWt778n",
		Image:       "/Racort.JPG",
	},
	{
		ID:          "leather-cone-cup",
		Name:        "Leather cone cup",
		Description: "Cone cup for pumps/valves. Custom OD/ID.",
		PriceCents:  600,
		PriceID:     "price_1Rwe7xKpM0dEkwAqi1ZgCkAZ",
		Image:       "/Sombreretes.JPG",
	},
}

// Default builds the shop's catalog priced in EUR.
func Default() *Catalog {
	c, err := New(money.EUR, DefaultProducts)
	if err != nil {
		panic(err)
	}
	return c
}
