package catalog

// VariantDTO is a product variant in API responses.
type VariantDTO struct {
	ID      string `json:"id" example:"d45"`
	Label   string `json:"label" example:"Ø45 mm (1.77\")"`
	PriceID string `json:"priceId" example:"price_1RwS0lKpM0dEkwAqGpLvj7se"`
}

// ProductDTO is a catalog entry in API responses.
type ProductDTO struct {
	ID           string       `json:"id" example:"valve-leather"`
	Name         string       `json:"name" example:"Valve Leather Disc"`
	Description  string       `json:"description"`
	PriceCents   int64        `json:"priceCents" example:"400"`
	DisplayPrice string       `json:"displayPrice,omitempty" example:"4.00 EUR"`
	PriceID      string       `json:"priceId,omitempty" example:"price_1RwS1dKpM0dEkwAqj82rF4Ea"`
	Image        string       `json:"image,omitempty"`
	Variants     []VariantDTO `json:"variants,omitempty"`
}

// ProductsResponse is the catalog listing.
type ProductsResponse struct {
	Currency string       `json:"currency" example:"EUR"`
	Products []ProductDTO `json:"products"`
	// PriceIDs lists every sellable price, ready for /api/prices?ids=.
	PriceIDs []string `json:"priceIds"`
}
