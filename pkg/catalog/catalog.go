// Package catalog holds the storefront's product table.
//
// The table is immutable once built: callers receive copies, never the
// backing slices, so it can be shared across requests without locking.
package catalog

import (
	"fmt"
	"slices"

	"github.com/amirasaad/storefront/pkg/money"
	"github.com/amirasaad/storefront/pkg/validation"
)

// Variant is a size or finish of a product with its own price.
type Variant struct {
	ID      string `json:"id" validate:"required"`
	Label   string `json:"label" validate:"required"`
	PriceID string `json:"priceId" validate:"priceid"`
}

// Product is a catalog entry. Products with variants are sold per variant;
// PriceID and PriceCents are only meaningful for products without variants.
type Product struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents" validate:"gte=0"`
	PriceID     string    `json:"priceId,omitempty" validate:"required_without=Variants,omitempty,priceid"`
	Image       string    `json:"image,omitempty"`
	Variants    []Variant `json:"variants,omitempty" validate:"dive"`
}

// PriceIDs returns every price identifier that can be added to the cart.
func (p Product) PriceIDs() []string {
	if len(p.Variants) == 0 {
		return []string{p.PriceID}
	}
	ids := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		ids = append(ids, v.PriceID)
	}
	return ids
}

// Catalog is a read-only product table.
type Catalog struct {
	currency money.Code
	products []Product
	byPrice  map[string]string
}

// New validates products and builds a Catalog. Every sellable price
// identifier must have the provider's shape and belong to one product only.
func New(currency money.Code, products []Product) (*Catalog, error) {
	if !currency.IsValid() {
		return nil, fmt.Errorf("invalid catalog currency %q", currency)
	}
	c := &Catalog{
		currency: currency,
		products: make([]Product, 0, len(products)),
		byPrice:  make(map[string]string),
	}
	validate := validation.New()
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("product %q: %w", p.ID, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
		for _, id := range p.PriceIDs() {
			if owner, ok := c.byPrice[id]; ok {
				return nil, fmt.Errorf("price id %q used by %q and %q", id, owner, p.ID)
			}
			c.byPrice[id] = p.ID
		}
		p.Variants = slices.Clone(p.Variants)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Currency is the currency display prices are rendered in.
func (c *Catalog) Currency() money.Code { return c.currency }

// Products returns a copy of the product table in display order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	for i, p := range c.products {
		p.Variants = slices.Clone(p.Variants)
		out[i] = p
	}
	return out
}

// PriceIDs returns all sellable price identifiers in display order.
func (c *Catalog) PriceIDs() []string {
	var ids []string
	for _, p := range c.products {
		ids = append(ids, p.PriceIDs()...)
	}
	return ids
}

