package catalog

import (
	"github.com/amirasaad/storefront/pkg/catalog"
	"github.com/amirasaad/storefront/pkg/money"
	"github.com/gofiber/fiber/v2"
)

// Routes registers HTTP routes for the product catalog.
func Routes(app *fiber.App, cat *catalog.Catalog) {
	app.Get("/api/products", ListProducts(cat))
}

// ListProducts returns a Fiber handler serving the product table.
// @Summary List products
// @Description Returns the catalog with fallback display prices. Live prices
// @Description come from /api/prices.
// @Tags catalog
// @Produce json
// @Success 200 {object} ProductsResponse "Catalog"
// @Router /api/products [get]
func ListProducts(cat *catalog.Catalog) fiber.Handler {
	resp := toResponse(cat)
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(resp)
	}
}

func toResponse(cat *catalog.Catalog) ProductsResponse {
	currency := cat.Currency()
	products := cat.Products()
	out := ProductsResponse{
		Currency: string(currency),
		Products: make([]ProductDTO, 0, len(products)),
		PriceIDs: cat.PriceIDs(),
	}
	for _, p := range products {
		dto := ProductDTO{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			PriceCents:  p.PriceCents,
			PriceID:     p.PriceID,
			Image:       p.Image,
		}
		if p.PriceCents > 0 {
			dto.DisplayPrice = money.Format(p.PriceCents, currency)
		}
		for _, v := range p.Variants {
			dto.Variants = append(dto.Variants, VariantDTO{ID: v.ID, Label: v.Label, PriceID: v.PriceID})
		}
		out.Products = append(out.Products, dto)
	}
	return out
}
