package checkout

// CartItem is one cart line. The handler also accepts a numeric priceId and
// a string qty; the types below are what clients should send.
type CartItem struct {
	PriceID string `json:"priceId" example:"price_1RwS1dKpM0dEkwAqj82rF4Ea"`
	Qty     int    `json:"qty" example:"2"`
}

// CheckoutRequest is the checkout body.
type CheckoutRequest struct {
	Items []CartItem `json:"items"`
}

// CheckoutResponse carries the hosted checkout page to redirect to.
type CheckoutResponse struct {
	URL string `json:"url" example:"https://checkout.stripe.com/c/pay/cs_test_a1"`
}
