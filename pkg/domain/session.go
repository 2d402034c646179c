package domain

// SessionModePayment is the only mode this storefront creates sessions in.
const SessionModePayment = "payment"

// ShippingRate is the single flat-rate shipping option offered at checkout.
type ShippingRate struct {
	DisplayName string
	Amount      int64 // minor currency units
	Currency    string
	MinDays     int64
	MaxDays     int64
}

// CustomField is an optional free-text field shown on the hosted page.
type CustomField struct {
	Key       string
	Label     string
	MaxLength int64
}

// SessionOptions are the presentation and collection options attached to
// every checkout session. They are fixed at start-up.
type SessionOptions struct {
	Locale                string
	RequireBillingAddress bool
	CollectPhone          bool
	AllowedCountries      []string
	Shipping              ShippingRate
	CustomField           *CustomField
	AllowPromotionCodes   bool
	CustomerCreation      string
	AutomaticTax          bool
}

// CheckoutSessionRequest is what gets sent to the provider.
type CheckoutSessionRequest struct {
	Mode       string
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
	Options    SessionOptions
}

// CheckoutSession is the provider's session handle. Only URL is consumed.
type CheckoutSession struct {
	ID  string
	URL string
}
