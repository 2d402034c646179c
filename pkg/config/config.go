package config

import (
	"time"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[storefront]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000" validate:"min=1,max=65535"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Stripe holds the payment provider credential and redirect targets.
// SecretKey and SuccessURL may be empty at start-up; the operations that
// need them report a configuration error instead.
//
//revive:disable
type Stripe struct {
	SecretKey   string        `envconfig:"SECRET_KEY"`
	SuccessURL  string        `envconfig:"SUCCESS_URL"`
	CancelURL   string        `envconfig:"CANCEL_URL" default:"http://localhost:3000/"`
	APIBaseURL  string        `envconfig:"API_BASE_URL"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"80s"`
}

//revive:enable

// Shipping is the single flat-rate option offered at checkout.
type Shipping struct {
	Label    string `envconfig:"LABEL" default:"Standard shipping" validate:"required"`
	Amount   int64  `envconfig:"AMOUNT" default:"900" validate:"gte=0"`
	Currency string `envconfig:"CURRENCY" default:"EUR" validate:"iso4217"`
	MinDays  int64  `envconfig:"MIN_DAYS" default:"3" validate:"gte=1"`
	MaxDays  int64  `envconfig:"MAX_DAYS" default:"7" validate:"gtefield=MinDays"`
}

// Checkout is the presentation and collection bundle sent with every session.
type Checkout struct {
	Locale              string    `envconfig:"LOCALE" default:"en" validate:"required"`
	AllowedCountries    []string  `envconfig:"ALLOWED_COUNTRIES" default:"ES,PT,FR,IT,DE,NL,BE,AT,IE,LU,GB,US,CA" validate:"min=1,dive,iso3166_1_alpha2"`
	Shipping            *Shipping `envconfig:"SHIPPING"`
	CustomFieldKey      string    `envconfig:"CUSTOM_FIELD_KEY" default:"notes" validate:"omitempty,alphanum,max=200"`
	CustomFieldLabel    string    `envconfig:"CUSTOM_FIELD_LABEL" default:"Order notes (size, diameter)" validate:"required_with=CustomFieldKey,max=50"`
	AllowPromotionCodes bool      `envconfig:"ALLOW_PROMOTION_CODES" default:"true"`
	CustomerCreation    string    `envconfig:"CUSTOMER_CREATION" default:"always" validate:"oneof=always if_required"`
	AutomaticTax        bool      `envconfig:"AUTOMATIC_TAX" default:"false"`
}

type PriceLookup struct {
	Concurrency int `envconfig:"CONCURRENCY" default:"4" validate:"min=1,max=32"`
}

// PriceCache configures the optional display-price cache.
type PriceCache struct {
	Driver string        `envconfig:"DRIVER" default:"none" validate:"oneof=none memory redis"`
	TTL    time.Duration `envconfig:"TTL" default:"5m"`
	Prefix string        `envconfig:"PREFIX" default:"price:amount:"`
}

type Redis struct {
	URL string `envconfig:"URL" default:"redis://localhost:6379/0"`
}

type App struct {
	Env             string       `envconfig:"APP_ENV" default:"development"`
	PaymentProvider string       `envconfig:"PAYMENT_PROVIDER" default:"stripe" validate:"oneof=stripe mock"`
	Server          *Server      `envconfig:"SERVER"`
	Log             *Log         `envconfig:"LOG"`
	RateLimit       *RateLimit   `envconfig:"RATE_LIMIT"`
	Stripe          *Stripe      `envconfig:"STRIPE"`
	Checkout        *Checkout    `envconfig:"CHECKOUT"`
	PriceLookup     *PriceLookup `envconfig:"PRICE_LOOKUP"`
	PriceCache      *PriceCache  `envconfig:"PRICE_CACHE"`
	Redis           *Redis       `envconfig:"REDIS"`
}
