package domain

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// CartLineRequest is one cart line as sent by the storefront.
type CartLineRequest struct {
	PriceID LooseString   `json:"priceId"`
	Qty     LooseQuantity `json:"qty"`
}

// Quantity returns the effective quantity: the coerced qty, at least 1.
func (l CartLineRequest) Quantity() int64 {
	if l.Qty < 1 {
		return 1
	}
	return int64(l.Qty)
}

// LineItem is a cart line whose price was confirmed purchasable.
type LineItem struct {
	PriceID  string
	Quantity int64
}

// CheckoutRequest is the checkout body. Items is kept raw so that a
// non-array value is a validation failure instead of a decode failure.
type CheckoutRequest struct {
	Items json.RawMessage `json:"items"`
}

// ParseCheckoutRequest decodes a checkout body into its cart lines.
// Elements that are not objects decode to an empty line, which later fails
// identifier validation and names the empty identifier.
func ParseCheckoutRequest(body []byte) ([]CartLineRequest, error) {
	var req CheckoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, NewBadRequest("Invalid JSON body")
	}
	raw := bytes.TrimSpace(req.Items)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, NewBadRequest("No items")
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, NewBadRequest("No items")
	}
	if len(elems) == 0 {
		return nil, NewBadRequest("No items")
	}

	lines := make([]CartLineRequest, len(elems))
	for i, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			continue
		}
		if err := json.Unmarshal(elem, &lines[i]); err != nil {
			return nil, NewBadRequest("Invalid item at position %d", i)
		}
	}
	return lines, nil
}

// LooseString accepts any JSON scalar and keeps its string form.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, string(data) == "null":
		*s = ""
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
	default:
		*s = LooseString(data)
	}
	return nil
}

// LooseQuantity accepts a JSON number or numeric string and truncates it to
// an integer. Anything else decodes to 0.
type LooseQuantity int64

func (q *LooseQuantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			*q = 0
			return nil
		}
		text = strings.TrimSpace(v)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*q = 0
		return nil
	}
	f = math.Trunc(f)
	switch {
	case f > math.MaxInt32:
		*q = math.MaxInt32
	case f < 0:
		*q = 0
	default:
		*q = LooseQuantity(f)
	}
	return nil
}
