package pricing

import (
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	defaultMarkupFraction = 0.45
	defaultCurrency       = "USD"
)

// Calculator derives the customer-facing unit price from a vendor unit
// price using a fixed fractional markup. It is pure and stateless; the
// markup is business policy and comes from configuration, not code.

type Calculator struct {
	markupFraction float64
	currency       string
}

func NewCalculator(markupFraction float64, currency string) Calculator {
	if markupFraction < 0 {
		markupFraction = defaultMarkupFraction
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultCurrency
	}
	return Calculator{markupFraction: markupFraction, currency: currency}
}

// NewCalculatorFromEnv reads PRICING_MARKUP_FRACTION (default 0.45) and
// PRICING_CURRENCY (default USD).
func NewCalculatorFromEnv() Calculator {
	markup := defaultMarkupFraction
	if v := strings.TrimSpace(os.Getenv("PRICING_MARKUP_FRACTION")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			markup = f
		}
	}
	return NewCalculator(markup, os.Getenv("PRICING_CURRENCY"))
}

func (c Calculator) Currency() string {
	return c.currency
}

// CustomerPrice returns round-half-up(vendor * (1 + markup), 2), or nil when
// the vendor price is unknown. Customer-facing money, so the rounding must
// be exact to the minor unit.
func (c Calculator) CustomerPrice(vendorUnitPrice *float64) *float64 {
	if vendorUnitPrice == nil {
		return nil
	}
	price := roundHalfUp2(*vendorUnitPrice * (1 + c.markupFraction))
	return &price
}

// roundHalfUp2 rounds to 2 decimal places with ties away from zero.
// math.Round already rounds half away from zero; the epsilon nudge guards
// against representation error on exact .xx5 inputs (e.g. 48.3285*100).
func roundHalfUp2(x float64) float64 {
	scaled := x * 100
	if scaled >= 0 {
		scaled += 1e-9
	} else {
		scaled -= 1e-9
	}
	return math.Round(scaled) / 100
}
