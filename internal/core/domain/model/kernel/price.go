package kernel

import (
	"fmt"

	"farmsale/internal/pkg/errs"
)

// Price represents a price per kilogram in the session currency.
// Prices are strictly positive; the zero value fails Validate.
type Price float64

// NewPrice creates a Price from a raw per-kilogram value.
// The value must be greater than 0.
func NewPrice(value float64) (Price, error) {
	p := Price(value)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

// Validate checks that the price is strictly positive.
func (p Price) Validate() error {
	if p <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%g is not greater than 0", float64(p)))
	}
	return nil
}

// Float64 returns the raw per-kilogram value.
func (p Price) Float64() float64 {
	return float64(p)
}

// Total returns the price for the given billable weight.
func (p Price) Total(w Weight) float64 {
	return float64(p) * float64(w)
}

// String returns the price formatted with two decimals, e.g. "10.00".
func (p Price) String() string {
	return fmt.Sprintf("%.2f", float64(p))
}
