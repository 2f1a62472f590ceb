package kernel

import (
	"fmt"

	"farmsale/internal/pkg/errs"
)

// Weight represents a weight in kilograms. Weights are always strictly
// positive; the zero value is invalid and fails Validate.
type Weight float64

// NewWeight creates a Weight from a raw kilogram value.
// The value must be greater than 0.
//
// Example:
//
//	w, err := kernel.NewWeight(7.4)
//	if err != nil {
//	    // Handle validation error
//	}
func NewWeight(value float64) (Weight, error) {
	w := Weight(value)
	if err := w.Validate(); err != nil {
		return 0, err
	}
	return w, nil
}

// Validate checks that the weight is strictly positive.
func (w Weight) Validate() error {
	if w <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is not greater than 0", float64(w)))
	}
	return nil
}

// Float64 returns the raw kilogram value.
func (w Weight) Float64() float64 {
	return float64(w)
}

// Half returns half of the weight. Used for orders that consume half a unit.
func (w Weight) Half() Weight {
	return w / 2
}

// String returns the weight formatted with one decimal, e.g. "7.4".
func (w Weight) String() string {
	return fmt.Sprintf("%.1f", float64(w))
}
