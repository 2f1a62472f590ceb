package kernel

import (
	"time"

	"farmsale/internal/pkg/errs"
	"farmsale/internal/pkg/guard"
)

// saleDateLayout is the wire format for sale dates, e.g. "2025-12-20".
const saleDateLayout = "2006-01-02"

// ErrSaleDateIsNotConstructed is returned when validating a zero-value SaleDate.
var ErrSaleDateIsNotConstructed = errs.NewValueIsRequiredError(
	"sale date must be created via NewSaleDate constructor")

// SaleDate is the calendar date of a sale session. It is an immutable value
// object parsed from the YYYY-MM-DD wire format; the zero value is invalid.
//
// Example:
//
//	date, err := kernel.NewSaleDate("2025-12-20")
//	if err != nil {
//	    // Handle malformed date
//	}
//	fmt.Println(date.Year()) // 2025
type SaleDate struct {
	value time.Time
	guard guard.ConstructorGuard
}

// NewSaleDate parses a SaleDate from its YYYY-MM-DD representation.
// Returns a validation error for malformed input.
func NewSaleDate(value string) (SaleDate, error) {
	parsed, err := time.Parse(saleDateLayout, value)
	if err != nil {
		return SaleDate{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}

	return SaleDate{
		value: parsed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the SaleDate was created via NewSaleDate.
func (d SaleDate) Validate() error {
	return d.guard.Validate(ErrSaleDateIsNotConstructed)
}

// Year returns the calendar year of the sale date.
func (d SaleDate) Year() int {
	return d.value.Year()
}

// String returns the YYYY-MM-DD representation.
func (d SaleDate) String() string {
	return d.value.Format(saleDateLayout)
}
