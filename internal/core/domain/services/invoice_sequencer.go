package services

import (
	"fmt"

	"farmsale/internal/pkg/errs"
)

// InvoiceSequencer issues year-scoped invoice numbers: a two-digit year
// suffix followed by a zero-padded sequence starting at 1, e.g. the third
// invoice of 2025 is "25003".
//
// The sequence is derived by counting the orders already invoiced in that
// calendar year, never stored as a running counter. The gap-free guarantee
// therefore depends on invoiced orders being protected from deletion, which
// the order model enforces.
type InvoiceSequencer struct{}

// NewInvoiceSequencer creates a new InvoiceSequencer instance.
func NewInvoiceSequencer() InvoiceSequencer {
	return InvoiceSequencer{}
}

// Next formats the next invoice number for the given calendar year, where
// invoicedCount is the number of orders already invoiced in that year.
func (s InvoiceSequencer) Next(year int, invoicedCount int64) (string, error) {
	if year < 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("year",
			fmt.Errorf("%d is not a valid calendar year", year))
	}
	if invoicedCount < 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("invoiced count",
			fmt.Errorf("%d is negative", invoicedCount))
	}
	return fmt.Sprintf("%02d%03d", year%100, invoicedCount+1), nil
}
