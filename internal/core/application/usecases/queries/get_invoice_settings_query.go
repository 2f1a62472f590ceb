package queries

import (
	"errors"

	"farmsale/internal/pkg/guard"
)

var ErrGetInvoiceSettingsQueryIsNotConstructed = errors.New(
	"GetInvoiceSettingsQuery must be created via NewGetInvoiceSettingsQuery constructor",
)

// GetInvoiceSettingsQuery retrieves the configurable invoice texts, with
// defaults applied for anything not configured yet.
type GetInvoiceSettingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInvoiceSettingsQuery creates a query to retrieve the invoice texts.
func NewGetInvoiceSettingsQuery() GetInvoiceSettingsQuery {
	return GetInvoiceSettingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceSettingsQueryIsNotConstructed)
}
