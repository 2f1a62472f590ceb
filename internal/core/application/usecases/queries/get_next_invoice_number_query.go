package queries

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/guard"
)

var ErrGetNextInvoiceNumberQueryIsNotConstructed = errors.New(
	"GetNextInvoiceNumberQuery must be created via NewGetNextInvoiceNumberQuery constructor",
)

// GetNextInvoiceNumberQuery previews the invoice number the next invoicing
// in the session's calendar year would be assigned.
type GetNextInvoiceNumberQuery struct {
	sessionID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetNextInvoiceNumberQuery creates a query to preview the next invoice number.
func NewGetNextInvoiceNumberQuery(sessionID kernel.ID) (GetNextInvoiceNumberQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetNextInvoiceNumberQuery{}, err
	}
	return GetNextInvoiceNumberQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

// SessionID returns the session whose calendar year scopes the sequence.
func (q GetNextInvoiceNumberQuery) SessionID() kernel.ID {
	return q.sessionID
}

// Validate ensures the query was created through the constructor.
func (q GetNextInvoiceNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetNextInvoiceNumberQueryIsNotConstructed)
}
