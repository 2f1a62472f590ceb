package queries

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/guard"
)

var (
	ErrBuildInvoiceQueryIsNotConstructed = errors.New(
		"BuildInvoiceQuery must be created via NewBuildInvoiceQuery constructor",
	)

	// ErrOrderHasNoBillableUnit is returned when previewing an invoice for an
	// order without an assigned unit.
	ErrOrderHasNoBillableUnit = errors.New("order has no assigned unit to bill")
)

// BuildInvoiceQuery assembles the invoice document data for one order
// without changing its status. Used to preview what the invoicing command
// would render and share.
type BuildInvoiceQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewBuildInvoiceQuery creates a query to assemble invoice document data.
func NewBuildInvoiceQuery(orderID kernel.ID) (BuildInvoiceQuery, error) {
	if err := orderID.Validate(); err != nil {
		return BuildInvoiceQuery{}, err
	}
	return BuildInvoiceQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// OrderID returns the order to build the document for.
func (q BuildInvoiceQuery) OrderID() kernel.ID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q BuildInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrBuildInvoiceQueryIsNotConstructed)
}
