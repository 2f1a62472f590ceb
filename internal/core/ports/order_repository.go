package ports

import (
	"context"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns the store-generated id back onto
	// the aggregate via SetID.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, including its status and
	// unit assignment.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAllBySession retrieves every order of the given session, newest
	// first. The complete set is needed to derive unit commitments.
	GetAllBySession(ctx context.Context, sessionID kernel.ID) ([]*order.Order, error)

	// Delete removes an order.
	Delete(ctx context.Context, id kernel.ID) error

	// DeleteBySession removes all orders of a session. First step of the
	// session delete cascade.
	DeleteBySession(ctx context.Context, sessionID kernel.ID) error

	// CountByCustomer counts orders referencing the given customer. Used by
	// the customer delete guard.
	CountByCustomer(ctx context.Context, customerID kernel.ID) (int64, error)

	// CountInvoicedInYear counts invoiced orders whose session sale date falls
	// within the given calendar year. Drives the invoice sequence.
	CountInvoicedInYear(ctx context.Context, year int) (int64, error)
}
