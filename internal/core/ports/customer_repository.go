// Package ports defines the persistence and collaborator interfaces of the
// core. These contracts separate the domain from infrastructure, enabling
// dependency inversion and testability.
package ports

import (
	"context"

	"farmsale/internal/core/domain/model/customer"
	"farmsale/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer and assigns the store-generated id back onto
	// the aggregate via SetID.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its identifier.
	// Returns errs.ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)

	// GetAll retrieves all customers ordered by name.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// Delete removes a customer. Callers must verify no orders reference the
	// customer first; the referential-integrity guard lives in the command.
	Delete(ctx context.Context, id kernel.ID) error
}
