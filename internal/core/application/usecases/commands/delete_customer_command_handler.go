package commands

import (
	"context"

	"farmsale/internal/pkg/errs"
)

// DeleteCustomerCommandHandler handles the business logic for customer removal.
// Enforces referential integrity: a customer with orders cannot be deleted.
type DeleteCustomerCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for customer removal.
func NewDeleteCustomerCommandHandler(uowFactory UoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the customer unless orders still reference it, in which case
// an errs.ObjectInUseError is returned and nothing changes.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	count, err := uow.OrderRepository().CountByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewObjectInUseError("customer", cmd.CustomerID())
	}

	if err = uow.CustomerRepository().Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
