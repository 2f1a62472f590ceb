package commands

import (
	"context"

	"farmsale/internal/core/domain/model/customer"
	"farmsale/internal/core/domain/model/kernel"
)

// CreateCustomerCommandHandler handles the business logic for customer creation.
type CreateCustomerCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer creation.
func NewCreateCustomerCommandHandler(uowFactory UoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new customer and returns the store-assigned identifier.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	aggregate, err := customer.NewCustomer(cmd.Name(), cmd.Phone())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
