package commands

import (
	"context"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies that the session and customer exist before creating the order in
// pending status.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new pending order and returns the store-assigned identifier.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Fail with a not-found before writing anything if either side of the
	// relation is gone.
	if _, err := uow.SessionRepository().Get(ctx, cmd.SessionID()); err != nil {
		return 0, err
	}
	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(cmd.SessionID(), cmd.CustomerID(), cmd.Spec())
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
