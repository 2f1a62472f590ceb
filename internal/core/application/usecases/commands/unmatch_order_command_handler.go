package commands

import (
	"context"
)

// UnmatchOrderCommandHandler handles the business logic for clearing a match.
// For a half order this only removes this order's claim: a unit shared with a
// second half order stays half-committed for the other holder, because the
// assignment lives on each order row.
type UnmatchOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUnmatchOrderCommandHandler creates a handler for unmatch operations.
func NewUnmatchOrderCommandHandler(uowFactory UoWFactory) UnmatchOrderCommandHandler {
	return UnmatchOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle clears the order's unit assignment and moves it back to pending.
// Rejects invoiced orders via the domain status machine.
func (h *UnmatchOrderCommandHandler) Handle(ctx context.Context, cmd UnmatchOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Unmatch(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
