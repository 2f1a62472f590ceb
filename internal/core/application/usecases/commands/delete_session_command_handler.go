package commands

import (
	"context"
)

// DeleteSessionCommandHandler handles the business logic for session removal.
type DeleteSessionCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteSessionCommandHandler creates a handler for session removal.
func NewDeleteSessionCommandHandler(uowFactory UoWFactory) DeleteSessionCommandHandler {
	return DeleteSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the session's orders, then its weighed units, then the
// session itself, all in one transaction. Orders go first because they hold
// the foreign key onto units.
func (h *DeleteSessionCommandHandler) Handle(ctx context.Context, cmd DeleteSessionCommand) error {
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

	if err := uow.OrderRepository().DeleteBySession(ctx, cmd.SessionID()); err != nil {
		return err
	}

	if err := uow.UnitRepository().DeleteBySession(ctx, cmd.SessionID()); err != nil {
		return err
	}

	if err := uow.SessionRepository().Delete(ctx, cmd.SessionID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
