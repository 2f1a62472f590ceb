package commands

import (
	"context"
)

// UpdateSessionCommandHandler handles the business logic for session updates.
type UpdateSessionCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateSessionCommandHandler creates a handler for session updates.
func NewUpdateSessionCommandHandler(uowFactory UoWFactory) UpdateSessionCommandHandler {
	return UpdateSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the session, applies the new values and persists the change.
func (h *UpdateSessionCommandHandler) Handle(ctx context.Context, cmd UpdateSessionCommand) error {
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

	sessionRepo := uow.SessionRepository()
	aggregate, err := sessionRepo.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(cmd.Date(), cmd.Price(), cmd.Status()); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
