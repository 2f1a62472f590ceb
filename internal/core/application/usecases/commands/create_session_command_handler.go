package commands

import (
	"context"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/session"
)

// CreateSessionCommandHandler handles the business logic for opening a sale day.
type CreateSessionCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateSessionCommandHandler creates a handler for session creation.
func NewCreateSessionCommandHandler(uowFactory UoWFactory) CreateSessionCommandHandler {
	return CreateSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new active session and returns the store-assigned identifier.
func (h *CreateSessionCommandHandler) Handle(ctx context.Context, cmd CreateSessionCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	aggregate, err := session.NewSession(cmd.Date(), cmd.Price())
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

	if err = uow.SessionRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
