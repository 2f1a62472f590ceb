package commands

import (
	"context"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/unit"
)

// RecordWeighingCommandHandler handles the business logic for recording a
// scale reading.
type RecordWeighingCommandHandler struct {
	uowFactory UoWFactory
}

// NewRecordWeighingCommandHandler creates a handler for recording weighings.
func NewRecordWeighingCommandHandler(uowFactory UoWFactory) RecordWeighingCommandHandler {
	return RecordWeighingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new weighed unit and returns the store-assigned identifier.
func (h *RecordWeighingCommandHandler) Handle(ctx context.Context, cmd RecordWeighingCommand) (kernel.ID, error) {
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

	if _, err := uow.SessionRepository().Get(ctx, cmd.SessionID()); err != nil {
		return 0, err
	}

	aggregate, err := unit.NewWeighedUnit(cmd.SessionID(), cmd.Weight())
	if err != nil {
		return 0, err
	}

	if err = uow.UnitRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
