package commands

import (
	"context"

	"farmsale/internal/core/domain/model/unit"
	"farmsale/internal/pkg/errs"
)

// DeleteWeighingCommandHandler handles the business logic for removing a
// weighed unit.
type DeleteWeighingCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteWeighingCommandHandler creates a handler for weighed unit removal.
func NewDeleteWeighingCommandHandler(uowFactory UoWFactory) DeleteWeighingCommandHandler {
	return DeleteWeighingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the unit unless an order of its session still references it,
// in which case an errs.ObjectInUseError is returned and nothing changes.
func (h *DeleteWeighingCommandHandler) Handle(ctx context.Context, cmd DeleteWeighingCommand) error {
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

	unitRepo := uow.UnitRepository()
	aggregate, err := unitRepo.Get(ctx, cmd.UnitID())
	if err != nil {
		return err
	}

	if err = h.validateUnreferenced(ctx, uow, aggregate); err != nil {
		return err
	}

	if err = unitRepo.Delete(ctx, cmd.UnitID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *DeleteWeighingCommandHandler) validateUnreferenced(
	ctx context.Context, uow UoW, aggregate *unit.WeighedUnit,
) error {
	orders, err := uow.OrderRepository().GetAllBySession(ctx, aggregate.SessionID())
	if err != nil {
		return err
	}

	for _, o := range orders {
		if id := o.UnitID(); id != nil && *id == aggregate.ID() {
			return errs.NewObjectInUseError("weighed unit", aggregate.ID())
		}
	}
	return nil
}
