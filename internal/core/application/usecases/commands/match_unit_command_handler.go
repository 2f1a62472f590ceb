package commands

import (
	"context"

	"farmsale/internal/core/domain/services"
)

// MatchUnitCommandHandler handles the business logic for assigning a weighed
// unit to an order.
//
// The commitment check and the status write happen inside one transaction, so
// a unit can never end up claimed by a whole order and a half order at once:
// the check sees every order that was committed before it.
type MatchUnitCommandHandler struct {
	uowFactory UoWFactory
	planner    services.MatchPlanner
}

// NewMatchUnitCommandHandler creates a handler for match operations.
func NewMatchUnitCommandHandler(uowFactory UoWFactory) MatchUnitCommandHandler {
	return MatchUnitCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewMatchPlanner(),
	}
}

// Handle assigns the unit to the order and moves the order to matched.
// Rejects cross-session assignments and overcommitted units via the planner.
func (h *MatchUnitCommandHandler) Handle(ctx context.Context, cmd MatchUnitCommand) error {
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

	unitAggregate, err := uow.UnitRepository().Get(ctx, cmd.UnitID())
	if err != nil {
		return err
	}

	sessionOrders, err := orderRepo.GetAllBySession(ctx, aggregate.SessionID())
	if err != nil {
		return err
	}

	if err = h.planner.CanAssign(aggregate, unitAggregate, sessionOrders); err != nil {
		return err
	}

	if err = aggregate.Match(cmd.UnitID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
