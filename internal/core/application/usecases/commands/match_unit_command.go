package commands

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/guard"
)

var ErrMatchUnitCommandIsNotConstructed = errors.New(
	"MatchUnitCommand must be created via NewMatchUnitCommand constructor",
)

// MatchUnitCommand represents a request to assign a weighed unit to an order.
type MatchUnitCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	unitID  kernel.ID

	guard guard.ConstructorGuard
}

// NewMatchUnitCommand creates a command to assign the given unit to the given order.
func NewMatchUnitCommand(orderID kernel.ID, unitID kernel.ID) (MatchUnitCommand, error) {
	cmd := MatchUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUnitID(unitID),
	); err != nil {
		return MatchUnitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MatchUnitCommand) Validate() error {
	return c.guard.Validate(ErrMatchUnitCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to match.
func (c MatchUnitCommand) OrderID() kernel.ID {
	return c.orderID
}

// UnitID returns the identifier of the unit to assign.
func (c MatchUnitCommand) UnitID() kernel.ID {
	return c.unitID
}

func (c *MatchUnitCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MatchUnitCommand) setUnitID(unitID kernel.ID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}

	c.unitID = unitID
	return nil
}
