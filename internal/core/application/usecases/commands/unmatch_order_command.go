package commands

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/guard"
)

var ErrUnmatchOrderCommandIsNotConstructed = errors.New(
	"UnmatchOrderCommand must be created via NewUnmatchOrderCommand constructor",
)

// UnmatchOrderCommand represents a request to clear an order's unit assignment.
type UnmatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewUnmatchOrderCommand creates a command to unmatch the given order.
func NewUnmatchOrderCommand(orderID kernel.ID) (UnmatchOrderCommand, error) {
	cmd := UnmatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UnmatchOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnmatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnmatchOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to unmatch.
func (c UnmatchOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *UnmatchOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
