package commands

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
	"farmsale/internal/pkg/errs"
	"farmsale/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order against a
// session. The fulfillment spec is the domain's tagged variant: either a
// target weight or a portion/size choice.
//
// Example:
//
//	spec, _ := order.NewWeightSpec(weight)
//	cmd, err := NewCreateOrderCommand(sessionID, customerID, spec)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.ID
	customerID kernel.ID
	spec       order.Spec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The spec must be a constructed WeightSpec or CategorySpec.
func NewCreateOrderCommand(sessionID kernel.ID, customerID kernel.ID, spec order.Spec) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setCustomerID(customerID),
		cmd.setSpec(spec),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// SessionID returns the identifier of the session the order belongs to.
func (c CreateOrderCommand) SessionID() kernel.ID {
	return c.sessionID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Spec returns the fulfillment spec.
func (c CreateOrderCommand) Spec() order.Spec {
	return c.spec
}

func (c *CreateOrderCommand) setSessionID(sessionID kernel.ID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setSpec(spec order.Spec) error {
	if spec == nil {
		return errs.NewValueIsRequiredError("spec")
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	c.spec = spec
	return nil
}
