package commands

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
	"farmsale/internal/pkg/errs"
	"farmsale/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to change an order's customer or
// fulfillment spec. Only pending orders can be edited.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	customerID kernel.ID
	spec       order.Spec

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
func NewUpdateOrderCommand(orderID kernel.ID, customerID kernel.ID, spec order.Spec) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setSpec(spec),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// CustomerID returns the identifier of the new ordering customer.
func (c UpdateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Spec returns the new fulfillment spec.
func (c UpdateOrderCommand) Spec() order.Spec {
	return c.spec
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateOrderCommand) setSpec(spec order.Spec) error {
	if spec == nil {
		return errs.NewValueIsRequiredError("spec")
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	c.spec = spec
	return nil
}
