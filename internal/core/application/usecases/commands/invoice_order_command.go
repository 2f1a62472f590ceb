package commands

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/guard"
)

var ErrInvoiceOrderCommandIsNotConstructed = errors.New(
	"InvoiceOrderCommand must be created via NewInvoiceOrderCommand constructor",
)

// InvoiceOrderCommand represents a request to bill a matched order: render
// the invoice document, hand it to the share gateway and, once sharing
// completed, move the order to its terminal invoiced status.
type InvoiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewInvoiceOrderCommand creates a command to invoice the given order.
func NewInvoiceOrderCommand(orderID kernel.ID) (InvoiceOrderCommand, error) {
	cmd := InvoiceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return InvoiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InvoiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrInvoiceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to invoice.
func (c InvoiceOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *InvoiceOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
