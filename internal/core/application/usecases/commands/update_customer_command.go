package commands

import (
	"errors"
	"strings"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/errs"
	"farmsale/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to change a customer's details.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	name       string
	phone      string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update an existing customer.
func NewUpdateCustomerCommand(customerID kernel.ID, name string, phone string) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}
	cmd.phone = strings.TrimSpace(phone)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Name returns the new display name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Phone returns the new phone number, empty to clear it.
func (c UpdateCustomerCommand) Phone() string {
	return c.phone
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
