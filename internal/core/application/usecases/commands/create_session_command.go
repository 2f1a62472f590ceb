package commands

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/guard"
)

var ErrCreateSessionCommandIsNotConstructed = errors.New(
	"CreateSessionCommand must be created via NewCreateSessionCommand constructor",
)

// CreateSessionCommand represents a request to open a new sale day.
//
// Example:
//
//	cmd, err := NewCreateSessionCommand("2025-12-20", 11.50)
//	if err != nil {
//	    return fmt.Errorf("invalid session data: %w", err)
//	}
//
//	handler := NewCreateSessionCommandHandler(uowFactory)
//	sessionID, err := handler.Handle(ctx, cmd)
type CreateSessionCommand struct { //nolint:recvcheck //using for validation
	date  kernel.SaleDate
	price kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateSessionCommand creates a command to open a session on the given
// date (YYYY-MM-DD) with the given price per kilogram.
func NewCreateSessionCommand(date string, pricePerKg float64) (CreateSessionCommand, error) {
	cmd := CreateSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDate(date),
		cmd.setPrice(pricePerKg),
	); err != nil {
		return CreateSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSessionCommandIsNotConstructed)
}

// Date returns the sale date.
func (c CreateSessionCommand) Date() kernel.SaleDate {
	return c.date
}

// Price returns the price per kilogram.
func (c CreateSessionCommand) Price() kernel.Price {
	return c.price
}

func (c *CreateSessionCommand) setDate(date string) error {
	parsed, err := kernel.NewSaleDate(date)
	if err != nil {
		return err
	}

	c.date = parsed
	return nil
}

func (c *CreateSessionCommand) setPrice(pricePerKg float64) error {
	price, err := kernel.NewPrice(pricePerKg)
	if err != nil {
		return err
	}

	c.price = price
	return nil
}
