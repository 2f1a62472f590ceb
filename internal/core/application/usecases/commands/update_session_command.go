package commands

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/session"
	"farmsale/internal/pkg/guard"
)

var ErrUpdateSessionCommandIsNotConstructed = errors.New(
	"UpdateSessionCommand must be created via NewUpdateSessionCommand constructor",
)

// UpdateSessionCommand represents a request to change a session's date, price
// or status. Both status directions are valid: a completed session may be
// reopened.
type UpdateSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.ID
	date      kernel.SaleDate
	price     kernel.Price
	status    session.Status

	guard guard.ConstructorGuard
}

// NewUpdateSessionCommand creates a command to update an existing session.
// The status is given in its wire form ("active" or "completed").
func NewUpdateSessionCommand(
	sessionID kernel.ID, date string, pricePerKg float64, status string,
) (UpdateSessionCommand, error) {
	cmd := UpdateSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setDate(date),
		cmd.setPrice(pricePerKg),
		cmd.setStatus(status),
	); err != nil {
		return UpdateSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSessionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSessionCommandIsNotConstructed)
}

// SessionID returns the identifier of the session to update.
func (c UpdateSessionCommand) SessionID() kernel.ID {
	return c.sessionID
}

// Date returns the new sale date.
func (c UpdateSessionCommand) Date() kernel.SaleDate {
	return c.date
}

// Price returns the new price per kilogram.
func (c UpdateSessionCommand) Price() kernel.Price {
	return c.price
}

// Status returns the new session status.
func (c UpdateSessionCommand) Status() session.Status {
	return c.status
}

func (c *UpdateSessionCommand) setSessionID(sessionID kernel.ID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *UpdateSessionCommand) setDate(date string) error {
	parsed, err := kernel.NewSaleDate(date)
	if err != nil {
		return err
	}

	c.date = parsed
	return nil
}

func (c *UpdateSessionCommand) setPrice(pricePerKg float64) error {
	price, err := kernel.NewPrice(pricePerKg)
	if err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *UpdateSessionCommand) setStatus(status string) error {
	parsed, err := session.StatusFromString(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
