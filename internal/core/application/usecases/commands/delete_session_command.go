package commands

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/guard"
)

var ErrDeleteSessionCommandIsNotConstructed = errors.New(
	"DeleteSessionCommand must be created via NewDeleteSessionCommand constructor",
)

// DeleteSessionCommand represents a request to delete a whole sale day,
// including its orders and weighed units.
type DeleteSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteSessionCommand creates a command to delete the given session.
func NewDeleteSessionCommand(sessionID kernel.ID) (DeleteSessionCommand, error) {
	cmd := DeleteSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return DeleteSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteSessionCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSessionCommandIsNotConstructed)
}

// SessionID returns the identifier of the session to delete.
func (c DeleteSessionCommand) SessionID() kernel.ID {
	return c.sessionID
}

func (c *DeleteSessionCommand) setSessionID(sessionID kernel.ID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
