package commands

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/guard"
)

var ErrRecordWeighingCommandIsNotConstructed = errors.New(
	"RecordWeighingCommand must be created via NewRecordWeighingCommand constructor",
)

// RecordWeighingCommand represents one scale reading: a new weighed unit for
// a session.
type RecordWeighingCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.ID
	weight    kernel.Weight

	guard guard.ConstructorGuard
}

// NewRecordWeighingCommand creates a command to record a weighing of the
// given weight (kilograms) in the given session.
func NewRecordWeighingCommand(sessionID kernel.ID, weight float64) (RecordWeighingCommand, error) {
	cmd := RecordWeighingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setWeight(weight),
	); err != nil {
		return RecordWeighingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordWeighingCommand) Validate() error {
	return c.guard.Validate(ErrRecordWeighingCommandIsNotConstructed)
}

// SessionID returns the identifier of the session being weighed for.
func (c RecordWeighingCommand) SessionID() kernel.ID {
	return c.sessionID
}

// Weight returns the measured weight.
func (c RecordWeighingCommand) Weight() kernel.Weight {
	return c.weight
}

func (c *RecordWeighingCommand) setSessionID(sessionID kernel.ID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *RecordWeighingCommand) setWeight(weight float64) error {
	w, err := kernel.NewWeight(weight)
	if err != nil {
		return err
	}

	c.weight = w
	return nil
}
