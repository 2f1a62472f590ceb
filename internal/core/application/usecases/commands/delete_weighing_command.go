package commands

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/guard"
)

var ErrDeleteWeighingCommandIsNotConstructed = errors.New(
	"DeleteWeighingCommand must be created via NewDeleteWeighingCommand constructor",
)

// DeleteWeighingCommand represents a request to remove a weighed unit, e.g.
// after a mis-read scale value. Refused while any order references the unit.
type DeleteWeighingCommand struct { //nolint:recvcheck //using for validation
	unitID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteWeighingCommand creates a command to delete the given weighed unit.
func NewDeleteWeighingCommand(unitID kernel.ID) (DeleteWeighingCommand, error) {
	cmd := DeleteWeighingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUnitID(unitID); err != nil {
		return DeleteWeighingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteWeighingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWeighingCommandIsNotConstructed)
}

// UnitID returns the identifier of the weighed unit to delete.
func (c DeleteWeighingCommand) UnitID() kernel.ID {
	return c.unitID
}

func (c *DeleteWeighingCommand) setUnitID(unitID kernel.ID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}

	c.unitID = unitID
	return nil
}
