package ports

import (
	"context"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/unit"
)

// UnitRepository defines the persistence contract for weighed units.
type UnitRepository interface {
	// Add persists a new weighed unit and assigns the store-generated id back
	// onto the aggregate via SetID.
	Add(ctx context.Context, aggregate *unit.WeighedUnit) error

	// Get retrieves a weighed unit by its identifier.
	// Returns errs.ObjectNotFoundError when no such unit exists.
	Get(ctx context.Context, id kernel.ID) (*unit.WeighedUnit, error)

	// GetAllBySession retrieves every unit of the given session, most recently
	// weighed first.
	GetAllBySession(ctx context.Context, sessionID kernel.ID) ([]*unit.WeighedUnit, error)

	// Delete removes a weighed unit. Callers must verify no order references
	// the unit first.
	Delete(ctx context.Context, id kernel.ID) error

	// DeleteBySession removes all units of a session. Runs after the session's
	// orders are gone so no order is left pointing at a deleted unit.
	DeleteBySession(ctx context.Context, sessionID kernel.ID) error
}
