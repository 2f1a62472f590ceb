// Package unitrepo persists weighed units in the turkeys table.
package unitrepo

import (
	"time"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/unit"
)

// timestampLayout is how SQLite's CURRENT_TIMESTAMP renders into TEXT columns.
const timestampLayout = "2006-01-02 15:04:05"

// UnitDTO maps a weighed unit to its row. The weighing moment is stored in
// the created_at column so recency ordering matches the other tables.
type UnitDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	SessionID    int64
	ActualWeight float64
	CreatedAt    string
}

// TableName overrides GORM's naming convention.
func (UnitDTO) TableName() string {
	return "turkeys"
}

func fromDomain(aggregate *unit.WeighedUnit) UnitDTO {
	return UnitDTO{
		ID:           aggregate.ID().Int64(),
		SessionID:    aggregate.SessionID().Int64(),
		ActualWeight: aggregate.Weight().Float64(),
		CreatedAt:    aggregate.WeighedAt().UTC().Format(timestampLayout),
	}
}

func toDomain(dto UnitDTO) (*unit.WeighedUnit, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	sessionID, err := kernel.NewID(dto.SessionID)
	if err != nil {
		return nil, err
	}
	weight, err := kernel.NewWeight(dto.ActualWeight)
	if err != nil {
		return nil, err
	}

	weighedAt, err := time.Parse(timestampLayout, dto.CreatedAt)
	if err != nil {
		weighedAt = time.Time{}
	}

	return unit.RestoreWeighedUnit(id, sessionID, weight, weighedAt)
}
