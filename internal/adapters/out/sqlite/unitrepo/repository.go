package unitrepo

import (
	"context"
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/unit"
	"farmsale/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// GormUnitRepository implements ports.UnitRepository using GORM.
type GormUnitRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormUnitRepository creates a new GORM unit repository.
func NewGormUnitRepository(db *gorm.DB, tracker aggregateTracker) *GormUnitRepository {
	return &GormUnitRepository{db: db, tracker: tracker}
}

// Add inserts the unit and assigns the generated id back onto the aggregate.
func (r *GormUnitRepository) Add(ctx context.Context, aggregate *unit.WeighedUnit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.SetID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a unit by id.
func (r *GormUnitRepository) Get(ctx context.Context, id kernel.ID) (*unit.WeighedUnit, error) {
	var dto UnitDTO

	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("weighed unit", id)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAllBySession retrieves every unit of the session, most recently weighed
// first.
func (r *GormUnitRepository) GetAllBySession(
	ctx context.Context, sessionID kernel.ID,
) ([]*unit.WeighedUnit, error) {
	var dtos []UnitDTO

	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID.Int64()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	units := make([]*unit.WeighedUnit, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		units = append(units, aggregate)
	}
	return units, nil
}

// Delete removes a unit.
func (r *GormUnitRepository) Delete(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).Delete(&UnitDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("weighed unit", id)
	}
	return nil
}

// DeleteBySession removes all units of a session.
func (r *GormUnitRepository) DeleteBySession(ctx context.Context, sessionID kernel.ID) error {
	return r.db.WithContext(ctx).
		Delete(&UnitDTO{}, "session_id = ?", sessionID.Int64()).Error
}
