package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
	"farmsale/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{db: db, tracker: tracker}
}

// Add inserts the order and assigns the generated id back onto the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update persists changes to an existing order, including its status and
// unit assignment.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	var dto OrderDTO

	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAllBySession retrieves every order of the session, newest first.
func (r *GormOrderRepository) GetAllBySession(
	ctx context.Context, sessionID kernel.ID,
) ([]*order.Order, error) {
	var dtos []OrderDTO

	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID.Int64()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

// Delete removes an order.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return nil
}

// DeleteBySession removes all orders of a session.
func (r *GormOrderRepository) DeleteBySession(ctx context.Context, sessionID kernel.ID) error {
	return r.db.WithContext(ctx).
		Delete(&OrderDTO{}, "session_id = ?", sessionID.Int64()).Error
}

// CountByCustomer counts orders referencing the customer.
func (r *GormOrderRepository) CountByCustomer(
	ctx context.Context, customerID kernel.ID,
) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("customer_id = ?", customerID.Int64()).
		Count(&count).Error
	return count, err
}

// CountInvoicedInYear counts invoiced orders whose session sale date falls in
// the given calendar year.
func (r *GormOrderRepository) CountInvoicedInYear(ctx context.Context, year int) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Joins("JOIN sessions s ON orders.session_id = s.id").
		Where("orders.status = ? AND substr(s.date, 1, 4) = ?",
			order.Invoiced.String(), fmt.Sprintf("%04d", year)).
		Count(&count).Error
	return count, err
}
