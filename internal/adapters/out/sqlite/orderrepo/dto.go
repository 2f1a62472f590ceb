// Package orderrepo persists order aggregates in the orders table.
//
// The two order modes share one row: weight-mode orders carry a target_weight
// and NULL category columns, category-mode orders the reverse. The turkey_id
// column is the only place a unit assignment is stored; unit commitment is
// derived from it, never persisted separately.
package orderrepo

import (
	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
)

// OrderDTO maps an order aggregate to its row.
type OrderDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	SessionID      int64
	CustomerID     int64
	TargetWeight   *float64
	PortionType    string
	SizePreference *string
	Status         string
	TurkeyID       *int64 `gorm:"column:turkey_id"`
}

// TableName overrides GORM's naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:          aggregate.ID().Int64(),
		SessionID:   aggregate.SessionID().Int64(),
		CustomerID:  aggregate.CustomerID().Int64(),
		PortionType: aggregate.Spec().Portion().String(),
		Status:      aggregate.Status().String(),
	}

	switch spec := aggregate.Spec().(type) {
	case order.WeightSpec:
		target := spec.Target().Float64()
		dto.TargetWeight = &target
	case order.CategorySpec:
		if spec.Size().IsSpecified() {
			size := spec.Size().String()
			dto.SizePreference = &size
		}
	}

	if unitID := aggregate.UnitID(); unitID != nil {
		raw := unitID.Int64()
		dto.TurkeyID = &raw
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	sessionID, err := kernel.NewID(dto.SessionID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.NewID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	spec, err := specFromColumns(dto)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var unitID *kernel.ID
	if dto.TurkeyID != nil {
		assigned, idErr := kernel.NewID(*dto.TurkeyID)
		if idErr != nil {
			return nil, idErr
		}
		unitID = &assigned
	}

	return order.RestoreOrder(id, sessionID, customerID, spec, status, unitID)
}

// specFromColumns rebuilds the spec variant: a non-null target_weight means
// weight mode, everything else category mode.
func specFromColumns(dto OrderDTO) (order.Spec, error) {
	if dto.TargetWeight != nil {
		target, err := kernel.NewWeight(*dto.TargetWeight)
		if err != nil {
			return nil, err
		}
		spec, err := order.NewWeightSpec(target)
		if err != nil {
			return nil, err
		}
		return spec, nil
	}

	portion, err := order.PortionFromString(dto.PortionType)
	if err != nil {
		return nil, err
	}

	rawSize := ""
	if dto.SizePreference != nil {
		rawSize = *dto.SizePreference
	}
	size, err := order.SizeFromString(rawSize)
	if err != nil {
		return nil, err
	}

	spec, err := order.NewCategorySpec(portion, size)
	if err != nil {
		return nil, err
	}
	return spec, nil
}
