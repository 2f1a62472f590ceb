// Package sessionrepo persists session aggregates in the sessions table.
package sessionrepo

import (
	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/session"
)

// SessionDTO maps a session aggregate to its row. The sale date is stored in
// its YYYY-MM-DD wire format so date ordering works lexicographically.
type SessionDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	Date       string
	PricePerKg float64
	Status     string
}

// TableName overrides GORM's naming convention.
func (SessionDTO) TableName() string {
	return "sessions"
}

func fromDomain(aggregate *session.Session) SessionDTO {
	return SessionDTO{
		ID:         aggregate.ID().Int64(),
		Date:       aggregate.Date().String(),
		PricePerKg: aggregate.Price().Float64(),
		Status:     aggregate.Status().String(),
	}
}

func toDomain(dto SessionDTO) (*session.Session, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	date, err := kernel.NewSaleDate(dto.Date)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.PricePerKg)
	if err != nil {
		return nil, err
	}
	status, err := session.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	return session.RestoreSession(id, date, price, status)
}
