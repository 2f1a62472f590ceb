// Package customerrepo persists customer aggregates in the customers table.
package customerrepo

import (
	"farmsale/internal/core/domain/model/customer"
	"farmsale/internal/core/domain/model/kernel"
)

// CustomerDTO maps a customer aggregate to its row. The created_at column is
// filled by the schema default and not carried in the domain model.
type CustomerDTO struct {
	ID    int64 `gorm:"primaryKey;autoIncrement"`
	Name  string
	Phone string
}

// TableName overrides GORM's naming convention.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    aggregate.ID().Int64(),
		Name:  aggregate.Name(),
		Phone: aggregate.Phone(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name, dto.Phone)
}
