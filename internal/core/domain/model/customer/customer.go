// Package customer contains the Customer entity: a buyer who places orders
// against sale sessions.
package customer

import (
	"errors"
	"strings"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through one of the package constructors.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

	// ErrIDAlreadyAssigned is returned when SetID is called on a customer that
	// already carries a store-assigned identifier.
	ErrIDAlreadyAssigned = errors.New("customer already has a store-assigned id")
)

// Customer represents a buyer. A customer has a required display name and an
// optional phone number. The identifier is assigned by the store on first
// persistence; until then ID().IsZero() is true.
//
// Customers referenced by at least one order cannot be deleted; the store
// surfaces that as an object-in-use error rather than cascading.
type Customer struct {
	id    kernel.ID
	name  string
	phone string

	isConstructed bool
}

// NewCustomer creates a not-yet-persisted customer. The name must be
// non-empty after trimming surrounding whitespace; the phone is optional.
func NewCustomer(name string, phone string) (*Customer, error) {
	c := &Customer{isConstructed: true}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	c.phone = strings.TrimSpace(phone)
	return c, nil
}

// RestoreCustomer reconstructs a persisted customer from storage.
func RestoreCustomer(id kernel.ID, name string, phone string) (*Customer, error) {
	c, err := NewCustomer(name, phone)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or the zero ID before persistence.
func (c *Customer) ID() kernel.ID {
	return c.id
}

// Name returns the trimmed display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the optional phone number, empty when not provided.
func (c *Customer) Phone() string {
	return c.phone
}

// SetID records the identifier assigned by the store. It may be called only
// once, on a customer that has no identifier yet.
func (c *Customer) SetID(id kernel.ID) error {
	if !c.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// Update replaces the customer's name and phone, applying the same
// validation as NewCustomer.
func (c *Customer) Update(name string, phone string) error {
	if err := c.setName(name); err != nil {
		return err
	}
	c.phone = strings.TrimSpace(phone)
	return nil
}

func (c *Customer) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = trimmed
	return nil
}
