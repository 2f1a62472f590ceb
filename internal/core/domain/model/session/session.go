// Package session contains the Session entity: one dated sale event with a
// fixed price per kilogram. Sessions own orders and weighed units.
package session

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through one of the package constructors.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession")

	// ErrIDAlreadyAssigned is returned when SetID is called on a session that
	// already carries a store-assigned identifier.
	ErrIDAlreadyAssigned = errors.New("session already has a store-assigned id")
)

// Session represents one sale day. Orders and weighed units belong to exactly
// one session; deleting a session deletes its orders and units first.
//
// Session follows these invariants:
//   - Must have a valid sale date and a positive price per kilogram
//   - Status is Active or Completed
//   - Can only be created through the package constructors
type Session struct {
	id     kernel.ID
	date   kernel.SaleDate
	price  kernel.Price
	status Status

	isConstructed bool
}

// NewSession creates a not-yet-persisted session in Active status.
func NewSession(date kernel.SaleDate, price kernel.Price) (*Session, error) {
	s := &Session{
		status:        Active,
		isConstructed: true,
	}
	if err := errors.Join(s.setDate(date), s.setPrice(price)); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreSession reconstructs a persisted session from storage.
func RestoreSession(id kernel.ID, date kernel.SaleDate, price kernel.Price, status Status) (*Session, error) {
	s, err := NewSession(date, price)
	if err != nil {
		return nil, err
	}
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	s.id = id
	s.status = status
	return s, nil
}

// Validate ensures the Session was created through a constructor.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or the zero ID before persistence.
func (s *Session) ID() kernel.ID {
	return s.id
}

// Date returns the sale date.
func (s *Session) Date() kernel.SaleDate {
	return s.date
}

// Price returns the price per kilogram for this sale day.
func (s *Session) Price() kernel.Price {
	return s.price
}

// Status returns the current session status.
func (s *Session) Status() Status {
	return s.status
}

// SetID records the identifier assigned by the store. It may be called only
// once, on a session that has no identifier yet.
func (s *Session) SetID(id kernel.ID) error {
	if !s.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// Update replaces date, price and status in one step. Both status directions
// are allowed: completing an active session and reopening a completed one.
func (s *Session) Update(date kernel.SaleDate, price kernel.Price, status Status) error {
	if err := errors.Join(date.Validate(), price.Validate(), status.Validate()); err != nil {
		return err
	}
	s.date = date
	s.price = price
	s.status = status
	return nil
}

func (s *Session) setDate(date kernel.SaleDate) error {
	if err := date.Validate(); err != nil {
		return err
	}
	s.date = date
	return nil
}

func (s *Session) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	s.price = price
	return nil
}
