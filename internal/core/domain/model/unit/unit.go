// Package unit contains the WeighedUnit entity: one physically weighed animal
// belonging to a sale session.
package unit

import (
	"errors"
	"time"

	"farmsale/internal/core/domain/model/kernel"
)

var (
	// ErrUnitIsNotConstructed is returned when a WeighedUnit instance was not
	// created through one of the package constructors.
	ErrUnitIsNotConstructed = errors.New("WeighedUnit must be created via NewWeighedUnit or RestoreWeighedUnit")

	// ErrIDAlreadyAssigned is returned when SetID is called on a unit that
	// already carries a store-assigned identifier.
	ErrIDAlreadyAssigned = errors.New("weighed unit already has a store-assigned id")
)

// WeighedUnit is one weighed animal. Units do not track their own match
// state: a unit's commitment level is derived from the orders referencing it
// (see Commitment), so there is exactly one source of truth for assignments.
type WeighedUnit struct {
	id        kernel.ID
	sessionID kernel.ID
	weight    kernel.Weight
	weighedAt time.Time

	isConstructed bool
}

// NewWeighedUnit creates a not-yet-persisted unit for the given session,
// weighed now.
func NewWeighedUnit(sessionID kernel.ID, weight kernel.Weight) (*WeighedUnit, error) {
	u := &WeighedUnit{
		weighedAt:     time.Now(),
		isConstructed: true,
	}
	if err := errors.Join(u.setSessionID(sessionID), u.setWeight(weight)); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreWeighedUnit reconstructs a persisted unit from storage.
func RestoreWeighedUnit(
	id kernel.ID, sessionID kernel.ID, weight kernel.Weight, weighedAt time.Time,
) (*WeighedUnit, error) {
	u, err := NewWeighedUnit(sessionID, weight)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	u.id = id
	u.weighedAt = weighedAt
	return u, nil
}

// Validate ensures the WeighedUnit was created through a constructor.
func (u *WeighedUnit) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUnitIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or the zero ID before persistence.
func (u *WeighedUnit) ID() kernel.ID {
	return u.id
}

// SessionID returns the owning session's identifier.
func (u *WeighedUnit) SessionID() kernel.ID {
	return u.sessionID
}

// Weight returns the actual weight measured on the scale.
func (u *WeighedUnit) Weight() kernel.Weight {
	return u.weight
}

// WeighedAt returns the moment the unit was recorded.
func (u *WeighedUnit) WeighedAt() time.Time {
	return u.weighedAt
}

// SetID records the identifier assigned by the store. It may be called only
// once, on a unit that has no identifier yet.
func (u *WeighedUnit) SetID(id kernel.ID) error {
	if !u.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *WeighedUnit) setSessionID(sessionID kernel.ID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	u.sessionID = sessionID
	return nil
}

func (u *WeighedUnit) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	u.weight = weight
	return nil
}
