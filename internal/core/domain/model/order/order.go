package order

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through one of the package constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrIDAlreadyAssigned is returned when SetID is called on an order that
	// already carries a store-assigned identifier.
	ErrIDAlreadyAssigned = errors.New("order already has a store-assigned id")

	// ErrOrderIsInvoiced is returned for any mutation of an invoiced order.
	ErrOrderIsInvoiced = errors.New("order is invoiced and can no longer be changed")

	// ErrOrderIsNotPending is returned when editing an order that already has
	// a unit assigned.
	ErrOrderIsNotPending = errors.New("order must be pending to be edited")
)

// Order represents a customer's request against a sale session. It is the
// aggregate root of the fulfillment workflow: it owns the status machine and
// the unit assignment, and it is the only place the invariant "pending means
// no assigned unit, and vice versa" is maintained.
type Order struct {
	id         kernel.ID
	sessionID  kernel.ID
	customerID kernel.ID
	spec       Spec
	status     Status
	unitID     *kernel.ID

	isConstructed bool
}

// NewOrder creates a not-yet-persisted pending order for the given session
// and customer. The spec must be a constructed WeightSpec or CategorySpec.
func NewOrder(sessionID kernel.ID, customerID kernel.ID, spec Spec) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}
	if err := errors.Join(
		o.setSessionID(sessionID),
		o.setCustomerID(customerID),
		o.setSpec(spec),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder reconstructs a persisted order from storage, enforcing the
// status/unit consistency invariant.
func RestoreOrder(
	id kernel.ID,
	sessionID kernel.ID,
	customerID kernel.ID,
	spec Spec,
	status Status,
	unitID *kernel.ID,
) (*Order, error) {
	o, err := NewOrder(sessionID, customerID, spec)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveUnit(unitID != nil); err != nil {
		return nil, err
	}
	if unitID != nil {
		if err := unitID.Validate(); err != nil {
			return nil, err
		}
		u := *unitID
		o.unitID = &u
	}

	o.id = id
	o.status = status
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or the zero ID before persistence.
func (o *Order) ID() kernel.ID {
	return o.id
}

// SessionID returns the owning session's identifier.
func (o *Order) SessionID() kernel.ID {
	return o.sessionID
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// Spec returns the order's fulfillment spec (weight or category mode).
func (o *Order) Spec() Spec {
	return o.spec
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// UnitID returns the assigned weighed unit's identifier, nil while pending.
func (o *Order) UnitID() *kernel.ID {
	return o.unitID
}

// IsHalf reports whether the order consumes half a unit.
func (o *Order) IsHalf() bool {
	return o.spec.Portion() == Half
}

// SetID records the identifier assigned by the store. It may be called only
// once, on an order that has no identifier yet.
func (o *Order) SetID(id kernel.ID) error {
	if !o.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// Match assigns a weighed unit to the order and moves it to Matched.
// Both sides of the invariant change together: status and unit reference.
func (o *Order) Match(unitID kernel.ID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Match()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.unitID = &unitID
	return nil
}

// Unmatch clears the unit assignment and moves the order back to Pending.
func (o *Order) Unmatch() error {
	newStatus, err := o.status.Unmatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.unitID = nil
	return nil
}

// Invoice marks a matched order as billed. Invoiced is terminal.
func (o *Order) Invoice() error {
	newStatus, err := o.status.Invoice()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Edit replaces the ordering customer and the fulfillment spec. Only pending
// orders can be edited: a matched order's spec took part in candidate
// selection, so it must be unmatched first; invoiced orders are immutable.
func (o *Order) Edit(customerID kernel.ID, spec Spec) error {
	if o.status == Invoiced {
		return ErrOrderIsInvoiced
	}
	if o.status != Pending {
		return ErrOrderIsNotPending
	}
	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setSpec(spec),
	); err != nil {
		return err
	}
	return nil
}

func (o *Order) setSessionID(sessionID kernel.ID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	o.sessionID = sessionID
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setSpec(spec Spec) error {
	if spec == nil {
		return errs.NewValueIsRequiredError("spec")
	}
	if err := spec.Validate(); err != nil {
		return err
	}
	o.spec = spec
	return nil
}
