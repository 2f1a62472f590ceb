package services

import "errors"

var (
	// ErrUnitFromOtherSession is returned when assigning a unit that belongs
	// to a different session than the order.
	ErrUnitFromOtherSession = errors.New("unit belongs to a different session")

	// ErrUnitFullyCommitted is returned when assigning a unit that is already
	// fully spoken for by a whole order or by two half orders.
	ErrUnitFullyCommitted = errors.New("unit is fully committed")

	// ErrUnitHalfCommitted is returned when a whole order tries to take a
	// unit that already carries a half claim.
	ErrUnitHalfCommitted = errors.New("unit is half-committed and only available to half orders")
)
