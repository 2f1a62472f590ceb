package kernel

import (
	"fmt"

	"farmsale/internal/pkg/errs"
)

// ID is the identifier of a persisted entity. Identifiers are opaque,
// monotonically assigned integers issued by the store; application code never
// invents them. The zero value means "not yet persisted" and fails Validate.
type ID int64

// NewID creates an ID from a raw store value. The value must be positive.
//
// Example:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // Handle validation error
//	}
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the ID carries a store-assigned value.
// Returns an error for the zero value and for negative values.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid identifier", int64(id)))
	}
	return nil
}

// IsZero reports whether the ID has not been assigned by the store yet.
func (id ID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw store value of the identifier.
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the identifier.
func (id ID) String() string {
	return fmt.Sprintf("%d", int64(id))
}
