package order

import (
	"fmt"

	"farmsale/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Matched ──> Invoiced
//	    ^           │
//	    └───────────┘
//	      (unmatch)
//
// Invoiced is a final state with no further transitions. Status is a value
// object that validates state transitions and provides the persisted string
// representation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the order has no unit assigned yet.
	Pending

	// Matched means a weighed unit has been assigned to the order.
	Matched

	// Invoiced means the order has been billed. Terminal and immutable.
	Invoiced
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:  "pending",
		Matched:  "matched",
		Invoiced: "invoiced",
	}
}

// StatusFromString parses a Status from its persisted representation.
func StatusFromString(value string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", value))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the persisted representation of the status.
// Implements fmt.Stringer; invalid values yield "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Match transitions the status to Matched.
//
// Valid transitions:
//   - Pending -> Matched
//
// Matched orders must be unmatched first; invoiced orders are immutable.
func (s Status) Match() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to match", s))
	}
	return Matched, nil
}

// Unmatch transitions the status back to Pending.
//
// Valid transitions:
//   - Matched -> Pending
func (s Status) Unmatch() (Status, error) {
	if s != Matched {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to unmatch", s))
	}
	return Pending, nil
}

// Invoice transitions the status to Invoiced.
//
// Valid transitions:
//   - Matched -> Invoiced
//
// Pending orders have nothing to bill; invoiced orders are already billed.
func (s Status) Invoice() (Status, error) {
	if s != Matched {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to invoice", s))
	}
	return Invoiced, nil
}

// ValidateCanHaveUnit validates the consistency between order status and unit
// assignment: pending orders must not reference a unit, matched and invoiced
// orders must.
func (s Status) ValidateCanHaveUnit(hasUnit bool) error {
	if hasUnit && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have an assigned unit", s))
	}
	if !hasUnit && (s == Matched || s == Invoiced) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no assigned unit", s))
	}
	return nil
}
