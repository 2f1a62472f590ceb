package session

import (
	"fmt"

	"farmsale/internal/pkg/errs"
)

// Status represents the lifecycle state of a sale session.
//
// A session is Active while weighing and matching are still in progress and
// Completed once the sale day is over. Completed sessions can be reopened,
// so both transitions are allowed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active is the initial status of a freshly created session.
	Active

	// Completed marks a session whose sale day is finished.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Active:    "active",
		Completed: "completed",
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
		fmt.Errorf("%q is not a valid session status", value))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid session status", s))
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
