package order

import (
	"fmt"

	"farmsale/internal/pkg/errs"
)

// PortionType states whether an order consumes an entire weighed unit or
// shares one with exactly one other half order.
type PortionType int

const (
	// PortionUnknown represents an invalid or undefined portion type.
	PortionUnknown PortionType = iota

	// Whole consumes an entire weighed unit.
	Whole

	// Half shares a weighed unit with one other half order.
	Half
)

func getPortionStrings() map[PortionType]string {
	return map[PortionType]string{
		Whole: "whole",
		Half:  "half",
	}
}

// PortionFromString parses a PortionType from its persisted representation.
func PortionFromString(value string) (PortionType, error) {
	for portion, str := range getPortionStrings() {
		if str == value {
			return portion, nil
		}
	}
	return PortionUnknown, errs.NewValueIsInvalidErrorWithCause("portion type",
		fmt.Errorf("%q is not a valid portion type", value))
}

// Validate checks if the PortionType value is valid.
func (p PortionType) Validate() error {
	if _, ok := getPortionStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("portion type",
			fmt.Errorf("%d is not a valid portion type", p))
	}
	return nil
}

// String returns the persisted representation of the portion type.
func (p PortionType) String() string {
	if str, ok := getPortionStrings()[p]; ok {
		return str
	}
	return "unknown"
}
