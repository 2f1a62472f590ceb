package order

import (
	"fmt"

	"farmsale/internal/pkg/errs"
)

// SizePreference is the weight tier a category-mode order asks for.
// SizeUnspecified is a valid choice meaning "any size"; it is persisted
// as NULL.
type SizePreference int

const (
	// SizeUnspecified means the customer has no size preference.
	SizeUnspecified SizePreference = iota

	// SizeLight asks for a unit from the lightest tier.
	SizeLight

	// SizeMedium asks for a unit from the middle tier.
	SizeMedium

	// SizeHeavy asks for a unit from the heaviest tier.
	SizeHeavy
)

func getSizeStrings() map[SizePreference]string {
	return map[SizePreference]string{
		SizeLight:  "light",
		SizeMedium: "medium",
		SizeHeavy:  "heavy",
	}
}

// SizeFromString parses a SizePreference from its persisted representation.
// The empty string parses to SizeUnspecified.
func SizeFromString(value string) (SizePreference, error) {
	if value == "" {
		return SizeUnspecified, nil
	}
	for size, str := range getSizeStrings() {
		if str == value {
			return size, nil
		}
	}
	return SizeUnspecified, errs.NewValueIsInvalidErrorWithCause("size preference",
		fmt.Errorf("%q is not a valid size preference", value))
}

// Validate checks if the SizePreference value is valid.
// SizeUnspecified is valid.
func (s SizePreference) Validate() error {
	if s == SizeUnspecified {
		return nil
	}
	if _, ok := getSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size preference",
			fmt.Errorf("%d is not a valid size preference", s))
	}
	return nil
}

// IsSpecified reports whether the customer actually picked a tier.
func (s SizePreference) IsSpecified() bool {
	return s != SizeUnspecified
}

// String returns the persisted representation, empty for SizeUnspecified.
func (s SizePreference) String() string {
	return getSizeStrings()[s]
}
