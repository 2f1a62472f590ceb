package order

import (
	"errors"

	"farmsale/internal/core/domain/model/kernel"
)

var (
	// ErrWeightSpecIsNotConstructed is returned when a WeightSpec was not
	// created via NewWeightSpec.
	ErrWeightSpecIsNotConstructed = errors.New("WeightSpec must be created via NewWeightSpec constructor")

	// ErrCategorySpecIsNotConstructed is returned when a CategorySpec was not
	// created via NewCategorySpec.
	ErrCategorySpecIsNotConstructed = errors.New("CategorySpec must be created via NewCategorySpec constructor")
)

// Spec is the tagged variant describing what the customer ordered: either a
// target weight (WeightSpec) or a portion and size choice (CategorySpec).
// Exactly one variant is attached to every order, which makes the
// "one mode active, the other's fields null" invariant structural instead of
// a pair of mutually exclusive nullable columns.
type Spec interface {
	// Portion returns the portion type implied by the spec. Weight-mode
	// orders always consume a whole unit.
	Portion() PortionType

	// Validate ensures the spec was created through its constructor.
	Validate() error

	// sealed restricts implementations to this package.
	sealed()
}

// WeightSpec is the weight-mode variant: the customer wants a whole unit as
// close as possible to a target weight.
type WeightSpec struct {
	target kernel.Weight

	isConstructed bool
}

// NewWeightSpec creates a weight-mode spec with the given target weight.
func NewWeightSpec(target kernel.Weight) (WeightSpec, error) {
	if err := target.Validate(); err != nil {
		return WeightSpec{}, err
	}
	return WeightSpec{target: target, isConstructed: true}, nil
}

// Target returns the requested target weight.
func (s WeightSpec) Target() kernel.Weight {
	return s.target
}

// Portion always returns Whole: a weight-mode order consumes an entire unit.
func (s WeightSpec) Portion() PortionType {
	return Whole
}

// Validate ensures the spec was created via NewWeightSpec.
func (s WeightSpec) Validate() error {
	if !s.isConstructed {
		return ErrWeightSpecIsNotConstructed
	}
	return nil
}

func (s WeightSpec) sealed() {}

// CategorySpec is the category-mode variant: the customer wants a whole or
// half unit, optionally from a specific size tier.
type CategorySpec struct {
	portion PortionType
	size    SizePreference

	isConstructed bool
}

// NewCategorySpec creates a category-mode spec. The portion type is required;
// the size preference may be SizeUnspecified.
func NewCategorySpec(portion PortionType, size SizePreference) (CategorySpec, error) {
	if err := errors.Join(portion.Validate(), size.Validate()); err != nil {
		return CategorySpec{}, err
	}
	return CategorySpec{portion: portion, size: size, isConstructed: true}, nil
}

// Portion returns the chosen portion type.
func (s CategorySpec) Portion() PortionType {
	return s.portion
}

// Size returns the chosen size preference, SizeUnspecified when none.
func (s CategorySpec) Size() SizePreference {
	return s.size
}

// Validate ensures the spec was created via NewCategorySpec.
func (s CategorySpec) Validate() error {
	if !s.isConstructed {
		return ErrCategorySpecIsNotConstructed
	}
	return nil
}

func (s CategorySpec) sealed() {}

// SizeOf extracts the size preference from a spec. Weight-mode specs have
// no size preference.
func SizeOf(spec Spec) SizePreference {
	if cs, ok := spec.(CategorySpec); ok {
		return cs.Size()
	}
	return SizeUnspecified
}
