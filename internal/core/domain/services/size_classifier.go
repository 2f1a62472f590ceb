package services

import (
	"sort"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
	"farmsale/internal/core/domain/model/unit"
)

// SizeRange is one contiguous weight range. Boundaries are inclusive;
// zero-width ranges (Min == Max) occur when all units weigh the same.
type SizeRange struct {
	Min kernel.Weight
	Max kernel.Weight
}

// SizeRanges are the three tiers covering the full observed weight span of a
// session. Classification resolves boundary ties to the lighter tier.
type SizeRanges struct {
	Light  SizeRange
	Medium SizeRange
	Heavy  SizeRange
}

// SizeClassifier derives weight tiers from a session's weighed units.
//
// With three or more units the sorted units are split into three contiguous
// index groups of near-equal size (remainders favor the lighter groups) and
// each tier spans the weights observed in its group. With fewer than three
// units the observed [min, max] span is divided into three equal-width
// numeric thirds. The result only depends on the multiset of weights, so
// permuting the input yields identical ranges.
type SizeClassifier struct{}

// NewSizeClassifier creates a new SizeClassifier instance.
func NewSizeClassifier() SizeClassifier {
	return SizeClassifier{}
}

// CalculateRanges computes the three tiers for the given units.
// Returns nil for an empty input.
func (c SizeClassifier) CalculateRanges(units []*unit.WeighedUnit) *SizeRanges {
	if len(units) == 0 {
		return nil
	}

	weights := make([]kernel.Weight, len(units))
	for i, u := range units {
		weights[i] = u.Weight()
	}
	sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })

	n := len(weights)
	if n < 3 {
		low, high := weights[0], weights[n-1]
		third := (high - low) / 3
		return &SizeRanges{
			Light:  SizeRange{Min: low, Max: low + third},
			Medium: SizeRange{Min: low + third, Max: low + 2*third},
			Heavy:  SizeRange{Min: low + 2*third, Max: high},
		}
	}

	// Ceiling division keeps the groups as equal as possible and puts any
	// remainder into the earlier groups.
	lightEnd := (n + 2) / 3
	mediumEnd := (2*n + 2) / 3

	return &SizeRanges{
		Light:  SizeRange{Min: weights[0], Max: weights[lightEnd-1]},
		Medium: SizeRange{Min: weights[lightEnd], Max: weights[mediumEnd-1]},
		Heavy:  SizeRange{Min: weights[mediumEnd], Max: weights[n-1]},
	}
}

// Classify buckets a single weight into a tier. Boundary ties resolve to the
// lighter tier: w at or below light.Max is light, else at or below medium.Max
// is medium, else heavy. Callers must rely on this tie-breaking, not on
// symmetric rounding.
func (c SizeClassifier) Classify(w kernel.Weight, ranges SizeRanges) order.SizePreference {
	if w <= ranges.Light.Max {
		return order.SizeLight
	}
	if w <= ranges.Medium.Max {
		return order.SizeMedium
	}
	return order.SizeHeavy
}

// FilterBySize returns exactly the units whose classification matches the
// preference; everything else in the input is implicitly "other".
func (c SizeClassifier) FilterBySize(
	units []*unit.WeighedUnit, ranges SizeRanges, preference order.SizePreference,
) []*unit.WeighedUnit {
	matching := make([]*unit.WeighedUnit, 0, len(units))
	for _, u := range units {
		if c.Classify(u.Weight(), ranges) == preference {
			matching = append(matching, u)
		}
	}
	return matching
}
