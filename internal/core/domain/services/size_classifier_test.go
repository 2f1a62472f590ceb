package services_test

import (
	"math/rand"
	"testing"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
	"farmsale/internal/core/domain/model/unit"
	"farmsale/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func makeUnits(t *testing.T, weights ...float64) []*unit.WeighedUnit {
	t.Helper()
	units := make([]*unit.WeighedUnit, 0, len(weights))
	for i, v := range weights {
		w, err := kernel.NewWeight(v)
		require.NoError(t, err)
		u, err := unit.NewWeighedUnit(mustID(t, 1), w)
		require.NoError(t, err)
		require.NoError(t, u.SetID(mustID(t, int64(i+1))))
		units = append(units, u)
	}
	return units
}

func TestSizeClassifier_CalculateRanges(t *testing.T) {
	classifier := services.NewSizeClassifier()

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, classifier.CalculateRanges(nil))
		assert.Nil(t, classifier.CalculateRanges(makeUnits(t)))
	})

	t.Run("identical weights degenerate to zero-width ranges", func(t *testing.T) {
		ranges := classifier.CalculateRanges(makeUnits(t, 4.0, 4.0, 4.0))
		require.NotNil(t, ranges)
		for _, r := range []services.SizeRange{ranges.Light, ranges.Medium, ranges.Heavy} {
			assert.InDelta(t, 4.0, r.Min.Float64(), 1e-9)
			assert.InDelta(t, 4.0, r.Max.Float64(), 1e-9)
		}
	})

	t.Run("fewer than three units split the span into numeric thirds", func(t *testing.T) {
		ranges := classifier.CalculateRanges(makeUnits(t, 4.0, 10.0))
		require.NotNil(t, ranges)
		assert.InDelta(t, 4.0, ranges.Light.Min.Float64(), 1e-9)
		assert.InDelta(t, 6.0, ranges.Light.Max.Float64(), 1e-9)
		assert.InDelta(t, 6.0, ranges.Medium.Min.Float64(), 1e-9)
		assert.InDelta(t, 8.0, ranges.Medium.Max.Float64(), 1e-9)
		assert.InDelta(t, 8.0, ranges.Heavy.Min.Float64(), 1e-9)
		assert.InDelta(t, 10.0, ranges.Heavy.Max.Float64(), 1e-9)
	})

	t.Run("six units split into ranked pairs", func(t *testing.T) {
		ranges := classifier.CalculateRanges(makeUnits(t, 5.0, 6.0, 7.0, 8.0, 9.0, 10.0))
		require.NotNil(t, ranges)
		assert.InDelta(t, 5.0, ranges.Light.Min.Float64(), 1e-9)
		assert.InDelta(t, 6.0, ranges.Light.Max.Float64(), 1e-9)
		assert.InDelta(t, 7.0, ranges.Medium.Min.Float64(), 1e-9)
		assert.InDelta(t, 8.0, ranges.Medium.Max.Float64(), 1e-9)
		assert.InDelta(t, 9.0, ranges.Heavy.Min.Float64(), 1e-9)
		assert.InDelta(t, 10.0, ranges.Heavy.Max.Float64(), 1e-9)
	})

	t.Run("remainder favors the earlier groups", func(t *testing.T) {
		// n=4: ceil(4/3)=2 light, ceil(8/3)=3 medium end.
		ranges := classifier.CalculateRanges(makeUnits(t, 5.0, 6.0, 7.0, 8.0))
		require.NotNil(t, ranges)
		assert.InDelta(t, 6.0, ranges.Light.Max.Float64(), 1e-9)
		assert.InDelta(t, 7.0, ranges.Medium.Min.Float64(), 1e-9)
		assert.InDelta(t, 7.0, ranges.Medium.Max.Float64(), 1e-9)
		assert.InDelta(t, 8.0, ranges.Heavy.Min.Float64(), 1e-9)
	})

	t.Run("result is order-independent", func(t *testing.T) {
		weights := []float64{5.0, 6.0, 7.0, 8.0, 9.0, 10.0, 4.2, 6.6}
		want := classifier.CalculateRanges(makeUnits(t, weights...))

		rng := rand.New(rand.NewSource(1))
		for n := 0; n < 10; n++ {
			rng.Shuffle(len(weights), func(i, j int) {
				weights[i], weights[j] = weights[j], weights[i]
			})
			assert.Equal(t, want, classifier.CalculateRanges(makeUnits(t, weights...)))
		}
	})
}

func TestSizeClassifier_Classify(t *testing.T) {
	classifier := services.NewSizeClassifier()
	ranges := classifier.CalculateRanges(makeUnits(t, 5.0, 6.0, 7.0, 8.0, 9.0, 10.0))
	require.NotNil(t, ranges)

	cases := []struct {
		weight float64
		want   order.SizePreference
	}{
		{5.0, order.SizeLight},
		{6.0, order.SizeLight}, // boundary tie resolves to the lighter tier
		{6.5, order.SizeMedium},
		{8.0, order.SizeMedium},
		{8.5, order.SizeHeavy},
		{10.0, order.SizeHeavy},
		{11.0, order.SizeHeavy},
	}
	for _, tc := range cases {
		w, err := kernel.NewWeight(tc.weight)
		require.NoError(t, err)
		assert.Equal(t, tc.want, classifier.Classify(w, *ranges), "weight %.1f", tc.weight)
	}
}

func TestSizeClassifier_FilterBySize(t *testing.T) {
	classifier := services.NewSizeClassifier()
	units := makeUnits(t, 5.0, 6.0, 7.0, 8.0, 9.0, 10.0)
	ranges := classifier.CalculateRanges(units)
	require.NotNil(t, ranges)

	light := classifier.FilterBySize(units, *ranges, order.SizeLight)
	require.Len(t, light, 2)
	assert.InDelta(t, 5.0, light[0].Weight().Float64(), 1e-9)
	assert.InDelta(t, 6.0, light[1].Weight().Float64(), 1e-9)

	heavy := classifier.FilterBySize(units, *ranges, order.SizeHeavy)
	require.Len(t, heavy, 2)
	assert.InDelta(t, 9.0, heavy[0].Weight().Float64(), 1e-9)
}
