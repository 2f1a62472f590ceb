package unit_test

import (
	"testing"
	"time"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func mustWeight(t *testing.T, v float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(v)
	require.NoError(t, err)
	return w
}

func TestNewWeighedUnit(t *testing.T) {
	t.Run("creates unit weighed now", func(t *testing.T) {
		u, err := unit.NewWeighedUnit(mustID(t, 1), mustWeight(t, 7.4))
		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsZero())
		assert.InDelta(t, 7.4, u.Weight().Float64(), 1e-9)
		assert.WithinDuration(t, time.Now(), u.WeighedAt(), time.Minute)
	})

	t.Run("rejects invalid session and weight", func(t *testing.T) {
		_, err := unit.NewWeighedUnit(0, mustWeight(t, 7.4))
		require.Error(t, err)

		var w kernel.Weight
		_, err = unit.NewWeighedUnit(mustID(t, 1), w)
		require.Error(t, err)
	})
}

func TestRestoreWeighedUnit(t *testing.T) {
	weighedAt := time.Date(2025, 12, 20, 9, 30, 0, 0, time.UTC)
	u, err := unit.RestoreWeighedUnit(mustID(t, 9), mustID(t, 1), mustWeight(t, 7.4), weighedAt)
	require.NoError(t, err)
	assert.Equal(t, mustID(t, 9), u.ID())
	assert.Equal(t, weighedAt, u.WeighedAt())

	_, err = unit.RestoreWeighedUnit(0, mustID(t, 1), mustWeight(t, 7.4), weighedAt)
	require.Error(t, err)
}

func TestWeighedUnit_SetID(t *testing.T) {
	u, err := unit.NewWeighedUnit(mustID(t, 1), mustWeight(t, 7.4))
	require.NoError(t, err)

	require.NoError(t, u.SetID(mustID(t, 9)))
	require.ErrorIs(t, u.SetID(mustID(t, 10)), unit.ErrIDAlreadyAssigned)
}

func TestCommitment_String(t *testing.T) {
	assert.Equal(t, "uncommitted", unit.Uncommitted.String())
	assert.Equal(t, "half-committed", unit.HalfCommitted.String())
	assert.Equal(t, "fully committed", unit.FullyCommitted.String())
}
