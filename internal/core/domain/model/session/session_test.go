package session_test

import (
	"testing"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/session"
	"farmsale/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) kernel.SaleDate {
	t.Helper()
	d, err := kernel.NewSaleDate(value)
	require.NoError(t, err)
	return d
}

func mustPrice(t *testing.T, value float64) kernel.Price {
	t.Helper()
	p, err := kernel.NewPrice(value)
	require.NoError(t, err)
	return p
}

func TestNewSession(t *testing.T) {
	t.Run("starts active without id", func(t *testing.T) {
		s, err := session.NewSession(mustDate(t, "2025-12-20"), mustPrice(t, 10))
		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, session.Active, s.Status())
		assert.True(t, s.ID().IsZero())
		assert.Equal(t, "2025-12-20", s.Date().String())
	})

	t.Run("rejects unconstructed date", func(t *testing.T) {
		var d kernel.SaleDate
		_, err := session.NewSession(d, mustPrice(t, 10))
		require.Error(t, err)
	})
}

func TestRestoreSession(t *testing.T) {
	id, err := kernel.NewID(2)
	require.NoError(t, err)

	s, err := session.RestoreSession(id, mustDate(t, "2025-12-20"), mustPrice(t, 10), session.Completed)
	require.NoError(t, err)
	assert.Equal(t, id, s.ID())
	assert.Equal(t, session.Completed, s.Status())

	_, err = session.RestoreSession(id, mustDate(t, "2025-12-20"), mustPrice(t, 10), session.Unknown)
	require.Error(t, err)
}

func TestSession_Update(t *testing.T) {
	s, err := session.NewSession(mustDate(t, "2025-12-20"), mustPrice(t, 10))
	require.NoError(t, err)

	require.NoError(t, s.Update(mustDate(t, "2025-12-21"), mustPrice(t, 11.5), session.Completed))
	assert.Equal(t, "2025-12-21", s.Date().String())
	assert.InDelta(t, 11.5, s.Price().Float64(), 1e-9)
	assert.Equal(t, session.Completed, s.Status())

	// Reopening is allowed.
	require.NoError(t, s.Update(s.Date(), s.Price(), session.Active))
	assert.Equal(t, session.Active, s.Status())

	require.Error(t, s.Update(s.Date(), s.Price(), session.Unknown))
}

func TestStatus(t *testing.T) {
	t.Run("round-trips through string form", func(t *testing.T) {
		for _, status := range []session.Status{session.Active, session.Completed} {
			parsed, err := session.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := session.StatusFromString("archived")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown status is invalid", func(t *testing.T) {
		require.Error(t, session.Unknown.Validate())
		assert.Equal(t, "unknown", session.Unknown.String())
	})
}
