package services_test

import (
	"testing"

	"farmsale/internal/core/domain/services"
	"farmsale/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceSequencer_Next(t *testing.T) {
	sequencer := services.NewInvoiceSequencer()

	cases := []struct {
		name          string
		year          int
		invoicedCount int64
		want          string
	}{
		{"first invoice of the year", 2025, 0, "25001"},
		{"sequence continues from the count", 2025, 2, "25003"},
		{"sequence restarts with the year", 2026, 0, "26001"},
		{"single-digit year pads to two", 2009, 0, "09001"},
		{"large sequence overflows the padding", 2025, 999, "251000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sequencer.Next(tc.year, tc.invoicedCount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("negative year is rejected", func(t *testing.T) {
		_, err := sequencer.Next(-1, 0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative count is rejected", func(t *testing.T) {
		_, err := sequencer.Next(2025, -1)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
