package document_test

import (
	"context"
	"os"
	"testing"

	"farmsale/internal/adapters/out/document"
	"farmsale/internal/core/domain/model/invoice"
	"farmsale/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(t *testing.T, isHalf bool) invoice.Document {
	t.Helper()

	saleDate, err := kernel.NewSaleDate("2025-12-20")
	require.NoError(t, err)
	price, err := kernel.NewPrice(10)
	require.NoError(t, err)

	weight := 7.5
	total := 75.0
	if isHalf {
		weight = 3.75
		total = 37.5
	}

	return invoice.Document{
		Number:         "25001",
		CustomerName:   "Maier",
		SaleDate:       saleDate,
		BillableWeight: weight,
		PricePerKg:     price,
		Total:          total,
		IsHalf:         isHalf,
		Settings:       invoice.DefaultSettings(),
	}
}

func TestGenerateWritesInvoiceFile(t *testing.T) {
	generator, err := document.NewHTMLInvoiceGenerator(t.TempDir(), document.Seller{
		Name:    "Hofladen Muster",
		Address: "Musterweg 1",
	})
	require.NoError(t, err)

	location, err := generator.Generate(context.Background(), testDocument(t, false))
	require.NoError(t, err)

	content, err := os.ReadFile(location)
	require.NoError(t, err)

	html := string(content)
	assert.Contains(t, html, "25001")
	assert.Contains(t, html, "Fam. Maier")
	assert.Contains(t, html, "20.12.2025")
	assert.Contains(t, html, "7,50")
	assert.Contains(t, html, "75,00")
	assert.Contains(t, html, "Weihnachtspute")
	assert.Contains(t, html, "Hofladen Muster")
	assert.NotContains(t, html, "halbe")
}

func TestGenerateMarksHalfPortion(t *testing.T) {
	generator, err := document.NewHTMLInvoiceGenerator(t.TempDir(), document.Seller{})
	require.NoError(t, err)

	location, err := generator.Generate(context.Background(), testDocument(t, true))
	require.NoError(t, err)

	content, err := os.ReadFile(location)
	require.NoError(t, err)

	html := string(content)
	assert.Contains(t, html, "Weihnachtspute (halbe)")
	assert.Contains(t, html, "1/2")
	assert.Contains(t, html, "3,75")
}
