package ports

import (
	"context"

	"farmsale/internal/core/domain/model/invoice"
)

// SettingsRepository defines the persistence contract for the key-value
// settings table backing the invoice texts.
type SettingsRepository interface {
	// GetInvoiceSettings loads the invoice texts. Missing keys come back as
	// empty fields; callers apply invoice.DefaultSettings via WithDefaults.
	GetInvoiceSettings(ctx context.Context) (invoice.Settings, error)

	// SaveInvoiceSettings upserts all four invoice text keys.
	SaveInvoiceSettings(ctx context.Context, settings invoice.Settings) error
}
