package queries

import (
	"context"

	"farmsale/internal/core/domain/model/invoice"

	"gorm.io/gorm"
)

// GetInvoiceSettingsQueryHandler reads the invoice texts from the settings
// table.
type GetInvoiceSettingsQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceSettingsQueryHandler creates a handler for settings queries.
func NewGetInvoiceSettingsQueryHandler(db *gorm.DB) GetInvoiceSettingsQueryHandler {
	return GetInvoiceSettingsQueryHandler{db: db}
}

// Handle returns the configured invoice texts with defaults filled in for
// missing keys, so callers always get a complete set.
func (h GetInvoiceSettingsQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceSettingsQuery,
) (invoice.Settings, error) {
	if err := query.Validate(); err != nil {
		return invoice.Settings{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT key, value FROM settings
	`).Rows()
	if err != nil {
		return invoice.Settings{}, err
	}
	defer rows.Close()

	var settings invoice.Settings
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return invoice.Settings{}, err
		}
		switch key {
		case invoice.KeyProductName:
			settings.ProductName = value
		case invoice.KeyFooterNote:
			settings.FooterNote = value
		case invoice.KeyClosingText:
			settings.ClosingText = value
		case invoice.KeyThanksText:
			settings.ThanksText = value
		}
	}
	if err = rows.Err(); err != nil {
		return invoice.Settings{}, err
	}

	return settings.WithDefaults(), nil
}
