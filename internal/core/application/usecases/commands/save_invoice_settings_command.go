package commands

import (
	"errors"

	"farmsale/internal/core/domain/model/invoice"
	"farmsale/internal/pkg/guard"
)

var ErrSaveInvoiceSettingsCommandIsNotConstructed = errors.New(
	"SaveInvoiceSettingsCommand must be created via NewSaveInvoiceSettingsCommand constructor",
)

// SaveInvoiceSettingsCommand represents a request to replace the configurable
// invoice texts. Empty fields fall back to the built-in defaults on save.
type SaveInvoiceSettingsCommand struct { //nolint:recvcheck //using for validation
	settings invoice.Settings

	guard guard.ConstructorGuard
}

// NewSaveInvoiceSettingsCommand creates a command to save the invoice texts.
func NewSaveInvoiceSettingsCommand(settings invoice.Settings) (SaveInvoiceSettingsCommand, error) {
	cmd := SaveInvoiceSettingsCommand{
		settings: settings.WithDefaults(),
		guard:    guard.NewConstructorGuard(),
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveInvoiceSettingsCommand) Validate() error {
	return c.guard.Validate(ErrSaveInvoiceSettingsCommandIsNotConstructed)
}

// Settings returns the texts to persist, defaults already applied.
func (c SaveInvoiceSettingsCommand) Settings() invoice.Settings {
	return c.settings
}
