package commands

import (
	"context"
)

// SaveInvoiceSettingsCommandHandler handles persisting the invoice texts.
type SaveInvoiceSettingsCommandHandler struct {
	uowFactory UoWFactory
}

// NewSaveInvoiceSettingsCommandHandler creates a handler for settings saves.
func NewSaveInvoiceSettingsCommandHandler(uowFactory UoWFactory) SaveInvoiceSettingsCommandHandler {
	return SaveInvoiceSettingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle upserts all invoice text keys in one transaction.
func (h *SaveInvoiceSettingsCommandHandler) Handle(ctx context.Context, cmd SaveInvoiceSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SettingsRepository().SaveInvoiceSettings(ctx, cmd.Settings()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
