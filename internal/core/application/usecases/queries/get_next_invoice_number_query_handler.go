package queries

import (
	"context"
	"database/sql"
	"errors"

	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/services"
	"farmsale/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetNextInvoiceNumberQueryHandler previews invoice numbers without issuing
// them. The number only becomes final when the invoicing command commits.
type GetNextInvoiceNumberQueryHandler struct {
	db        *gorm.DB
	sequencer services.InvoiceSequencer
}

// NewGetNextInvoiceNumberQueryHandler creates a handler for number previews.
func NewGetNextInvoiceNumberQueryHandler(db *gorm.DB) GetNextInvoiceNumberQueryHandler {
	return GetNextInvoiceNumberQueryHandler{db: db, sequencer: services.NewInvoiceSequencer()}
}

// Handle counts the orders already invoiced in the session's calendar year
// and formats the number the next invoice would carry.
func (h GetNextInvoiceNumberQueryHandler) Handle(
	ctx context.Context,
	query GetNextInvoiceNumberQuery,
) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var date string
	err := h.db.WithContext(ctx).Raw(`
		SELECT date FROM sessions WHERE id = ?
	`, query.SessionID().Int64()).Row().Scan(&date)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errs.NewObjectNotFoundError("session", query.SessionID())
	}
	if err != nil {
		return "", err
	}

	saleDate, err := kernel.NewSaleDate(date)
	if err != nil {
		return "", err
	}

	var invoicedCount int64
	if err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders o
		JOIN sessions s ON o.session_id = s.id
		WHERE o.status = 'invoiced' AND substr(s.date, 1, 4) = ?
	`, saleDate.String()[:4]).Row().Scan(&invoicedCount); err != nil {
		return "", err
	}

	return h.sequencer.Next(saleDate.Year(), invoicedCount)
}
