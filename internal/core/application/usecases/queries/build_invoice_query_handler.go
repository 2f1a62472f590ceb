package queries

import (
	"context"
	"database/sql"
	"errors"

	"farmsale/internal/core/domain/model/invoice"
	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/services"
	"farmsale/internal/pkg/errs"

	"gorm.io/gorm"
)

// BuildInvoiceQueryHandler assembles invoice document data for previewing.
// The numbers it produces match what the invoicing command would bill, but
// nothing is rendered, shared or persisted.
type BuildInvoiceQueryHandler struct {
	db        *gorm.DB
	sequencer services.InvoiceSequencer
}

// NewBuildInvoiceQueryHandler creates a handler for invoice previews.
func NewBuildInvoiceQueryHandler(db *gorm.DB) BuildInvoiceQueryHandler {
	return BuildInvoiceQueryHandler{db: db, sequencer: services.NewInvoiceSequencer()}
}

// Handle assembles the invoice document for the order: customer and session
// details, the billable weight (half the unit's weight for half orders), the
// total and the next invoice number of the session's calendar year.
func (h BuildInvoiceQueryHandler) Handle(
	ctx context.Context,
	query BuildInvoiceQuery,
) (invoice.Document, error) {
	if err := query.Validate(); err != nil {
		return invoice.Document{}, err
	}

	var (
		customerName  string
		customerPhone string
		date          string
		pricePerKg    float64
		portion       string
		unitWeight    sql.NullFloat64
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT c.name, c.phone, s.date, s.price_per_kg, o.portion_type, t.actual_weight
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		JOIN sessions s ON o.session_id = s.id
		LEFT JOIN turkeys t ON o.turkey_id = t.id
		WHERE o.id = ?
	`, query.OrderID().Int64()).Row().Scan(
		&customerName, &customerPhone, &date, &pricePerKg, &portion, &unitWeight,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return invoice.Document{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return invoice.Document{}, err
	}
	if !unitWeight.Valid {
		return invoice.Document{}, ErrOrderHasNoBillableUnit
	}

	saleDate, err := kernel.NewSaleDate(date)
	if err != nil {
		return invoice.Document{}, err
	}
	price, err := kernel.NewPrice(pricePerKg)
	if err != nil {
		return invoice.Document{}, err
	}
	weight, err := kernel.NewWeight(unitWeight.Float64)
	if err != nil {
		return invoice.Document{}, err
	}

	isHalf := portion == "half"
	billable := weight
	if isHalf {
		billable = billable.Half()
	}

	var invoicedCount int64
	if err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders o
		JOIN sessions s ON o.session_id = s.id
		WHERE o.status = 'invoiced' AND substr(s.date, 1, 4) = ?
	`, saleDate.String()[:4]).Row().Scan(&invoicedCount); err != nil {
		return invoice.Document{}, err
	}

	number, err := h.sequencer.Next(saleDate.Year(), invoicedCount)
	if err != nil {
		return invoice.Document{}, err
	}

	settings, err := NewGetInvoiceSettingsQueryHandler(h.db).
		Handle(ctx, NewGetInvoiceSettingsQuery())
	if err != nil {
		return invoice.Document{}, err
	}

	return invoice.Document{
		Number:         number,
		CustomerName:   customerName,
		CustomerPhone:  customerPhone,
		SaleDate:       saleDate,
		BillableWeight: billable.Float64(),
		PricePerKg:     price,
		Total:          price.Total(billable),
		IsHalf:         isHalf,
		Settings:       settings,
	}, nil
}
