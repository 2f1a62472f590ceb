package commands

import (
	"context"
	"errors"

	"farmsale/internal/core/domain/model/invoice"
	"farmsale/internal/core/domain/model/order"
	"farmsale/internal/core/domain/services"
	"farmsale/internal/core/ports"
	"farmsale/internal/pkg/errs"
)

// ErrOrderHasNoUnit is returned when invoicing an order without an assigned
// unit. Only matched orders can be billed.
var ErrOrderHasNoUnit = errors.New("order has no assigned unit to bill")

// InvoiceOrderCommandHandler handles the business logic for invoicing.
//
// The status transition is deliberately the last step: the document is
// rendered and shared first, and only a confirmed share marks the order
// invoiced. A cancelled share dialog rolls everything back and surfaces
// ports.ErrShareCancelled so the caller can skip the transition silently.
type InvoiceOrderCommandHandler struct {
	uowFactory UoWFactory
	generator  ports.DocumentGenerator
	share      ports.ShareGateway
	sequencer  services.InvoiceSequencer
}

// NewInvoiceOrderCommandHandler creates a handler for invoicing operations.
func NewInvoiceOrderCommandHandler(
	uowFactory UoWFactory,
	generator ports.DocumentGenerator,
	share ports.ShareGateway,
) InvoiceOrderCommandHandler {
	return InvoiceOrderCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
		share:      share,
		sequencer:  services.NewInvoiceSequencer(),
	}
}

// Handle renders and shares the invoice, then marks the order invoiced.
func (h *InvoiceOrderCommandHandler) Handle(ctx context.Context, cmd InvoiceOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Fail before rendering anything: re-billing a terminal order must not
	// pop a share dialog first.
	if aggregate.Status() == order.Invoiced {
		return order.ErrOrderIsInvoiced
	}

	doc, err := h.buildDocument(ctx, uow, aggregate)
	if err != nil {
		return err
	}

	location, err := h.generator.Generate(ctx, doc)
	if err != nil {
		return err
	}
	if err = h.share.Share(ctx, location); err != nil {
		return err
	}

	if err = aggregate.Invoice(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildDocument assembles everything the renderer needs: customer, session
// pricing, the billable weight and the next invoice number of the session's
// calendar year.
func (h *InvoiceOrderCommandHandler) buildDocument(
	ctx context.Context, uow UoW, aggregate *order.Order,
) (invoice.Document, error) {
	unitID := aggregate.UnitID()
	if unitID == nil {
		return invoice.Document{}, ErrOrderHasNoUnit
	}

	unitAggregate, err := uow.UnitRepository().Get(ctx, *unitID)
	if err != nil {
		return invoice.Document{}, err
	}

	sessionAggregate, err := uow.SessionRepository().Get(ctx, aggregate.SessionID())
	if err != nil {
		return invoice.Document{}, err
	}

	customerAggregate, err := uow.CustomerRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return invoice.Document{}, err
	}

	settings, err := uow.SettingsRepository().GetInvoiceSettings(ctx)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return invoice.Document{}, err
	}

	year := sessionAggregate.Date().Year()
	invoicedCount, err := uow.OrderRepository().CountInvoicedInYear(ctx, year)
	if err != nil {
		return invoice.Document{}, err
	}

	number, err := h.sequencer.Next(year, invoicedCount)
	if err != nil {
		return invoice.Document{}, err
	}

	billable := unitAggregate.Weight()
	if aggregate.IsHalf() {
		billable = billable.Half()
	}

	return invoice.Document{
		Number:         number,
		CustomerName:   customerAggregate.Name(),
		CustomerPhone:  customerAggregate.Phone(),
		SaleDate:       sessionAggregate.Date(),
		BillableWeight: billable.Float64(),
		PricePerKg:     sessionAggregate.Price(),
		Total:          sessionAggregate.Price().Total(billable),
		IsHalf:         aggregate.IsHalf(),
		Settings:       settings.WithDefaults(),
	}, nil
}
