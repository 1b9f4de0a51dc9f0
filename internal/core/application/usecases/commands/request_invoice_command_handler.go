package commands

import (
	"context"

	"procurement/internal/core/domain/model/invoice"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
)

// RequestInvoiceCommandHandler drafts the invoice of a booking (C31). The
// booking needs a delivery report and at most one invoice may be live.
type RequestInvoiceCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewRequestInvoiceCommandHandler(uowFactory UoWFactory, announcer Announcer) RequestInvoiceCommandHandler {
	return RequestInvoiceCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h RequestInvoiceCommandHandler) Handle(ctx context.Context, cmd RequestInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepInvoiceRequested); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	b, q, err := lockBooking(ctx, uow, cmd.BookingID(), cmd.Actor())
	if err != nil {
		return err
	}

	delivered, err := uow.DeliveryRepository().HasReportForBooking(ctx, b.ID())
	if err != nil {
		return err
	}
	if !delivered {
		return errs.NewPreconditionFailedError("invoice", "a delivery report for the booking")
	}

	invoices, err := uow.InvoiceRepository().ListByBooking(ctx, b.ID())
	if err != nil {
		return err
	}
	for _, existing := range invoices {
		if existing.Status() != invoice.Cancelled {
			return errs.NewConflictError("invoice", "booking already has an invoice")
		}
	}

	now := utcNow()
	inv, err := invoice.NewInvoice(cmd.InvoiceID(), b, cmd.DueInDays(), now)
	if err != nil {
		return err
	}
	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return err
	}
	note := "amount " + inv.Amount().String()
	if err = recordStep(ctx, uow, q, workflow.StepInvoiceRequested, workflow.ActionRequest, cmd.Actor(), note, now); err != nil {
		return err
	}
	n, err := warehouseNotice(ctx, uow, q, b.WarehouseID(), workflow.StepInvoiceRequested, workflow.ActionRequest, note)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, n)
	return nil
}
