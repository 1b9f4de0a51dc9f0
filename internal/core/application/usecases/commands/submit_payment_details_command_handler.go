package commands

import (
	"context"

	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/workflow"
)

// SubmitPaymentDetailsCommandHandler pays an invoice (C33) and completes its booking.
type SubmitPaymentDetailsCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewSubmitPaymentDetailsCommandHandler(uowFactory UoWFactory, announcer Announcer) SubmitPaymentDetailsCommandHandler {
	return SubmitPaymentDetailsCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h SubmitPaymentDetailsCommandHandler) Handle(ctx context.Context, cmd SubmitPaymentDetailsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepPaymentSubmitted); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inv, err := uow.InvoiceRepository().Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}
	b, q, err := lockBooking(ctx, uow, inv.BookingID(), cmd.Actor())
	if err != nil {
		return err
	}
	if inv, err = uow.InvoiceRepository().Get(ctx, cmd.InvoiceID()); err != nil {
		return err
	}

	now := utcNow()
	if err = inv.Pay(cmd.Reference(), now); err != nil {
		return err
	}
	if b.Status() == booking.Confirmed {
		if err = b.Activate(); err != nil {
			return err
		}
	}
	if err = b.Complete(); err != nil {
		return err
	}
	if err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return err
	}
	if err = uow.BookingRepository().Update(ctx, b); err != nil {
		return err
	}
	note := "payment " + inv.PaymentReference()
	if err = recordStep(ctx, uow, q, workflow.StepPaymentSubmitted, workflow.ActionPay, cmd.Actor(), note, now); err != nil {
		return err
	}
	n, err := warehouseNotice(ctx, uow, q, b.WarehouseID(), workflow.StepPaymentSubmitted, workflow.ActionPay, note)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, n)
	return nil
}
