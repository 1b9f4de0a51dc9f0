package commands

import (
	"context"

	"procurement/internal/core/domain/model/workflow"
)

// ReviewInvoiceCommandHandler is the invoice review (C8) by the booking's
// warehouse or by accounts.
type ReviewInvoiceCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewReviewInvoiceCommandHandler(uowFactory UoWFactory, announcer Announcer) ReviewInvoiceCommandHandler {
	return ReviewInvoiceCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h ReviewInvoiceCommandHandler) Handle(ctx context.Context, cmd ReviewInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepInvoiceReviewed); err != nil {
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
	_, q, err := lockBooking(ctx, uow, inv.BookingID(), cmd.Actor())
	if err != nil {
		return err
	}
	if inv, err = uow.InvoiceRepository().Get(ctx, cmd.InvoiceID()); err != nil {
		return err
	}

	if cmd.Decision() == workflow.ActionApprove {
		err = inv.Approve()
	} else {
		err = inv.Reject()
	}
	if err != nil {
		return err
	}
	if err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return err
	}
	if err = recordStep(ctx, uow, q, workflow.StepInvoiceReviewed, cmd.Decision(), cmd.Actor(), cmd.Note(), utcNow()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	detail := "invoice " + inv.Status().String() + ", due " + inv.DueDate().Format("2006-01-02")
	h.announcer.Announce(ctx, notice(q, workflow.StepInvoiceReviewed, cmd.Decision(), detail))
	return nil
}
