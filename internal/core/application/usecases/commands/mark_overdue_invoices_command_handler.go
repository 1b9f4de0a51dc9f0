package commands

import (
	"context"

	"procurement/internal/core/domain/model/invoice"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/logger"

	"go.uber.org/zap"
)

// MarkOverdueInvoicesCommandHandler flags overdue invoices one transaction at
// a time, each under its quote lock so it cannot race a payment.
type MarkOverdueInvoicesCommandHandler struct {
	uowFactory UoWFactory
	logger     *zap.Logger
}

func NewMarkOverdueInvoicesCommandHandler(uowFactory UoWFactory, log *zap.Logger) MarkOverdueInvoicesCommandHandler {
	return MarkOverdueInvoicesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.Component(log, "invoice-overdue"),
	}
}

// Handle returns the number of invoices marked overdue.
func (h MarkOverdueInvoicesCommandHandler) Handle(ctx context.Context, cmd MarkOverdueInvoicesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	due, err := h.due(ctx, cmd)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, inv := range due {
		changed, markErr := h.mark(ctx, inv.ID(), cmd)
		if markErr != nil {
			h.logger.Warn("invoice not marked overdue",
				zap.String("invoice_id", inv.ID().String()),
				zap.Error(markErr),
			)
			continue
		}
		if changed {
			marked++
		}
	}
	return marked, nil
}

func (h MarkOverdueInvoicesCommandHandler) due(ctx context.Context, cmd MarkOverdueInvoicesCommand) ([]*invoice.Invoice, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.InvoiceRepository().ListDue(ctx, cmd.Now(), cmd.Limit())
}

func (h MarkOverdueInvoicesCommandHandler) mark(ctx context.Context, invoiceID kernel.UUID, cmd MarkOverdueInvoicesCommand) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inv, err := uow.InvoiceRepository().Get(ctx, invoiceID)
	if err != nil {
		return false, err
	}
	if _, _, err = lockBooking(ctx, uow, inv.BookingID(), workflow.SystemActor()); err != nil {
		return false, err
	}
	if inv, err = uow.InvoiceRepository().Get(ctx, invoiceID); err != nil {
		return false, err
	}

	if !inv.MarkOverdue(cmd.Now()) {
		return false, nil
	}
	if err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return false, err
	}
	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
