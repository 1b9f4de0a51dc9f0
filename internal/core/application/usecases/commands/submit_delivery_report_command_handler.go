package commands

import (
	"context"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
)

// SubmitDeliveryReportCommandHandler files the delivery report (C30). An order
// the warehouse never executed is executed together with the report.
type SubmitDeliveryReportCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewSubmitDeliveryReportCommandHandler(uowFactory UoWFactory, announcer Announcer) SubmitDeliveryReportCommandHandler {
	return SubmitDeliveryReportCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h SubmitDeliveryReportCommandHandler) Handle(ctx context.Context, cmd SubmitDeliveryReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepDeliveryReportSubmitted); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	order, err := repo.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	b, q, err := lockBooking(ctx, uow, order.BookingID(), cmd.Actor())
	if err != nil {
		return err
	}
	if order, err = repo.GetOrder(ctx, cmd.OrderID()); err != nil {
		return err
	}

	existing, err := repo.FindReportByOrder(ctx, order.ID())
	if err != nil {
		return err
	}
	if existing != nil {
		return errs.NewConflictError("delivery report", "order already has a report")
	}

	now := utcNow()
	before := order.Status()
	report, err := delivery.NewReport(cmd.ReportID(), order, cmd.ReceivedBy(), cmd.Remarks(), cmd.DeliveredAt(), now)
	if err != nil {
		return err
	}
	if order.Status() != before {
		if err = repo.UpdateOrder(ctx, order); err != nil {
			return err
		}
		if err = b.Activate(); err != nil {
			return err
		}
		if err = uow.BookingRepository().Update(ctx, b); err != nil {
			return err
		}
	}
	if err = repo.AddReport(ctx, report); err != nil {
		return err
	}
	note := "received by " + report.ReceivedBy()
	if err = recordStep(ctx, uow, q, workflow.StepDeliveryReportSubmitted, workflow.ActionSubmit, cmd.Actor(), note, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, workflow.StepDeliveryReportSubmitted, workflow.ActionSubmit, note))
	return nil
}
