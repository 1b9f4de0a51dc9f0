package commands

import (
	"context"

	"procurement/internal/core/domain/model/workflow"
)

// CancelBookingCommandHandler cancels a booking that has not started (C20).
type CancelBookingCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewCancelBookingCommandHandler(uowFactory UoWFactory, announcer Announcer) CancelBookingCommandHandler {
	return CancelBookingCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h CancelBookingCommandHandler) Handle(ctx context.Context, cmd CancelBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepBookingCancelled); err != nil {
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

	if err = b.Cancel(); err != nil {
		return err
	}
	if err = uow.BookingRepository().Update(ctx, b); err != nil {
		return err
	}
	if err = recordStep(ctx, uow, q, workflow.StepBookingCancelled, workflow.ActionCancel, cmd.Actor(), cmd.Note(), utcNow()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, workflow.StepBookingCancelled, workflow.ActionCancel, cmd.Note()))
	return nil
}
