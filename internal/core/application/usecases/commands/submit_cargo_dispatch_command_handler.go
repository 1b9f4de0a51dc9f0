package commands

import (
	"context"

	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
)

// SubmitCargoDispatchCommandHandler records the customer's cargo dispatch (C21).
// A booking holds at most one cargo dispatch that is not rejected.
type SubmitCargoDispatchCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewSubmitCargoDispatchCommandHandler(uowFactory UoWFactory, announcer Announcer) SubmitCargoDispatchCommandHandler {
	return SubmitCargoDispatchCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h SubmitCargoDispatchCommandHandler) Handle(ctx context.Context, cmd SubmitCargoDispatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepCargoDispatchSubmitted); err != nil {
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

	existing, err := uow.BookingRepository().ListCargo(ctx, b.ID())
	if err != nil {
		return err
	}
	for _, c := range existing {
		if c.Status() != booking.CargoRejected {
			return errs.NewConflictError("cargo dispatch", "booking already has a cargo dispatch")
		}
	}

	now := utcNow()
	cargo, err := booking.NewCargoDispatch(cmd.CargoID(), b, cmd.Description(), cmd.Packages(), cmd.WeightKg(), now)
	if err != nil {
		return err
	}
	if err = uow.BookingRepository().AddCargo(ctx, cargo); err != nil {
		return err
	}
	if err = recordStep(ctx, uow, q, workflow.StepCargoDispatchSubmitted, workflow.ActionSubmit, cmd.Actor(), cargo.Description(), now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, workflow.StepCargoDispatchSubmitted, workflow.ActionSubmit, cargo.Description()))
	return nil
}
