package commands

import (
	"context"

	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
)

// SubmitCartingDetailCommandHandler records carting for a cargo dispatch (C25).
// A cargo dispatch holds at most one carting detail that is not rejected.
type SubmitCartingDetailCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewSubmitCartingDetailCommandHandler(uowFactory UoWFactory, announcer Announcer) SubmitCartingDetailCommandHandler {
	return SubmitCartingDetailCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h SubmitCartingDetailCommandHandler) Handle(ctx context.Context, cmd SubmitCartingDetailCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepCartingSubmitted); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BookingRepository()
	cargo, err := repo.GetCargo(ctx, cmd.CargoID())
	if err != nil {
		return err
	}
	_, q, err := lockBooking(ctx, uow, cargo.BookingID(), cmd.Actor())
	if err != nil {
		return err
	}
	if cargo, err = repo.GetCargo(ctx, cmd.CargoID()); err != nil {
		return err
	}

	existing, err := repo.ListCarting(ctx, cargo.ID())
	if err != nil {
		return err
	}
	for _, c := range existing {
		if c.Status() != booking.CartingRejected {
			return errs.NewConflictError("carting", "cargo dispatch already has carting details")
		}
	}

	now := utcNow()
	carting, err := booking.NewCarting(cmd.CartingID(), cargo, cmd.VehicleNumber(), cmd.StagingArea(), now)
	if err != nil {
		return err
	}
	if err = repo.AddCarting(ctx, carting); err != nil {
		return err
	}
	note := "vehicle " + carting.VehicleNumber()
	if err = recordStep(ctx, uow, q, workflow.StepCartingSubmitted, workflow.ActionSubmit, cmd.Actor(), note, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, workflow.StepCartingSubmitted, workflow.ActionSubmit, note))
	return nil
}
