package commands

import (
	"context"

	"procurement/internal/core/domain/model/workflow"
)

// AdvanceCargoDispatchCommandHandler lets the booking's warehouse report the
// progress of the goods (C24).
type AdvanceCargoDispatchCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewAdvanceCargoDispatchCommandHandler(uowFactory UoWFactory, announcer Announcer) AdvanceCargoDispatchCommandHandler {
	return AdvanceCargoDispatchCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h AdvanceCargoDispatchCommandHandler) Handle(ctx context.Context, cmd AdvanceCargoDispatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepCargoProcessed); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cargo, err := uow.BookingRepository().GetCargo(ctx, cmd.CargoID())
	if err != nil {
		return err
	}
	_, q, err := lockBooking(ctx, uow, cargo.BookingID(), cmd.Actor())
	if err != nil {
		return err
	}
	if cargo, err = uow.BookingRepository().GetCargo(ctx, cmd.CargoID()); err != nil {
		return err
	}

	if cmd.Action() == workflow.ActionProcess {
		err = cargo.StartProcessing()
	} else {
		err = cargo.Complete()
	}
	if err != nil {
		return err
	}
	if err = uow.BookingRepository().UpdateCargo(ctx, cargo); err != nil {
		return err
	}
	note := "cargo " + cargo.Status().String()
	if err = recordStep(ctx, uow, q, workflow.StepCargoProcessed, cmd.Action(), cmd.Actor(), note, utcNow()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, workflow.StepCargoProcessed, cmd.Action(), note))
	return nil
}
