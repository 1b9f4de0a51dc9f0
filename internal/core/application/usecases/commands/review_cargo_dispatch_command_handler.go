package commands

import (
	"context"

	"procurement/internal/core/application/notifications"
	"procurement/internal/core/domain/model/workflow"
)

type ReviewCargoDispatchCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewReviewCargoDispatchCommandHandler(uowFactory UoWFactory, announcer Announcer) ReviewCargoDispatchCommandHandler {
	return ReviewCargoDispatchCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

// Handle approves or rejects a submitted cargo dispatch. An approval is
// announced to the booking's warehouse, a rejection to the customer.
func (h ReviewCargoDispatchCommandHandler) Handle(ctx context.Context, cmd ReviewCargoDispatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), cmd.Step()); err != nil {
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
	b, q, err := lockBooking(ctx, uow, cargo.BookingID(), cmd.Actor())
	if err != nil {
		return err
	}
	if cargo, err = uow.BookingRepository().GetCargo(ctx, cmd.CargoID()); err != nil {
		return err
	}

	if cmd.Decision() == workflow.ActionApprove {
		err = cargo.Approve()
	} else {
		err = cargo.Reject()
	}
	if err != nil {
		return err
	}
	if err = uow.BookingRepository().UpdateCargo(ctx, cargo); err != nil {
		return err
	}
	if err = recordStep(ctx, uow, q, cmd.Step(), cmd.Decision(), cmd.Actor(), cmd.Note(), utcNow()); err != nil {
		return err
	}

	var n notifications.Notice
	if cmd.Decision() == workflow.ActionApprove {
		if n, err = warehouseNotice(ctx, uow, q, b.WarehouseID(), cmd.Step(), cmd.Decision(), cmd.Note()); err != nil {
			return err
		}
	} else {
		n = notice(q, cmd.Step(), cmd.Decision(), cmd.Note())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, n)
	return nil
}
