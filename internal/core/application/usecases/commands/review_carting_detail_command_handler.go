package commands

import (
	"context"

	"procurement/internal/core/domain/model/workflow"
)

// ReviewCartingDetailCommandHandler confirms or rejects carting details. Both
// outcomes go back to the booking's warehouse.
type ReviewCartingDetailCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewReviewCartingDetailCommandHandler(uowFactory UoWFactory, announcer Announcer) ReviewCartingDetailCommandHandler {
	return ReviewCartingDetailCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h ReviewCartingDetailCommandHandler) Handle(ctx context.Context, cmd ReviewCartingDetailCommand) error {
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

	repo := uow.BookingRepository()
	carting, err := repo.GetCarting(ctx, cmd.CartingID())
	if err != nil {
		return err
	}
	b, q, err := lockBooking(ctx, uow, carting.BookingID(), cmd.Actor())
	if err != nil {
		return err
	}
	if carting, err = repo.GetCarting(ctx, cmd.CartingID()); err != nil {
		return err
	}

	if cmd.Decision() == workflow.ActionConfirm {
		err = carting.Confirm()
	} else {
		err = carting.Reject()
	}
	if err != nil {
		return err
	}
	if err = repo.UpdateCarting(ctx, carting); err != nil {
		return err
	}
	if err = recordStep(ctx, uow, q, cmd.Step(), cmd.Decision(), cmd.Actor(), cmd.Note(), utcNow()); err != nil {
		return err
	}
	n, err := warehouseNotice(ctx, uow, q, b.WarehouseID(), cmd.Step(), cmd.Decision(), cmd.Note())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, n)
	return nil
}
