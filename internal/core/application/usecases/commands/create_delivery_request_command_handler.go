package commands

import (
	"context"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
)

// CreateDeliveryRequestCommandHandler opens the delivery chain of a booking (C28).
// A booking holds at most one delivery request that is not rejected.
type CreateDeliveryRequestCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewCreateDeliveryRequestCommandHandler(uowFactory UoWFactory, announcer Announcer) CreateDeliveryRequestCommandHandler {
	return CreateDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h CreateDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepDeliveryRequested); err != nil {
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

	existing, err := uow.DeliveryRepository().ListRequests(ctx, b.ID())
	if err != nil {
		return err
	}
	for _, r := range existing {
		if r.Status() != delivery.RequestRejected {
			return errs.NewConflictError("delivery request", "booking already has a delivery request")
		}
	}

	now := utcNow()
	r, err := delivery.NewRequest(cmd.RequestID(), b, cmd.Destination(), cmd.PreferredDate(), cmd.Notes(), now)
	if err != nil {
		return err
	}
	if err = uow.DeliveryRepository().AddRequest(ctx, r); err != nil {
		return err
	}
	note := "deliver to " + r.Destination()
	if err = recordStep(ctx, uow, q, workflow.StepDeliveryRequested, workflow.ActionRequest, cmd.Actor(), note, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, workflow.StepDeliveryRequested, workflow.ActionRequest, note))
	return nil
}
