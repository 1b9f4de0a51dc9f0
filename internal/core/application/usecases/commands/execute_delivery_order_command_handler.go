package commands

import (
	"context"

	"procurement/internal/core/domain/model/workflow"
)

// ExecuteDeliveryOrderCommandHandler executes an issued order (C29). The first
// executed order moves its booking to active.
type ExecuteDeliveryOrderCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewExecuteDeliveryOrderCommandHandler(uowFactory UoWFactory, announcer Announcer) ExecuteDeliveryOrderCommandHandler {
	return ExecuteDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h ExecuteDeliveryOrderCommandHandler) Handle(ctx context.Context, cmd ExecuteDeliveryOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepDeliveryOrderExecuted); err != nil {
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

	now := utcNow()
	if err = order.Execute(now); err != nil {
		return err
	}
	if err = b.Activate(); err != nil {
		return err
	}
	if err = repo.UpdateOrder(ctx, order); err != nil {
		return err
	}
	if err = uow.BookingRepository().Update(ctx, b); err != nil {
		return err
	}
	if err = recordStep(ctx, uow, q, workflow.StepDeliveryOrderExecuted, workflow.ActionExecute, cmd.Actor(), cmd.Note(), now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, workflow.StepDeliveryOrderExecuted, workflow.ActionExecute, "goods dispatched"))
	return nil
}
