package commands

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/core/domain/services"
)

// CreateDeliveryOrderCommandHandler issues the order for an advice (C32).
// An unknown advice is NotFound, an advice that already has its order a Conflict.
type CreateDeliveryOrderCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewCreateDeliveryOrderCommandHandler(uowFactory UoWFactory, announcer Announcer) CreateDeliveryOrderCommandHandler {
	return CreateDeliveryOrderCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h CreateDeliveryOrderCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepDeliveryReviewed); err != nil {
		return err
	}
	return issueDeliveryOrder(ctx, h.uowFactory, h.announcer, cmd.AdviceID(), cmd.OrderID(), cmd.Actor())
}

// issueDeliveryOrder creates the order of an advice in its own transaction and
// announces it to the booking's warehouse.
func issueDeliveryOrder(
	ctx context.Context,
	uowFactory UoWFactory,
	announcer Announcer,
	adviceID, orderID kernel.UUID,
	actor workflow.Actor,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	advice, err := repo.GetAdvice(ctx, adviceID)
	if err != nil {
		return err
	}
	_, q, err := lockBooking(ctx, uow, advice.BookingID(), actor)
	if err != nil {
		return err
	}
	if advice, err = repo.GetAdvice(ctx, adviceID); err != nil {
		return err
	}

	now := utcNow()
	order, err := services.NewDeliveryScheduler().IssueOrder(advice, orderID, now)
	if err != nil {
		return err
	}
	if err = repo.AddOrder(ctx, order); err != nil {
		return err
	}
	if err = repo.UpdateAdvice(ctx, advice); err != nil {
		return err
	}
	if err = recordStep(ctx, uow, q, workflow.StepDeliveryReviewed, workflow.ActionIssue, actor, "delivery order issued", now); err != nil {
		return err
	}
	n, err := warehouseNotice(ctx, uow, q, order.WarehouseID(), workflow.StepDeliveryReviewed, workflow.ActionIssue, "delivery order issued")
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	announcer.Announce(ctx, n)
	return nil
}
