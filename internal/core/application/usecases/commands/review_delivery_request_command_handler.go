package commands

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/logger"

	"go.uber.org/zap"
)

// ReviewDeliveryRequestCommandHandler approves or rejects a delivery request (C32).
//
// Approval schedules the request and issues its advice in one transaction,
// then issues the delivery order in a second one. A failed order leaves the
// advice issued; IssuePendingDeliveryOrdersCommandHandler picks it up later.
type ReviewDeliveryRequestCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
	logger     *zap.Logger
}

func NewReviewDeliveryRequestCommandHandler(
	uowFactory UoWFactory,
	announcer Announcer,
	log *zap.Logger,
) ReviewDeliveryRequestCommandHandler {
	return ReviewDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
		logger:     logger.Component(log, "delivery"),
	}
}

func (h ReviewDeliveryRequestCommandHandler) Handle(ctx context.Context, cmd ReviewDeliveryRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepDeliveryReviewed); err != nil {
		return err
	}

	if err := h.review(ctx, cmd); err != nil {
		return err
	}
	if cmd.Decision() != workflow.ActionApprove {
		return nil
	}

	if err := issueDeliveryOrder(ctx, h.uowFactory, h.announcer, cmd.AdviceID(), kernel.NewUUID(), cmd.Actor()); err != nil {
		h.logger.Warn("delivery order not issued, left for retry",
			zap.String("advice_id", cmd.AdviceID().String()),
			zap.Error(err),
		)
	}
	return nil
}

func (h ReviewDeliveryRequestCommandHandler) review(ctx context.Context, cmd ReviewDeliveryRequestCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	r, err := repo.GetRequest(ctx, cmd.RequestID())
	if err != nil {
		return err
	}
	_, q, err := lockBooking(ctx, uow, r.BookingID(), cmd.Actor())
	if err != nil {
		return err
	}
	if r, err = repo.GetRequest(ctx, cmd.RequestID()); err != nil {
		return err
	}

	now := utcNow()
	if cmd.Decision() == workflow.ActionApprove {
		advice, scheduleErr := services.NewDeliveryScheduler().Schedule(r, cmd.AdviceID(), now)
		if scheduleErr != nil {
			return scheduleErr
		}
		if err = repo.UpdateRequest(ctx, r); err != nil {
			return err
		}
		if err = repo.AddAdvice(ctx, advice); err != nil {
			return err
		}
	} else {
		if err = r.Reject(); err != nil {
			return err
		}
		if err = repo.UpdateRequest(ctx, r); err != nil {
			return err
		}
	}
	if err = recordStep(ctx, uow, q, workflow.StepDeliveryReviewed, cmd.Decision(), cmd.Actor(), cmd.Note(), now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// the customer hears the decision; the warehouse hears of the order once it is issued
	detail := cmd.Note()
	if detail == "" && cmd.Decision() == workflow.ActionApprove {
		detail = "delivery request approved"
	}
	h.announcer.Announce(ctx, notice(q, workflow.StepDeliveryReviewed, cmd.Decision(), detail))
	return nil
}
