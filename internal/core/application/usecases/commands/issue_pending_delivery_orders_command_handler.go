package commands

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/logger"

	"go.uber.org/zap"
)

// IssuePendingDeliveryOrdersCommandHandler completes the delivery cascade for
// advices whose order was not created. It acts as workflow.SystemActor.
type IssuePendingDeliveryOrdersCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
	logger     *zap.Logger
}

func NewIssuePendingDeliveryOrdersCommandHandler(
	uowFactory UoWFactory,
	announcer Announcer,
	log *zap.Logger,
) IssuePendingDeliveryOrdersCommandHandler {
	return IssuePendingDeliveryOrdersCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
		logger:     logger.Component(log, "delivery-retry"),
	}
}

// Handle returns the number of orders issued. An advice whose booking or
// quote has closed is withdrawn so later passes skip it. Other per-advice
// failures are logged and left for the next pass; only a failed listing is
// returned.
func (h IssuePendingDeliveryOrdersCommandHandler) Handle(ctx context.Context, cmd IssuePendingDeliveryOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	advices, err := h.pending(ctx, cmd.Limit())
	if err != nil {
		return 0, err
	}

	issued := 0
	for _, a := range advices {
		err = issueDeliveryOrder(ctx, h.uowFactory, h.announcer, a.ID(), kernel.NewUUID(), workflow.SystemActor())
		if err == nil {
			issued++
			continue
		}
		if !errors.Is(err, errs.ErrConflict) {
			h.logger.Warn("delivery order retry failed",
				zap.String("advice_id", a.ID().String()),
				zap.Error(err),
			)
			continue
		}

		withdrawn, werr := h.withdrawIfClosed(ctx, a.ID())
		switch {
		case werr != nil:
			h.logger.Warn("delivery advice withdrawal failed",
				zap.String("advice_id", a.ID().String()),
				zap.Error(werr),
			)
		case withdrawn:
			h.logger.Info("delivery advice withdrawn",
				zap.String("advice_id", a.ID().String()),
				zap.NamedError("cause", err),
			)
		default:
			h.logger.Debug("advice already ordered", zap.String("advice_id", a.ID().String()))
		}
	}
	return issued, nil
}

// withdrawIfClosed retires an issued advice whose quote is terminal or whose
// booking was cancelled or completed. It reports whether it did.
func (h IssuePendingDeliveryOrdersCommandHandler) withdrawIfClosed(ctx context.Context, adviceID kernel.UUID) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	advice, err := repo.GetAdvice(ctx, adviceID)
	if err != nil {
		return false, err
	}
	b, q, err := lockBooking(ctx, uow, advice.BookingID(), workflow.SystemActor())
	if err != nil {
		return false, err
	}
	if advice, err = repo.GetAdvice(ctx, adviceID); err != nil {
		return false, err
	}

	if advice.Status() != delivery.AdviceIssued {
		return false, nil
	}
	if !q.Status().IsTerminal() && b.Status() != booking.Cancelled && b.Status() != booking.Completed {
		return false, nil
	}

	if err = advice.Withdraw(); err != nil {
		return false, err
	}
	if err = repo.UpdateAdvice(ctx, advice); err != nil {
		return false, err
	}
	return true, uow.Commit(ctx)
}

func (h IssuePendingDeliveryOrdersCommandHandler) pending(ctx context.Context, limit int) ([]*delivery.Advice, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.DeliveryRepository().ListIssuedAdvices(ctx, limit)
}
