package commands

import (
	"context"

	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/domain/model/workflow"
)

// SubmitRateCommandHandler records a warehouse rate (C6). Only the warehouse
// the RFQ was sent to may answer it, once, before validUntil.
type SubmitRateCommandHandler struct {
	uowFactory NegotiationUoWFactory
	announcer  Announcer
}

func NewSubmitRateCommandHandler(uowFactory NegotiationUoWFactory, announcer Announcer) SubmitRateCommandHandler {
	return SubmitRateCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h SubmitRateCommandHandler) Handle(ctx context.Context, cmd SubmitRateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepRateSubmitted); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, q, err := lockRFQ(ctx, uow, cmd.RFQID(), cmd.Actor())
	if err != nil {
		return err
	}

	now := utcNow()
	if err = r.MarkResponded(now); err != nil {
		return err
	}
	rate, err := rfq.NewRate(cmd.RateID(), r, cmd.Amount(), cmd.Terms(), now)
	if err != nil {
		return err
	}
	if err = q.ReceiveRate(cmd.Actor(), cmd.Terms(), now); err != nil {
		return err
	}

	if err = uow.RateRepository().Add(ctx, rate); err != nil {
		return err
	}
	if err = uow.RFQRepository().Update(ctx, r); err != nil {
		return err
	}
	if err = uow.QuoteRepository().Update(ctx, q); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, workflow.StepRateSubmitted, workflow.ActionSubmit, "Rate: "+cmd.Amount().String()))
	return nil
}
