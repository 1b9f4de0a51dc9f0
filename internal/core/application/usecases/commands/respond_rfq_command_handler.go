package commands

import (
	"context"

	"procurement/internal/core/domain/model/workflow"
)

// RespondRFQCommandHandler answers an RFQ without a rate. The RFQ moves to
// responded or cancelled and the quote records the step in its history
// without changing status; no rate is touched.
type RespondRFQCommandHandler struct {
	uowFactory NegotiationUoWFactory
	announcer  Announcer
}

func NewRespondRFQCommandHandler(uowFactory NegotiationUoWFactory, announcer Announcer) RespondRFQCommandHandler {
	return RespondRFQCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h RespondRFQCommandHandler) Handle(ctx context.Context, cmd RespondRFQCommand) error {
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

	r, q, err := lockRFQ(ctx, uow, cmd.RFQID(), cmd.Actor())
	if err != nil {
		return err
	}

	if cmd.Decision() == workflow.ActionAccept {
		err = r.Accept(cmd.Note())
	} else {
		err = r.Reject(cmd.Note())
	}
	if err != nil {
		return err
	}
	if err = q.RecordStep(cmd.Step(), cmd.Decision(), cmd.Actor(), cmd.Note(), utcNow()); err != nil {
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

	h.announcer.Announce(ctx, notice(q, cmd.Step(), cmd.Decision(), cmd.Note()))
	return nil
}
