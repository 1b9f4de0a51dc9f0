package commands

import (
	"context"

	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/core/domain/services"
)

// SelectRateCommandHandler resolves the negotiation of a quote (C9).
// The quote row lock makes concurrent selections of the same quote queue up;
// the second one finds the quote assigned and fails with a Conflict.
type SelectRateCommandHandler struct {
	uowFactory NegotiationUoWFactory
	announcer  Announcer
}

func NewSelectRateCommandHandler(uowFactory NegotiationUoWFactory, announcer Announcer) SelectRateCommandHandler {
	return SelectRateCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h SelectRateCommandHandler) Handle(ctx context.Context, cmd SelectRateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepRateSelected); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rateRepo := uow.RateRepository()
	rfqRepo := uow.RFQRepository()

	chosen, err := rateRepo.Get(ctx, cmd.RateID())
	if err != nil {
		return err
	}
	q, err := lockQuote(ctx, uow.QuoteRepository(), chosen.QuoteID(), cmd.Actor())
	if err != nil {
		return err
	}
	if chosen, err = rateRepo.Get(ctx, cmd.RateID()); err != nil {
		return err
	}

	rates, err := rateRepo.ListByQuote(ctx, q.ID())
	if err != nil {
		return err
	}
	rfqs, err := rfqRepo.ListByQuote(ctx, q.ID())
	if err != nil {
		return err
	}

	selection, err := services.NewRateSelector().Select(q, chosen, rates, rfqs, cmd.Assignee(), cmd.Actor(), utcNow())
	if err != nil {
		return err
	}

	if err = rateRepo.Update(ctx, chosen); err != nil {
		return err
	}
	for _, declined := range selection.Declined {
		if err = rateRepo.Update(ctx, declined); err != nil {
			return err
		}
	}
	for _, closed := range selection.Closed {
		if err = rfqRepo.Update(ctx, closed); err != nil {
			return err
		}
	}
	if err = uow.QuoteRepository().Update(ctx, q); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, workflow.StepRateSelected, workflow.ActionSelect, "Rate: "+chosen.Amount().String()))
	return nil
}
