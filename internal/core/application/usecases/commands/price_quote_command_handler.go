package commands

import (
	"context"

	"procurement/internal/core/domain/model/workflow"
)

// PriceQuoteCommandHandler quotes (C11) or revises (C15) the final price.
type PriceQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	announcer  Announcer
}

func NewPriceQuoteCommandHandler(uowFactory QuoteUoWFactory, announcer Announcer) PriceQuoteCommandHandler {
	return PriceQuoteCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h PriceQuoteCommandHandler) Handle(ctx context.Context, cmd PriceQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepPriceQuoted); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	q, err := lockQuote(ctx, uow.QuoteRepository(), cmd.QuoteID(), cmd.Actor())
	if err != nil {
		return err
	}

	step, err := q.Price(cmd.Price(), cmd.Actor(), cmd.Note(), utcNow())
	if err != nil {
		return err
	}
	if err = workflow.Authorize(cmd.Actor(), step); err != nil {
		return err
	}

	if err = uow.QuoteRepository().Update(ctx, q); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, step, workflow.ActionPrice, "Price: "+cmd.Price().String()))
	return nil
}
