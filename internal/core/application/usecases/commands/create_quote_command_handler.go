package commands

import (
	"context"

	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/workflow"
)

// CreateQuoteCommandHandler opens a pending quote at step C1.
type CreateQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	announcer  Announcer
}

func NewCreateQuoteCommandHandler(uowFactory QuoteUoWFactory, announcer Announcer) CreateQuoteCommandHandler {
	return CreateQuoteCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

// Handle authorizes the customer, stores the quote with its creation event
// and notifies purchase support.
func (h CreateQuoteCommandHandler) Handle(ctx context.Context, cmd CreateQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepQuoteCreated); err != nil {
		return err
	}

	q, err := quote.NewQuote(cmd.QuoteID(), cmd.Actor(), cmd.Details(), cmd.Flow(), utcNow())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.QuoteRepository().Add(ctx, q); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, workflow.StepQuoteCreated, workflow.ActionCreate, ""))
	return nil
}
