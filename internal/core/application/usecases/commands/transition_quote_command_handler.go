package commands

import (
	"context"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/workflow"
)

// TransitionQuoteCommandHandler applies a step to a quote. Entering booking
// confirmation (C17/C19) spawns the quote's booking unless it already exists;
// this is the only place a booking is created.
type TransitionQuoteCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewTransitionQuoteCommandHandler(uowFactory UoWFactory, announcer Announcer) TransitionQuoteCommandHandler {
	return TransitionQuoteCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

// Handle authorizes the step against the gate before opening the transaction,
// then locks the quote, applies the step and stores the quote, its history
// event and the spawned booking together.
func (h TransitionQuoteCommandHandler) Handle(ctx context.Context, cmd TransitionQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), cmd.NextStep()); err != nil {
		return err
	}

	q, err := runTransition(ctx, h.uowFactory, cmd.Actor(), cmd.QuoteID(), func(*quote.Quote) (workflow.Step, workflow.Action, error) {
		return cmd.NextStep(), cmd.Action(), nil
	}, cmd.Note())
	if err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, q.CurrentStep(), cmd.Action(), cmd.Note()))
	return nil
}

// stepResolver picks the step once the quote is locked.
type stepResolver func(q *quote.Quote) (workflow.Step, workflow.Action, error)

func runTransition(
	ctx context.Context,
	uowFactory UoWFactory,
	actor workflow.Actor,
	quoteID kernel.UUID,
	resolve stepResolver,
	note string,
) (*quote.Quote, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	q, err := lockQuote(ctx, uow.QuoteRepository(), quoteID, actor)
	if err != nil {
		return nil, err
	}

	step, action, err := resolve(q)
	if err != nil {
		return nil, err
	}
	if err = workflow.Authorize(actor, step); err != nil {
		return nil, err
	}
	if actor.Role() == workflow.RoleWarehouse {
		if err = authorizeQuoteWarehouse(ctx, uow, q, actor); err != nil {
			return nil, err
		}
	}

	at := utcNow()
	if err = q.Transition(step, action, actor, note, at); err != nil {
		return nil, err
	}

	if quote.IsBookingConfirmationStep(step) {
		if err = spawnBooking(ctx, uow, q, at); err != nil {
			return nil, err
		}
	}

	if err = uow.QuoteRepository().Update(ctx, q); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return q, nil
}

// spawnBooking creates the quote's booking when none exists yet. The unique
// index on bookings.quote_id turns a concurrent duplicate into a Conflict.
func spawnBooking(ctx context.Context, uow UoW, q *quote.Quote, at time.Time) error {
	existing, err := uow.BookingRepository().FindByQuote(ctx, q.ID())
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	b, err := booking.NewBooking(kernel.NewUUID(), q, at)
	if err != nil {
		return err
	}
	return uow.BookingRepository().Add(ctx, b)
}

// authorizeQuoteWarehouse requires a warehouse user to be the selected
// warehouse of the quote or, before selection, to hold an open RFQ for it.
func authorizeQuoteWarehouse(ctx context.Context, uow UoW, q *quote.Quote, actor workflow.Actor) error {
	if selected := q.WarehouseID(); selected != nil {
		if actor.OperatesWarehouse(*selected) {
			return nil
		}
		return fmt.Errorf("quote %s: %w", q.ID().String(), workflow.NewWarehouseScopeError(actor.Role()))
	}

	rfqs, err := uow.RFQRepository().ListByQuote(ctx, q.ID())
	if err != nil {
		return err
	}
	for _, r := range rfqs {
		if actor.OperatesWarehouse(r.WarehouseID()) && r.Status().IsActive() {
			return nil
		}
	}
	return fmt.Errorf("quote %s: %w", q.ID().String(), workflow.NewWarehouseScopeError(actor.Role()))
}
