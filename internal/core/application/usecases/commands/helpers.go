package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"procurement/internal/core/application/notifications"
	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

// lockQuote loads the quote with a row lock and checks that a customer actor owns it.
func lockQuote(
	ctx context.Context,
	repo ports.QuoteRepository,
	quoteID kernel.UUID,
	actor workflow.Actor,
) (*quote.Quote, error) {
	q, err := repo.GetForUpdate(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if err = actor.AuthorizeOwner(q.CustomerID()); err != nil {
		return nil, err
	}
	return q, nil
}

// lockBooking loads a booking, locks its quote and checks the actor's scope:
// a customer must own the booking and a warehouse user must operate its warehouse.
func lockBooking(
	ctx context.Context,
	uow UoW,
	bookingID kernel.UUID,
	actor workflow.Actor,
) (*booking.Booking, *quote.Quote, error) {
	b, err := uow.BookingRepository().Get(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	q, err := lockQuote(ctx, uow.QuoteRepository(), b.QuoteID(), actor)
	if err != nil {
		return nil, nil, err
	}
	if err = authorizeWarehouseScope(actor, b.WarehouseID()); err != nil {
		return nil, nil, err
	}
	// re-read under the quote lock
	b, err = uow.BookingRepository().Get(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	return b, q, nil
}

type rfqScope interface {
	QuoteRepoFactory
	RFQRepoFactory
}

// lockRFQ loads an RFQ for the warehouse it was sent to, locks its quote and
// re-reads the RFQ under that lock.
func lockRFQ(
	ctx context.Context,
	uow rfqScope,
	rfqID kernel.UUID,
	actor workflow.Actor,
) (*rfq.RFQ, *quote.Quote, error) {
	r, err := uow.RFQRepository().Get(ctx, rfqID)
	if err != nil {
		return nil, nil, err
	}
	if err = actor.AuthorizeWarehouse(r.WarehouseID()); err != nil {
		return nil, nil, err
	}
	q, err := uow.QuoteRepository().GetForUpdate(ctx, r.QuoteID())
	if err != nil {
		return nil, nil, err
	}
	r, err = uow.RFQRepository().Get(ctx, rfqID)
	if err != nil {
		return nil, nil, err
	}
	return r, q, nil
}

func authorizeWarehouseScope(actor workflow.Actor, warehouseID kernel.UUID) error {
	if actor.Role() != workflow.RoleWarehouse {
		return nil
	}
	return actor.AuthorizeWarehouse(warehouseID)
}

func notice(q *quote.Quote, step workflow.Step, action workflow.Action, detail string) notifications.Notice {
	return notifications.Notice{
		QuoteID:       q.ID(),
		Step:          step,
		Action:        action,
		CustomerEmail: q.Details().CustomerEmail,
		Detail:        detail,
	}
}

// recordStep appends the cascade step to the quote history and stores the quote.
func recordStep(
	ctx context.Context,
	uow UoW,
	q *quote.Quote,
	step workflow.Step,
	action workflow.Action,
	actor workflow.Actor,
	note string,
	at time.Time,
) error {
	if err := q.RecordStep(step, action, actor, note, at); err != nil {
		return err
	}
	return uow.QuoteRepository().Update(ctx, q)
}

// warehouseNotice is a notice that also reaches the contact of warehouseID.
func warehouseNotice(
	ctx context.Context,
	uow UoW,
	q *quote.Quote,
	warehouseID kernel.UUID,
	step workflow.Step,
	action workflow.Action,
	detail string,
) (notifications.Notice, error) {
	w, err := uow.WarehouseRepository().Get(ctx, warehouseID)
	if err != nil {
		return notifications.Notice{}, err
	}
	n := notice(q, step, action, detail)
	n.WarehouseEmail = w.ContactEmail()
	return n, nil
}

// checkDecision validates a review decision against the allowed actions.
func checkDecision(decision workflow.Action, allowed ...workflow.Action) error {
	if slices.Contains(allowed, decision) {
		return nil
	}
	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		names = append(names, a.String())
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"action",
		fmt.Errorf("%q is not one of %s", decision, strings.Join(names, ", ")),
	)
}
