package services

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
)

// Selection lists what RateSelector changed besides the quote and the chosen rate.
type Selection struct {
	Declined []*rfq.Rate
	Closed   []*rfq.RFQ
}

// RateSelector resolves the negotiation of a quote to a single warehouse.
//
// Business rules:
//   - the chosen rate must belong to the quote and still be pending
//   - the quote must be unassigned and awaiting rate selection
//   - every other rate of the quote is declined
//   - every other RFQ of the quote that is still open is closed
//   - the quote takes the warehouse and the rate amount as its final price
type RateSelector struct{}

func NewRateSelector() RateSelector {
	return RateSelector{}
}

// Select applies the selection in memory. The caller persists the quote, the
// chosen rate and everything listed in the returned Selection in one transaction.
func (s RateSelector) Select(
	q *quote.Quote,
	chosen *rfq.Rate,
	rates []*rfq.Rate,
	rfqs []*rfq.RFQ,
	assignee kernel.UUID,
	actor workflow.Actor,
	now time.Time,
) (Selection, error) {
	if err := errors.Join(q.Validate(), chosen.Validate()); err != nil {
		return Selection{}, err
	}
	if !chosen.QuoteID().IsEqual(q.ID()) {
		return Selection{}, errs.NewValueIsInvalidError("rateId")
	}
	if chosen.Status() != rfq.RatePending {
		return Selection{}, errs.NewConflictError("rate", "already "+chosen.Status().String())
	}

	if err := q.SelectRate(chosen.WarehouseID(), chosen.Amount(), assignee, actor, now); err != nil {
		return Selection{}, err
	}
	if err := chosen.Accept(); err != nil {
		return Selection{}, err
	}

	var selection Selection
	for _, r := range rates {
		if err := r.Validate(); err != nil {
			return Selection{}, err
		}
		if r.ID().IsEqual(chosen.ID()) || r.Status() == rfq.RateRejected {
			continue
		}
		if err := r.Decline(); err != nil {
			return Selection{}, err
		}
		selection.Declined = append(selection.Declined, r)
	}

	for _, r := range rfqs {
		if err := r.Validate(); err != nil {
			return Selection{}, err
		}
		if r.ID().IsEqual(chosen.RFQID()) {
			continue
		}
		if r.Close("another warehouse was selected") {
			selection.Closed = append(selection.Closed, r)
		}
	}
	return selection, nil
}
