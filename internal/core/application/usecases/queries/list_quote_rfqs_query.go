package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrListQuoteRFQsQueryIsNotConstructed = errors.New(
	"ListQuoteRFQsQuery must be created via NewListQuoteRFQsQuery constructor",
)

// ListQuoteRFQsQuery lists the RFQs of a quote with the rates submitted
// against them. Customers never see warehouse rates; a warehouse user only
// sees its own RFQ.
type ListQuoteRFQsQuery struct {
	actor   workflow.Actor
	quoteID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListQuoteRFQsQuery(actor workflow.Actor, quoteID kernel.UUID) (ListQuoteRFQsQuery, error) {
	if err := errors.Join(actor.Validate(), quoteID.Validate()); err != nil {
		return ListQuoteRFQsQuery{}, err
	}
	return ListQuoteRFQsQuery{actor: actor, quoteID: quoteID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListQuoteRFQsQuery) Validate() error {
	return q.guard.Validate(ErrListQuoteRFQsQueryIsNotConstructed)
}

func (q ListQuoteRFQsQuery) Actor() workflow.Actor { return q.actor }
func (q ListQuoteRFQsQuery) QuoteID() kernel.UUID  { return q.quoteID }

type RFQResponse struct {
	ID          kernel.UUID    `json:"id"`
	QuoteID     kernel.UUID    `json:"quoteId"`
	WarehouseID kernel.UUID    `json:"warehouseId"`
	Status      string         `json:"status"`
	ValidUntil  time.Time      `json:"validUntil"`
	Notes       []string       `json:"notes"`
	CreatedAt   time.Time      `json:"createdAt"`
	Rates       []RateResponse `json:"rates"`
}

type RateResponse struct {
	ID        kernel.UUID  `json:"id"`
	RFQID     kernel.UUID  `json:"rfqId"`
	Amount    kernel.Money `json:"amount"`
	Terms     string       `json:"terms,omitempty"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}
