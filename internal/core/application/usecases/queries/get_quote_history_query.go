package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrGetQuoteHistoryQueryIsNotConstructed = errors.New(
	"GetQuoteHistoryQuery must be created via NewGetQuoteHistoryQuery constructor",
)

// GetQuoteHistoryQuery returns the audit trail of one quote ordered by sequence.
//
// Example:
//
//	query, err := NewGetQuoteHistoryQuery(actor, quoteID)
//	if err != nil {
//	    return err
//	}
//	events, err := handler.Handle(ctx, query)
//	for _, e := range events {
//	    fmt.Printf("#%d %s -> %s by %s\n", e.Seq, e.FromStep, e.ToStep, e.ActorRole)
//	}
type GetQuoteHistoryQuery struct {
	actor   workflow.Actor
	quoteID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetQuoteHistoryQuery(actor workflow.Actor, quoteID kernel.UUID) (GetQuoteHistoryQuery, error) {
	if err := errors.Join(actor.Validate(), quoteID.Validate()); err != nil {
		return GetQuoteHistoryQuery{}, err
	}
	return GetQuoteHistoryQuery{actor: actor, quoteID: quoteID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetQuoteHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteHistoryQueryIsNotConstructed)
}

func (q GetQuoteHistoryQuery) Actor() workflow.Actor { return q.actor }
func (q GetQuoteHistoryQuery) QuoteID() kernel.UUID  { return q.quoteID }

// QuoteEventResponse is one audit entry. FromStep and FromStatus are empty
// for the creation event.
type QuoteEventResponse struct {
	Seq        int         `json:"seq"`
	FromStep   string      `json:"fromStep,omitempty"`
	ToStep     string      `json:"toStep"`
	FromStatus string      `json:"fromStatus,omitempty"`
	ToStatus   string      `json:"toStatus"`
	Action     string      `json:"action"`
	ActorRole  string      `json:"actorRole"`
	ActorID    kernel.UUID `json:"actorId"`
	Note       string      `json:"note,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
}
