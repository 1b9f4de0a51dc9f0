package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrGetQuoteQueryIsNotConstructed = errors.New("GetQuoteQuery must be created via NewGetQuoteQuery constructor")

// GetQuoteQuery reads one quote with its history as seen by actor.
type GetQuoteQuery struct {
	actor   workflow.Actor
	quoteID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetQuoteQuery(actor workflow.Actor, quoteID kernel.UUID) (GetQuoteQuery, error) {
	if err := errors.Join(actor.Validate(), quoteID.Validate()); err != nil {
		return GetQuoteQuery{}, err
	}
	return GetQuoteQuery{actor: actor, quoteID: quoteID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

func (q GetQuoteQuery) Actor() workflow.Actor { return q.actor }
func (q GetQuoteQuery) QuoteID() kernel.UUID  { return q.quoteID }

type QuoteResponse struct {
	ID             kernel.UUID          `json:"id"`
	CustomerID     kernel.UUID          `json:"customerId"`
	CustomerEmail  string               `json:"customerEmail"`
	SpaceRequired  int                  `json:"spaceRequired"`
	Duration       string               `json:"duration"`
	Location       string               `json:"location"`
	GoodsType      string               `json:"goodsType,omitempty"`
	RequestedStart *time.Time           `json:"requestedStart,omitempty"`
	Status         string               `json:"status"`
	CurrentStep    string               `json:"currentStep"`
	FlowType       string               `json:"flowType"`
	AssignedTo     *kernel.UUID         `json:"assignedTo,omitempty"`
	WarehouseID    *kernel.UUID         `json:"warehouseId,omitempty"`
	FinalPrice     *kernel.Money        `json:"finalPrice,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
	History        []QuoteEventResponse `json:"history"`
}
