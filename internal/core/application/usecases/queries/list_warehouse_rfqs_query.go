package queries

import (
	"errors"
	"strings"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrListWarehouseRFQsQueryIsNotConstructed = errors.New(
	"ListWarehouseRFQsQuery must be created via NewListWarehouseRFQsQuery constructor",
)

// ListWarehouseRFQsQuery is the inbox of a warehouse user: the RFQs sent to
// the warehouse the actor operates, optionally filtered by status.
type ListWarehouseRFQsQuery struct {
	actor  workflow.Actor
	status string

	guard guard.ConstructorGuard
}

// NewListWarehouseRFQsQuery accepts an empty status for no filtering.
func NewListWarehouseRFQsQuery(actor workflow.Actor, status string) (ListWarehouseRFQsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListWarehouseRFQsQuery{}, err
	}
	status = strings.TrimSpace(status)
	if status != "" {
		if _, err := rfq.ParseStatus(status); err != nil {
			return ListWarehouseRFQsQuery{}, err
		}
	}
	return ListWarehouseRFQsQuery{actor: actor, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListWarehouseRFQsQuery) Validate() error {
	return q.guard.Validate(ErrListWarehouseRFQsQueryIsNotConstructed)
}

func (q ListWarehouseRFQsQuery) Actor() workflow.Actor { return q.actor }
func (q ListWarehouseRFQsQuery) Status() string        { return q.status }

type WarehouseRFQResponse struct {
	ID             kernel.UUID `json:"id"`
	QuoteID        kernel.UUID `json:"quoteId"`
	Status         string      `json:"status"`
	ValidUntil     time.Time   `json:"validUntil"`
	Notes          []string    `json:"notes"`
	SpaceRequired  int         `json:"spaceRequired"`
	Duration       string      `json:"duration"`
	Location       string      `json:"location"`
	GoodsType      string      `json:"goodsType,omitempty"`
	RequestedStart *time.Time  `json:"requestedStart,omitempty"`
	QuoteStep      string      `json:"quoteStep"`
	CreatedAt      time.Time   `json:"createdAt"`
}
