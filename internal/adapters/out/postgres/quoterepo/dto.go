// Package quoterepo persists quote aggregates and their append-only workflow
// history.
package quoterepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteDTO is the row of the quotes table. HistoryLength mirrors the number
// of stored workflow events and guards concurrent appends.
type QuoteDTO struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID           `gorm:"type:uuid;index;not null"`
	CustomerEmail  string              `gorm:"not null"`
	SpaceRequired  int                 `gorm:"not null"`
	Duration       string              `gorm:"not null"`
	Location       string              `gorm:"not null"`
	Status         string              `gorm:"index;not null"`
	CurrentStep    string              `gorm:"size:3;not null"`
	FlowType       string              `gorm:"not null"`
	AssignedTo     *uuid.UUID          `gorm:"type:uuid;index"`
	WarehouseID    *uuid.UUID          `gorm:"type:uuid"`
	FinalPrice     decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	HistoryLength  int                 `gorm:"not null"`
	CreatedAt      time.Time           `gorm:"autoCreateTime:false;not null"`
	UpdatedAt      time.Time           `gorm:"autoUpdateTime:false;not null"`
	GoodsType      string
	RequestedStart *time.Time
}

func (QuoteDTO) TableName() string {
	return "quotes"
}

// EventDTO is one row of the workflow_events table, keyed by quote and sequence.
type EventDTO struct {
	QuoteID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey;autoIncrement:false"`
	FromStep   string    `gorm:"size:3"`
	ToStep     string    `gorm:"size:3;not null"`
	FromStatus string
	ToStatus   string    `gorm:"not null"`
	Action     string    `gorm:"not null"`
	ActorRole  string    `gorm:"not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	Note       string
	OccurredAt time.Time `gorm:"not null"`
}

func (EventDTO) TableName() string {
	return "workflow_events"
}

func fromDomain(q *quote.Quote) QuoteDTO {
	d := q.Details()
	dto := QuoteDTO{
		ID:             q.ID().Bytes(),
		CustomerID:     q.CustomerID().Bytes(),
		CustomerEmail:  d.CustomerEmail,
		SpaceRequired:  d.SpaceRequired,
		Duration:       d.Duration,
		Location:       d.Location,
		GoodsType:      d.GoodsType,
		RequestedStart: d.RequestedStart,
		Status:         q.Status().String(),
		CurrentStep:    q.CurrentStep().String(),
		FlowType:       q.FlowType().String(),
		AssignedTo:     q.AssignedTo().Ptr(),
		WarehouseID:    q.WarehouseID().Ptr(),
		HistoryLength:  q.HistoryLength(),
		CreatedAt:      q.CreatedAt(),
		UpdatedAt:      q.UpdatedAt(),
	}
	if price := q.FinalPrice(); price != nil {
		dto.FinalPrice = decimal.NewNullDecimal(price.Decimal())
	}
	return dto
}

func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	assignedTo, err := kernel.UUIDFromPtr(dto.AssignedTo)
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromPtr(dto.WarehouseID)
	if err != nil {
		return nil, err
	}
	status, err := quote.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	step, err := workflow.ParseStep(dto.CurrentStep)
	if err != nil {
		return nil, err
	}
	flow, err := quote.ParseFlowType(dto.FlowType)
	if err != nil {
		return nil, err
	}

	var finalPrice *kernel.Money
	if dto.FinalPrice.Valid {
		price, priceErr := kernel.NewMoney(dto.FinalPrice.Decimal)
		if priceErr != nil {
			return nil, priceErr
		}
		finalPrice = &price
	}

	return quote.RestoreQuote(quote.Snapshot{
		ID:         id,
		CustomerID: customerID,
		Details: quote.Details{
			CustomerEmail:  dto.CustomerEmail,
			SpaceRequired:  dto.SpaceRequired,
			Duration:       dto.Duration,
			Location:       dto.Location,
			GoodsType:      dto.GoodsType,
			RequestedStart: dto.RequestedStart,
		},
		Status:        status,
		CurrentStep:   step,
		FlowType:      flow,
		AssignedTo:    assignedTo,
		WarehouseID:   warehouseID,
		FinalPrice:    finalPrice,
		CreatedAt:     dto.CreatedAt.UTC(),
		UpdatedAt:     dto.UpdatedAt.UTC(),
		HistoryLength: dto.HistoryLength,
	})
}

func eventFromDomain(e workflow.Event) EventDTO {
	return EventDTO{
		QuoteID:    e.QuoteID.Bytes(),
		Seq:        e.Seq,
		FromStep:   e.FromStep.String(),
		ToStep:     e.ToStep.String(),
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		Action:     e.Action.String(),
		ActorRole:  e.ActorRole.String(),
		ActorID:    e.ActorID.Bytes(),
		Note:       e.Note,
		OccurredAt: e.OccurredAt,
	}
}

func eventToDomain(dto EventDTO) (workflow.Event, error) {
	quoteID, err := kernel.UUIDFromBytes(dto.QuoteID[:])
	if err != nil {
		return workflow.Event{}, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return workflow.Event{}, err
	}
	from := workflow.StepNone
	if dto.FromStep != "" {
		if from, err = workflow.ParseStep(dto.FromStep); err != nil {
			return workflow.Event{}, err
		}
	}
	to, err := workflow.ParseStep(dto.ToStep)
	if err != nil {
		return workflow.Event{}, err
	}
	role, err := workflow.ParseRole(dto.ActorRole)
	if err != nil {
		return workflow.Event{}, err
	}

	return workflow.Event{
		QuoteID:    quoteID,
		Seq:        dto.Seq,
		FromStep:   from,
		ToStep:     to,
		FromStatus: dto.FromStatus,
		ToStatus:   dto.ToStatus,
		Action:     workflow.Action(dto.Action),
		ActorRole:  role,
		ActorID:    actorID,
		Note:       dto.Note,
		OccurredAt: dto.OccurredAt.UTC(),
	}, nil
}
