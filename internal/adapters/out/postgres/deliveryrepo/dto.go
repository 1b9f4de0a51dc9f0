// Package deliveryrepo persists the delivery chain: requests, advices,
// orders and reports. Each stage row is unique per predecessor.
package deliveryrepo

import (
	"time"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type RequestDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID     uuid.UUID `gorm:"type:uuid;index;not null"`
	QuoteID       uuid.UUID `gorm:"type:uuid;not null"`
	WarehouseID   uuid.UUID `gorm:"type:uuid;not null"`
	Destination   string    `gorm:"not null"`
	Status        string    `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false;not null"`
	PreferredDate *time.Time
	Notes         string
}

func (RequestDTO) TableName() string {
	return "delivery_requests"
}

type AdviceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	BookingID   uuid.UUID `gorm:"type:uuid;index;not null"`
	QuoteID     uuid.UUID `gorm:"type:uuid;not null"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null"`
	Status      string    `gorm:"index;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false;not null"`
}

func (AdviceDTO) TableName() string {
	return "delivery_advices"
}

type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AdviceID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	BookingID   uuid.UUID `gorm:"type:uuid;index;not null"`
	QuoteID     uuid.UUID `gorm:"type:uuid;not null"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null"`
	Status      string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false;not null"`
	ExecutedAt  *time.Time
}

func (OrderDTO) TableName() string {
	return "delivery_orders"
}

type ReportDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	BookingID   uuid.UUID `gorm:"type:uuid;index;not null"`
	QuoteID     uuid.UUID `gorm:"type:uuid;not null"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null"`
	ReceivedBy  string    `gorm:"not null"`
	DeliveredAt time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false;not null"`
	Remarks     string
}

func (ReportDTO) TableName() string {
	return "delivery_reports"
}

func requestFromDomain(r *delivery.Request) RequestDTO {
	return RequestDTO{
		ID:            r.ID().Bytes(),
		BookingID:     r.BookingID().Bytes(),
		QuoteID:       r.QuoteID().Bytes(),
		WarehouseID:   r.WarehouseID().Bytes(),
		Destination:   r.Destination(),
		Status:        r.Status().String(),
		CreatedAt:     r.CreatedAt(),
		PreferredDate: r.PreferredDate(),
		Notes:         r.Notes(),
	}
}

func requestToDomain(dto RequestDTO) (*delivery.Request, error) {
	ids, err := parseIDs(dto.ID, dto.BookingID, dto.QuoteID, dto.WarehouseID)
	if err != nil {
		return nil, err
	}
	status, err := delivery.ParseRequestStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreRequest(
		ids[0], ids[1], ids[2], ids[3],
		dto.Destination, dto.PreferredDate, dto.Notes, status, dto.CreatedAt,
	)
}

func adviceFromDomain(a *delivery.Advice) AdviceDTO {
	return AdviceDTO{
		ID:          a.ID().Bytes(),
		RequestID:   a.RequestID().Bytes(),
		BookingID:   a.BookingID().Bytes(),
		QuoteID:     a.QuoteID().Bytes(),
		WarehouseID: a.WarehouseID().Bytes(),
		Status:      a.Status().String(),
		CreatedAt:   a.CreatedAt(),
	}
}

func adviceToDomain(dto AdviceDTO) (*delivery.Advice, error) {
	ids, err := parseIDs(dto.ID, dto.RequestID, dto.BookingID, dto.QuoteID, dto.WarehouseID)
	if err != nil {
		return nil, err
	}
	status, err := delivery.ParseAdviceStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreAdvice(ids[0], ids[1], ids[2], ids[3], ids[4], status, dto.CreatedAt)
}

func orderFromDomain(o *delivery.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID().Bytes(),
		AdviceID:    o.AdviceID().Bytes(),
		BookingID:   o.BookingID().Bytes(),
		QuoteID:     o.QuoteID().Bytes(),
		WarehouseID: o.WarehouseID().Bytes(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
		ExecutedAt:  o.ExecutedAt(),
	}
}

func orderToDomain(dto OrderDTO) (*delivery.Order, error) {
	ids, err := parseIDs(dto.ID, dto.AdviceID, dto.BookingID, dto.QuoteID, dto.WarehouseID)
	if err != nil {
		return nil, err
	}
	status, err := delivery.ParseOrderStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var executedAt *time.Time
	if dto.ExecutedAt != nil {
		at := dto.ExecutedAt.UTC()
		executedAt = &at
	}

	return delivery.RestoreOrder(ids[0], ids[1], ids[2], ids[3], ids[4], status, dto.CreatedAt, executedAt)
}

func reportFromDomain(r *delivery.Report) ReportDTO {
	return ReportDTO{
		ID:          r.ID().Bytes(),
		OrderID:     r.OrderID().Bytes(),
		BookingID:   r.BookingID().Bytes(),
		QuoteID:     r.QuoteID().Bytes(),
		WarehouseID: r.WarehouseID().Bytes(),
		ReceivedBy:  r.ReceivedBy(),
		DeliveredAt: r.DeliveredAt(),
		CreatedAt:   r.CreatedAt(),
		Remarks:     r.Remarks(),
	}
}

func reportToDomain(dto ReportDTO) (*delivery.Report, error) {
	ids, err := parseIDs(dto.ID, dto.OrderID, dto.BookingID, dto.QuoteID, dto.WarehouseID)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreReport(
		ids[0], ids[1], ids[2], ids[3], ids[4],
		dto.ReceivedBy, dto.Remarks, dto.DeliveredAt, dto.CreatedAt,
	)
}

func parseIDs(raw ...uuid.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
