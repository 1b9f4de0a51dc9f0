// Package bookingrepo persists bookings together with the cargo dispatch and
// carting records that hang off them.
package bookingrepo

import (
	"time"

	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingDTO is the row of the bookings table. A quote has at most one booking.
type BookingDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	QuoteID     uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	WarehouseID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Status      string          `gorm:"not null"`
	StartDate   time.Time       `gorm:"not null"`
	Duration    string          `gorm:"not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt   time.Time       `gorm:"autoCreateTime:false;not null"`
}

func (BookingDTO) TableName() string {
	return "bookings"
}

type CargoDispatchDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Description string    `gorm:"not null"`
	Packages    int       `gorm:"not null"`
	WeightKg    float64   `gorm:"not null"`
	Status      string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false;not null"`
}

func (CargoDispatchDTO) TableName() string {
	return "cargo_dispatches"
}

type CartingDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CargoDispatchID uuid.UUID `gorm:"type:uuid;index;not null"`
	VehicleNumber   string    `gorm:"not null"`
	StagingArea     string    `gorm:"not null"`
	Status          string    `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime:false;not null"`
}

func (CartingDTO) TableName() string {
	return "cartings"
}

func bookingFromDomain(b *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:          b.ID().Bytes(),
		QuoteID:     b.QuoteID().Bytes(),
		CustomerID:  b.CustomerID().Bytes(),
		WarehouseID: b.WarehouseID().Bytes(),
		Status:      b.Status().String(),
		StartDate:   b.StartDate(),
		Duration:    b.Duration(),
		TotalAmount: b.TotalAmount().Decimal(),
		CreatedAt:   b.CreatedAt(),
	}
}

func bookingToDomain(dto BookingDTO) (*booking.Booking, error) {
	ids, err := parseIDs(dto.ID, dto.QuoteID, dto.CustomerID, dto.WarehouseID)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(ids[0], ids[1], ids[2], ids[3], status, dto.StartDate, dto.Duration, amount, dto.CreatedAt)
}

func cargoFromDomain(c *booking.CargoDispatch) CargoDispatchDTO {
	return CargoDispatchDTO{
		ID:          c.ID().Bytes(),
		BookingID:   c.BookingID().Bytes(),
		Description: c.Description(),
		Packages:    c.Packages(),
		WeightKg:    c.WeightKg(),
		Status:      c.Status().String(),
		CreatedAt:   c.CreatedAt(),
	}
}

func cargoToDomain(dto CargoDispatchDTO) (*booking.CargoDispatch, error) {
	ids, err := parseIDs(dto.ID, dto.BookingID)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseCargoStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return booking.RestoreCargoDispatch(ids[0], ids[1], dto.Description, dto.Packages, dto.WeightKg, status, dto.CreatedAt)
}

func cartingFromDomain(c *booking.Carting) CartingDTO {
	return CartingDTO{
		ID:              c.ID().Bytes(),
		BookingID:       c.BookingID().Bytes(),
		CargoDispatchID: c.CargoDispatchID().Bytes(),
		VehicleNumber:   c.VehicleNumber(),
		StagingArea:     c.StagingArea(),
		Status:          c.Status().String(),
		CreatedAt:       c.CreatedAt(),
	}
}

func cartingToDomain(dto CartingDTO) (*booking.Carting, error) {
	ids, err := parseIDs(dto.ID, dto.BookingID, dto.CargoDispatchID)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseCartingStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return booking.RestoreCarting(ids[0], ids[1], ids[2], dto.VehicleNumber, dto.StagingArea, status, dto.CreatedAt)
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
