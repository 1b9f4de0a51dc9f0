package ports

import (
	"context"

	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/kernel"
)

// BookingRepository persists bookings and their cargo and carting records.
type BookingRepository interface {
	// Add stores a booking. A second booking for the same quote fails with Conflict.
	Add(ctx context.Context, aggregate *booking.Booking) error
	Update(ctx context.Context, aggregate *booking.Booking) error
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// FindByQuote returns the booking of a quote, or nil when there is none.
	FindByQuote(ctx context.Context, quoteID kernel.UUID) (*booking.Booking, error)

	AddCargo(ctx context.Context, cargo *booking.CargoDispatch) error
	UpdateCargo(ctx context.Context, cargo *booking.CargoDispatch) error
	GetCargo(ctx context.Context, id kernel.UUID) (*booking.CargoDispatch, error)
	ListCargo(ctx context.Context, bookingID kernel.UUID) ([]*booking.CargoDispatch, error)

	AddCarting(ctx context.Context, carting *booking.Carting) error
	UpdateCarting(ctx context.Context, carting *booking.Carting) error
	GetCarting(ctx context.Context, id kernel.UUID) (*booking.Carting, error)
	ListCarting(ctx context.Context, cargoDispatchID kernel.UUID) ([]*booking.Carting, error)
}
