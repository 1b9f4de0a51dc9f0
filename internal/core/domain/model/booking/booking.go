// Package booking holds the confirmed storage engagement spawned from a quote
// and the cargo and carting records that follow it.
package booking

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/pkg/errs"
)

var ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")

// Booking is created exactly once per quote, when the quote enters booking confirmation.
type Booking struct {
	id            kernel.UUID
	quoteID       kernel.UUID
	customerID    kernel.UUID
	warehouseID   kernel.UUID
	status        Status
	startDate     time.Time
	duration      string
	totalAmount   kernel.Money
	createdAt     time.Time
	isConstructed bool
}

// NewBooking spawns a confirmed booking from a booking_confirmed quote. The
// total amount is the quote's final price and the start date is the requested
// start, or now when the customer gave none.
func NewBooking(id kernel.UUID, q *quote.Quote, now time.Time) (*Booking, error) {
	if err := errors.Join(id.Validate(), q.Validate()); err != nil {
		return nil, err
	}
	if q.Status() != quote.BookingConfirmed {
		return nil, errs.NewPreconditionFailedError("booking", "a quote in booking_confirmed")
	}
	if q.WarehouseID() == nil || q.FinalPrice() == nil {
		return nil, errs.NewPreconditionFailedError("booking", "a selected warehouse and a final price")
	}

	start := now.UTC()
	if requested := q.Details().RequestedStart; requested != nil {
		start = requested.UTC()
	}

	return &Booking{
		id:            id,
		quoteID:       q.ID(),
		customerID:    q.CustomerID(),
		warehouseID:   *q.WarehouseID(),
		status:        Confirmed,
		startDate:     start,
		duration:      q.Details().Duration,
		totalAmount:   *q.FinalPrice(),
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreBooking rebuilds a booking from storage.
func RestoreBooking(
	id, quoteID, customerID, warehouseID kernel.UUID,
	status Status,
	startDate time.Time,
	duration string,
	totalAmount kernel.Money,
	createdAt time.Time,
) (*Booking, error) {
	if err := errors.Join(
		id.Validate(), quoteID.Validate(), customerID.Validate(), warehouseID.Validate(),
		status.Validate(), totalAmount.Validate(),
	); err != nil {
		return nil, err
	}
	return &Booking{
		id:            id,
		quoteID:       quoteID,
		customerID:    customerID,
		warehouseID:   warehouseID,
		status:        status,
		startDate:     startDate.UTC(),
		duration:      duration,
		totalAmount:   totalAmount,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

func (b *Booking) ID() kernel.UUID {
	return b.id
}

func (b *Booking) QuoteID() kernel.UUID {
	return b.quoteID
}

func (b *Booking) CustomerID() kernel.UUID {
	return b.customerID
}

func (b *Booking) WarehouseID() kernel.UUID {
	return b.warehouseID
}

func (b *Booking) Status() Status {
	return b.status
}

func (b *Booking) StartDate() time.Time {
	return b.startDate
}

func (b *Booking) Duration() string {
	return b.duration
}

func (b *Booking) TotalAmount() kernel.Money {
	return b.totalAmount
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

// IsOpenForCargo reports whether cargo may still be dispatched under the booking.
func (b *Booking) IsOpenForCargo() bool {
	return b.status == Confirmed || b.status == Active
}

// Cancel is allowed while the booking has not started.
func (b *Booking) Cancel() error {
	if b.status != Pending && b.status != Confirmed {
		return illegalMove("booking", b.status, "cancel")
	}
	b.status = Cancelled
	return nil
}

// Activate marks the booking as in progress once goods move. Repeated
// activation is a no-op.
func (b *Booking) Activate() error {
	switch b.status {
	case Active:
		return nil
	case Confirmed:
		b.status = Active
		return nil
	default:
		return illegalMove("booking", b.status, "activate")
	}
}

// Complete closes the booking once its invoice is paid.
func (b *Booking) Complete() error {
	if b.status != Active {
		return illegalMove("booking", b.status, "complete")
	}
	b.status = Completed
	return nil
}
