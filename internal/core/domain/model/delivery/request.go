package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Request is the customer's ask to take goods out of storage.
type Request struct {
	id            kernel.UUID
	bookingID     kernel.UUID
	quoteID       kernel.UUID
	warehouseID   kernel.UUID
	destination   string
	preferredDate *time.Time
	notes         string
	status        RequestStatus
	createdAt     time.Time
	isConstructed bool
}

// NewRequest opens a delivery request on a confirmed booking.
func NewRequest(
	id kernel.UUID,
	b *booking.Booking,
	destination string,
	preferredDate *time.Time,
	notes string,
	now time.Time,
) (*Request, error) {
	if err := errors.Join(id.Validate(), b.Validate()); err != nil {
		return nil, err
	}
	if b.Status() != booking.Confirmed {
		return nil, errs.NewConflictErrorWithCause(
			"delivery request", "booking is not confirmed", fmt.Errorf("booking status is %s", b.Status()))
	}
	if strings.TrimSpace(destination) == "" {
		return nil, errs.NewValueIsRequiredError("destination")
	}

	var preferred *time.Time
	if preferredDate != nil {
		utc := preferredDate.UTC()
		preferred = &utc
	}

	return &Request{
		id:            id,
		bookingID:     b.ID(),
		quoteID:       b.QuoteID(),
		warehouseID:   b.WarehouseID(),
		destination:   strings.TrimSpace(destination),
		preferredDate: preferred,
		notes:         notes,
		status:        RequestPending,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

func RestoreRequest(
	id, bookingID, quoteID, warehouseID kernel.UUID,
	destination string,
	preferredDate *time.Time,
	notes string,
	status RequestStatus,
	createdAt time.Time,
) (*Request, error) {
	if err := errors.Join(
		id.Validate(), bookingID.Validate(), quoteID.Validate(), warehouseID.Validate(), status.Validate(),
	); err != nil {
		return nil, err
	}
	return &Request{
		id:            id,
		bookingID:     bookingID,
		quoteID:       quoteID,
		warehouseID:   warehouseID,
		destination:   destination,
		preferredDate: preferredDate,
		notes:         notes,
		status:        status,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) BookingID() kernel.UUID {
	return r.bookingID
}

func (r *Request) QuoteID() kernel.UUID {
	return r.quoteID
}

func (r *Request) WarehouseID() kernel.UUID {
	return r.warehouseID
}

func (r *Request) Destination() string {
	return r.destination
}

func (r *Request) PreferredDate() *time.Time {
	return r.preferredDate
}

func (r *Request) Notes() string {
	return r.notes
}

func (r *Request) Status() RequestStatus {
	return r.status
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// Schedule approves the request. An advice may be issued only for a scheduled request.
func (r *Request) Schedule() error {
	if r.status != RequestPending {
		return illegalMove("delivery request", r.status, "schedule")
	}
	r.status = RequestScheduled
	return nil
}

func (r *Request) Reject() error {
	if r.status != RequestPending {
		return illegalMove("delivery request", r.status, "reject")
	}
	r.status = RequestRejected
	return nil
}
