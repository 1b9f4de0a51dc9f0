package delivery

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
)

var ErrAdviceIsNotConstructed = errors.New("Advice must be created via NewAdvice constructor")

// Advice tells the warehouse that goods are to be released for a scheduled request.
type Advice struct {
	id            kernel.UUID
	requestID     kernel.UUID
	bookingID     kernel.UUID
	quoteID       kernel.UUID
	warehouseID   kernel.UUID
	status        AdviceStatus
	createdAt     time.Time
	isConstructed bool
}

// NewAdvice issues the advice for a scheduled request.
func NewAdvice(id kernel.UUID, r *Request, now time.Time) (*Advice, error) {
	if err := errors.Join(id.Validate(), r.Validate()); err != nil {
		return nil, err
	}
	if r.Status() != RequestScheduled {
		return nil, illegalMove("delivery request", r.Status(), "issue an advice")
	}
	return &Advice{
		id:            id,
		requestID:     r.ID(),
		bookingID:     r.BookingID(),
		quoteID:       r.QuoteID(),
		warehouseID:   r.WarehouseID(),
		status:        AdviceIssued,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

func RestoreAdvice(
	id, requestID, bookingID, quoteID, warehouseID kernel.UUID,
	status AdviceStatus,
	createdAt time.Time,
) (*Advice, error) {
	if err := errors.Join(
		id.Validate(), requestID.Validate(), bookingID.Validate(), quoteID.Validate(), warehouseID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	return &Advice{
		id:            id,
		requestID:     requestID,
		bookingID:     bookingID,
		quoteID:       quoteID,
		warehouseID:   warehouseID,
		status:        status,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (a *Advice) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAdviceIsNotConstructed
	}
	return nil
}

func (a *Advice) ID() kernel.UUID {
	return a.id
}

func (a *Advice) RequestID() kernel.UUID {
	return a.requestID
}

func (a *Advice) BookingID() kernel.UUID {
	return a.bookingID
}

func (a *Advice) QuoteID() kernel.UUID {
	return a.quoteID
}

func (a *Advice) WarehouseID() kernel.UUID {
	return a.warehouseID
}

func (a *Advice) Status() AdviceStatus {
	return a.status
}

func (a *Advice) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Advice) markOrdered() error {
	if a.status != AdviceIssued {
		return illegalMove("delivery advice", a.status, "issue an order")
	}
	a.status = AdviceOrdered
	return nil
}

// Withdraw retires an issued advice that can no longer be ordered.
func (a *Advice) Withdraw() error {
	if a.status != AdviceIssued {
		return illegalMove("delivery advice", a.status, "withdraw")
	}
	a.status = AdviceWithdrawn
	return nil
}
