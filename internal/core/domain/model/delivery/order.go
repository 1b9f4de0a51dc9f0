package delivery

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order instructs the warehouse to release the goods.
type Order struct {
	id            kernel.UUID
	adviceID      kernel.UUID
	bookingID     kernel.UUID
	quoteID       kernel.UUID
	warehouseID   kernel.UUID
	status        OrderStatus
	createdAt     time.Time
	executedAt    *time.Time
	isConstructed bool
}

// NewOrder issues the order for an advice and marks the advice as ordered.
// An advice carries at most one order.
func NewOrder(id kernel.UUID, a *Advice, now time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), a.Validate()); err != nil {
		return nil, err
	}
	if err := a.markOrdered(); err != nil {
		return nil, err
	}
	return &Order{
		id:            id,
		adviceID:      a.ID(),
		bookingID:     a.BookingID(),
		quoteID:       a.QuoteID(),
		warehouseID:   a.WarehouseID(),
		status:        OrderIssued,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

func RestoreOrder(
	id, adviceID, bookingID, quoteID, warehouseID kernel.UUID,
	status OrderStatus,
	createdAt time.Time,
	executedAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(), adviceID.Validate(), bookingID.Validate(), quoteID.Validate(), warehouseID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	return &Order{
		id:            id,
		adviceID:      adviceID,
		bookingID:     bookingID,
		quoteID:       quoteID,
		warehouseID:   warehouseID,
		status:        status,
		createdAt:     createdAt.UTC(),
		executedAt:    executedAt,
		isConstructed: true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) AdviceID() kernel.UUID {
	return o.adviceID
}

func (o *Order) BookingID() kernel.UUID {
	return o.bookingID
}

func (o *Order) QuoteID() kernel.UUID {
	return o.quoteID
}

func (o *Order) WarehouseID() kernel.UUID {
	return o.warehouseID
}

func (o *Order) Status() OrderStatus {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) ExecutedAt() *time.Time {
	return o.executedAt
}

// Execute is taken by the warehouse when the goods leave.
func (o *Order) Execute(now time.Time) error {
	if o.status != OrderIssued {
		return illegalMove("delivery order", o.status, "execute")
	}
	at := now.UTC()
	o.status = OrderExecuted
	o.executedAt = &at
	return nil
}

// EnsureExecuted executes the order unless it already is. It reports whether
// the status changed.
func (o *Order) EnsureExecuted(now time.Time) bool {
	if o.status == OrderExecuted {
		return false
	}
	_ = o.Execute(now)
	return true
}
