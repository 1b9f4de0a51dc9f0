package delivery

import (
	"errors"
	"strings"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var ErrReportIsNotConstructed = errors.New("Report must be created via NewReport constructor")

// Report confirms that the goods of an order were handed over.
type Report struct {
	id            kernel.UUID
	orderID       kernel.UUID
	bookingID     kernel.UUID
	quoteID       kernel.UUID
	warehouseID   kernel.UUID
	receivedBy    string
	remarks       string
	deliveredAt   time.Time
	createdAt     time.Time
	isConstructed bool
}

// NewReport files the report for an order and executes the order when the
// warehouse skipped that step.
func NewReport(
	id kernel.UUID,
	o *Order,
	receivedBy, remarks string,
	deliveredAt *time.Time,
	now time.Time,
) (*Report, error) {
	if err := errors.Join(id.Validate(), o.Validate()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(receivedBy) == "" {
		return nil, errs.NewValueIsRequiredError("receivedBy")
	}

	delivered := now.UTC()
	if deliveredAt != nil {
		delivered = deliveredAt.UTC()
	}
	o.EnsureExecuted(now)

	return &Report{
		id:            id,
		orderID:       o.ID(),
		bookingID:     o.BookingID(),
		quoteID:       o.QuoteID(),
		warehouseID:   o.WarehouseID(),
		receivedBy:    strings.TrimSpace(receivedBy),
		remarks:       remarks,
		deliveredAt:   delivered,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

func RestoreReport(
	id, orderID, bookingID, quoteID, warehouseID kernel.UUID,
	receivedBy, remarks string,
	deliveredAt, createdAt time.Time,
) (*Report, error) {
	if err := errors.Join(
		id.Validate(), orderID.Validate(), bookingID.Validate(), quoteID.Validate(), warehouseID.Validate(),
	); err != nil {
		return nil, err
	}
	return &Report{
		id:            id,
		orderID:       orderID,
		bookingID:     bookingID,
		quoteID:       quoteID,
		warehouseID:   warehouseID,
		receivedBy:    receivedBy,
		remarks:       remarks,
		deliveredAt:   deliveredAt.UTC(),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (r *Report) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReportIsNotConstructed
	}
	return nil
}

func (r *Report) ID() kernel.UUID { return r.id }
func (r *Report) OrderID() kernel.UUID { return r.orderID }
func (r *Report) BookingID() kernel.UUID { return r.bookingID }
func (r *Report) QuoteID() kernel.UUID { return r.quoteID }
func (r *Report) WarehouseID() kernel.UUID { return r.warehouseID }
func (r *Report) ReceivedBy() string { return r.receivedBy }
func (r *Report) Remarks() string { return r.remarks }
func (r *Report) DeliveredAt() time.Time { return r.deliveredAt }
func (r *Report) CreatedAt() time.Time { return r.createdAt }
