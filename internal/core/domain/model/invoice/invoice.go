// Package invoice holds the bill raised for a booking after delivery.
package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// DefaultDueDays is used when the customer does not ask for a payment term.
const DefaultDueDays = 30

var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// Invoice bills the booking's total amount. A booking has at most one
// invoice that is not cancelled.
type Invoice struct {
	id               kernel.UUID
	bookingID        kernel.UUID
	quoteID          kernel.UUID
	customerID       kernel.UUID
	warehouseID      kernel.UUID
	amount           kernel.Money
	dueDate          time.Time
	status           Status
	paymentReference string
	paidAt           *time.Time
	createdAt        time.Time
	isConstructed    bool
}

// NewInvoice drafts an invoice for the booking. dueInDays of zero means DefaultDueDays.
func NewInvoice(id kernel.UUID, b *booking.Booking, dueInDays int, now time.Time) (*Invoice, error) {
	if err := errors.Join(id.Validate(), b.Validate()); err != nil {
		return nil, err
	}
	if b.Status() == booking.Cancelled || b.Status() == booking.Pending {
		return nil, errs.NewConflictErrorWithCause(
			"invoice", "booking cannot be invoiced", fmt.Errorf("booking status is %s", b.Status()))
	}
	if dueInDays < 0 || dueInDays > 365 {
		return nil, errs.NewValueIsOutOfRangeError("dueInDays", dueInDays, 0, 365)
	}
	if dueInDays == 0 {
		dueInDays = DefaultDueDays
	}

	return &Invoice{
		id:            id,
		bookingID:     b.ID(),
		quoteID:       b.QuoteID(),
		customerID:    b.CustomerID(),
		warehouseID:   b.WarehouseID(),
		amount:        b.TotalAmount(),
		dueDate:       now.UTC().AddDate(0, 0, dueInDays),
		status:        Draft,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// Snapshot carries the persisted state of an invoice.
type Snapshot struct {
	ID               kernel.UUID
	BookingID        kernel.UUID
	QuoteID          kernel.UUID
	CustomerID       kernel.UUID
	WarehouseID      kernel.UUID
	Amount           kernel.Money
	DueDate          time.Time
	Status           Status
	PaymentReference string
	PaidAt           *time.Time
	CreatedAt        time.Time
}

func RestoreInvoice(s Snapshot) (*Invoice, error) {
	if err := errors.Join(
		s.ID.Validate(), s.BookingID.Validate(), s.QuoteID.Validate(), s.CustomerID.Validate(),
		s.WarehouseID.Validate(), s.Amount.Validate(), s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	return &Invoice{
		id:               s.ID,
		bookingID:        s.BookingID,
		quoteID:          s.QuoteID,
		customerID:       s.CustomerID,
		warehouseID:      s.WarehouseID,
		amount:           s.Amount,
		dueDate:          s.DueDate.UTC(),
		status:           s.Status,
		paymentReference: s.PaymentReference,
		paidAt:           s.PaidAt,
		createdAt:        s.CreatedAt.UTC(),
		isConstructed:    true,
	}, nil
}

func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

func (i *Invoice) ID() kernel.UUID {
	return i.id
}

func (i *Invoice) BookingID() kernel.UUID {
	return i.bookingID
}

func (i *Invoice) QuoteID() kernel.UUID {
	return i.quoteID
}

func (i *Invoice) CustomerID() kernel.UUID {
	return i.customerID
}

func (i *Invoice) WarehouseID() kernel.UUID {
	return i.warehouseID
}

func (i *Invoice) Amount() kernel.Money {
	return i.amount
}

func (i *Invoice) DueDate() time.Time {
	return i.dueDate
}

func (i *Invoice) Status() Status {
	return i.status
}

func (i *Invoice) PaymentReference() string {
	return i.paymentReference
}

func (i *Invoice) PaidAt() *time.Time {
	return i.paidAt
}

func (i *Invoice) CreatedAt() time.Time {
	return i.createdAt
}

// Approve sends a draft invoice to the customer.
func (i *Invoice) Approve() error {
	if i.status != Draft {
		return i.illegalMove("approve")
	}
	i.status = Sent
	return nil
}

// Reject cancels a draft invoice so the customer can request a new one.
func (i *Invoice) Reject() error {
	if i.status != Draft {
		return i.illegalMove("reject")
	}
	i.status = Cancelled
	return nil
}

// MarkOverdue flags a sent invoice whose due date has passed. It reports
// whether the status changed.
func (i *Invoice) MarkOverdue(now time.Time) bool {
	if i.status != Sent || !now.After(i.dueDate) {
		return false
	}
	i.status = Overdue
	return true
}

// Pay records the customer's payment details.
func (i *Invoice) Pay(reference string, now time.Time) error {
	if strings.TrimSpace(reference) == "" {
		return errs.NewValueIsRequiredError("paymentReference")
	}
	if !i.status.IsPayable() {
		return i.illegalMove("pay")
	}
	at := now.UTC()
	i.status = Paid
	i.paymentReference = strings.TrimSpace(reference)
	i.paidAt = &at
	return nil
}

func (i *Invoice) illegalMove(action string) error {
	return errs.NewConflictErrorWithCause("invoice", "cannot "+action, fmt.Errorf("status is %s", i.status))
}
