package ports

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/invoice"
	"procurement/internal/core/domain/model/kernel"
)

// InvoiceRepository persists invoices.
type InvoiceRepository interface {
	Add(ctx context.Context, aggregate *invoice.Invoice) error
	Update(ctx context.Context, aggregate *invoice.Invoice) error
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// ListByBooking returns every invoice of a booking, cancelled ones included.
	ListByBooking(ctx context.Context, bookingID kernel.UUID) ([]*invoice.Invoice, error)

	// ListDue returns sent invoices whose due date is before now.
	ListDue(ctx context.Context, now time.Time, limit int) ([]*invoice.Invoice, error)
}
