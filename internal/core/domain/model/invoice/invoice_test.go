package invoice_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/invoice"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func activeBooking(t *testing.T) *booking.Booking {
	t.Helper()
	amount, err := kernel.MoneyFromString("3150.50")
	require.NoError(t, err)
	b, err := booking.RestoreBooking(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		booking.Active, now, "1 month", amount, now,
	)
	require.NoError(t, err)
	return b
}

func draft(t *testing.T) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(kernel.NewUUID(), activeBooking(t), 0, now)
	require.NoError(t, err)
	return inv
}

func TestNewInvoice(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		b := activeBooking(t)

		inv, err := invoice.NewInvoice(kernel.NewUUID(), b, 0, now)

		require.NoError(t, err)
		assert.Equal(t, invoice.Draft, inv.Status())
		assert.Equal(t, "3150.50", inv.Amount().String())
		assert.Equal(t, now.AddDate(0, 0, invoice.DefaultDueDays), inv.DueDate())
		assert.True(t, inv.CustomerID().IsEqual(b.CustomerID()))
	})

	t.Run("custom term", func(t *testing.T) {
		inv, err := invoice.NewInvoice(kernel.NewUUID(), activeBooking(t), 7, now)

		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, 7), inv.DueDate())
	})

	t.Run("term out of range", func(t *testing.T) {
		_, err := invoice.NewInvoice(kernel.NewUUID(), activeBooking(t), -1, now)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		b := activeBooking(t)
		cancelled, err := booking.RestoreBooking(
			b.ID(), b.QuoteID(), b.CustomerID(), b.WarehouseID(), booking.Cancelled,
			now, "1 month", b.TotalAmount(), now)
		require.NoError(t, err)

		_, err = invoice.NewInvoice(kernel.NewUUID(), cancelled, 0, now)

		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestInvoice_ReviewAndPay(t *testing.T) {
	inv := draft(t)

	require.ErrorIs(t, inv.Pay("UTR123", now), errs.ErrConflict)
	require.NoError(t, inv.Approve())
	require.ErrorIs(t, inv.Reject(), errs.ErrConflict)
	require.ErrorIs(t, inv.Pay("  ", now), errs.ErrValueIsRequired)

	require.NoError(t, inv.Pay(" UTR123 ", now))
	assert.Equal(t, invoice.Paid, inv.Status())
	assert.Equal(t, "UTR123", inv.PaymentReference())
	require.NotNil(t, inv.PaidAt())
	require.ErrorIs(t, inv.Pay("UTR124", now), errs.ErrConflict)
}

func TestInvoice_Reject(t *testing.T) {
	inv := draft(t)

	require.NoError(t, inv.Reject())
	assert.Equal(t, invoice.Cancelled, inv.Status())
	require.ErrorIs(t, inv.Approve(), errs.ErrConflict)
}

func TestInvoice_MarkOverdue(t *testing.T) {
	inv := draft(t)
	late := inv.DueDate().Add(time.Minute)

	assert.False(t, inv.MarkOverdue(late), "draft invoices are not overdue")
	require.NoError(t, inv.Approve())
	assert.False(t, inv.MarkOverdue(inv.DueDate()))
	assert.True(t, inv.MarkOverdue(late))
	assert.Equal(t, invoice.Overdue, inv.Status())
	assert.False(t, inv.MarkOverdue(late))

	require.NoError(t, inv.Pay("NEFT-9", late))
	assert.Equal(t, invoice.Paid, inv.Status())
}

func TestParseStatus(t *testing.T) {
	for _, name := range []string{"draft", "sent", "paid", "overdue", "cancelled"} {
		s, err := invoice.ParseStatus(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}
	_, err := invoice.ParseStatus("void")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
