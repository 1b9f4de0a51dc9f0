package quote_test

import (
	"testing"

	"procurement/internal/core/domain/model/quote"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "warehouse_quote_requested", quote.WarehouseQuoteRequested.String())
	assert.Equal(t, "customer_confirmation_pending", quote.CustomerConfirmationPending.String())
	assert.Equal(t, "unknown", quote.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	for s := quote.Pending; s <= quote.Cancelled; s++ {
		parsed, err := quote.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := quote.ParseStatus("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_CanMoveTo(t *testing.T) {
	tests := []struct {
		from, to quote.Status
		want     bool
	}{
		{quote.Pending, quote.WarehouseQuoteRequested, true},
		{quote.Pending, quote.Processing, false},
		{quote.WarehouseQuoteRequested, quote.WarehouseQuoteRequested, true},
		{quote.WarehouseQuoteReceived, quote.RateConfirmed, true},
		{quote.WarehouseQuoteReceived, quote.Processing, true},
		{quote.RateConfirmed, quote.Processing, true},
		{quote.Processing, quote.Quoted, true},
		{quote.Quoted, quote.BookingConfirmed, true},
		{quote.CustomerConfirmationPending, quote.Quoted, false},
		{quote.BookingConfirmed, quote.BookingConfirmed, true},
		{quote.BookingConfirmed, quote.Pending, false},
		{quote.BookingConfirmed, quote.Rejected, true},
		{quote.BookingConfirmed, quote.Cancelled, false},
		{quote.Processing, quote.Cancelled, true},
		{quote.Rejected, quote.Rejected, false},
		{quote.Cancelled, quote.Pending, false},
		{quote.Unknown, quote.Rejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanMoveTo(tt.to))
		})
	}
}

func TestStatus_RejectFromEveryNonTerminal(t *testing.T) {
	for s := quote.Pending; s <= quote.Cancelled; s++ {
		next, err := s.Reject()
		if s.IsTerminal() {
			require.ErrorIs(t, err, errs.ErrConflict, s.String())
			continue
		}
		require.NoError(t, err, s.String())
		assert.Equal(t, quote.Rejected, next)
	}
}

func TestStatus_MoveTo_IllegalIsConflict(t *testing.T) {
	_, err := quote.Pending.MoveTo(quote.BookingConfirmed)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "pending -> booking_confirmed")
}

func TestParseFlowType(t *testing.T) {
	f, err := quote.ParseFlowType("")
	require.NoError(t, err)
	assert.Equal(t, quote.FlowStandard, f)

	f, err = quote.ParseFlowType("direct")
	require.NoError(t, err)
	assert.Equal(t, quote.FlowDirect, f)

	_, err = quote.ParseFlowType("express")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
