package commands_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/invoice"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/domain/model/warehouse"
	"procurement/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role workflow.Role) workflow.Actor {
	t.Helper()
	var wid *kernel.UUID
	if role == workflow.RoleWarehouse {
		id := kernel.NewUUID()
		wid = &id
	}
	a, err := workflow.NewActor(kernel.NewUUID(), role, string(role)+"@example.com", wid)
	require.NoError(t, err)
	return a
}

func warehouseActor(t *testing.T, warehouseID kernel.UUID) workflow.Actor {
	t.Helper()
	a, err := workflow.NewActor(kernel.NewUUID(), workflow.RoleWarehouse, "ops@warehouse.example.com", &warehouseID)
	require.NoError(t, err)
	return a
}

func customerActor(t *testing.T, customerID kernel.UUID) workflow.Actor {
	t.Helper()
	a, err := workflow.NewActor(customerID, workflow.RoleCustomer, "buyer@example.com", nil)
	require.NoError(t, err)
	return a
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func quoteDetails() quote.Details {
	return quote.Details{
		CustomerEmail: "buyer@example.com",
		SpaceRequired: 500,
		Duration:      "3 months",
		Location:      "Chennai",
		GoodsType:     "textiles",
	}
}

// quoteAt restores a quote of customerID in the given status and step.
// Statuses from processing onwards carry a selected warehouse and a price.
func quoteAt(t *testing.T, customerID kernel.UUID, status quote.Status, step workflow.Step, flow quote.FlowType) *quote.Quote {
	t.Helper()
	s := quote.Snapshot{
		ID:            kernel.NewUUID(),
		CustomerID:    customerID,
		Details:       quoteDetails(),
		Status:        status,
		CurrentStep:   step,
		FlowType:      flow,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
		HistoryLength: 4,
	}
	switch status {
	case quote.Processing, quote.Quoted, quote.CustomerConfirmationPending, quote.BookingConfirmed:
		wid := kernel.NewUUID()
		price := money(t, "2400")
		assignee := kernel.NewUUID()
		s.WarehouseID = &wid
		s.FinalPrice = &price
		s.AssignedTo = &assignee
	}
	q, err := quote.RestoreQuote(s)
	require.NoError(t, err)
	return q
}

func pendingQuote(t *testing.T) *quote.Quote {
	t.Helper()
	return quoteAt(t, kernel.NewUUID(), quote.Pending, workflow.StepQuoteCreated, quote.FlowStandard)
}

func bookedQuote(t *testing.T, customerID kernel.UUID) *quote.Quote {
	t.Helper()
	return quoteAt(t, customerID, quote.BookingConfirmed, workflow.StepBookingConfirmed, quote.FlowStandard)
}

func sentRFQ(t *testing.T, quoteID, warehouseID kernel.UUID) *rfq.RFQ {
	t.Helper()
	r, err := rfq.NewRFQ(kernel.NewUUID(), quoteID, warehouseID, nil, time.Now().UTC())
	require.NoError(t, err)
	return r
}

func confirmedBooking(t *testing.T, q *quote.Quote) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(kernel.NewUUID(), q, time.Now().UTC())
	require.NoError(t, err)
	return b
}

func newWarehouse(t *testing.T, email string) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), "Dock "+email, "Chennai", 1000, email, kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)
	return w
}

func pendingRate(t *testing.T, r *rfq.RFQ, amount string) *rfq.Rate {
	t.Helper()
	rate, err := rfq.NewRate(kernel.NewUUID(), r, money(t, amount), "net 30", time.Now().UTC())
	require.NoError(t, err)
	return rate
}

func approvedCargo(t *testing.T, b *booking.Booking) *booking.CargoDispatch {
	t.Helper()
	c, err := booking.NewCargoDispatch(kernel.NewUUID(), b, "cotton bales", 40, 1200, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, c.Approve())
	return c
}

func pendingDeliveryRequest(t *testing.T, b *booking.Booking) *delivery.Request {
	t.Helper()
	r, err := delivery.NewRequest(kernel.NewUUID(), b, "Bengaluru DC", nil, "", time.Now().UTC())
	require.NoError(t, err)
	return r
}

func issuedAdvice(t *testing.T, b *booking.Booking) *delivery.Advice {
	t.Helper()
	r := pendingDeliveryRequest(t, b)
	require.NoError(t, r.Schedule())
	a, err := delivery.NewAdvice(kernel.NewUUID(), r, time.Now().UTC())
	require.NoError(t, err)
	return a
}

func issuedOrder(t *testing.T, b *booking.Booking) *delivery.Order {
	t.Helper()
	o, err := delivery.NewOrder(kernel.NewUUID(), issuedAdvice(t, b), time.Now().UTC())
	require.NoError(t, err)
	return o
}

func draftInvoice(t *testing.T, b *booking.Booking) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(kernel.NewUUID(), b, 0, time.Now().UTC())
	require.NoError(t, err)
	return inv
}

func sentInvoice(t *testing.T, b *booking.Booking) *invoice.Invoice {
	t.Helper()
	inv := draftInvoice(t, b)
	require.NoError(t, inv.Approve())
	return inv
}
