package quote_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func actor(t *testing.T, role workflow.Role) workflow.Actor {
	t.Helper()
	var warehouseID *kernel.UUID
	if role == workflow.RoleWarehouse {
		id := kernel.NewUUID()
		warehouseID = &id
	}
	a, err := workflow.NewActor(kernel.NewUUID(), role, string(role)+"@example.com", warehouseID)
	require.NoError(t, err)
	return a
}

func details() quote.Details {
	return quote.Details{
		CustomerEmail: "buyer@example.com",
		SpaceRequired: 120,
		Duration:      "6 months",
		Location:      "Chennai",
		GoodsType:     "textiles",
	}
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newQuote(t *testing.T, flow quote.FlowType) *quote.Quote {
	t.Helper()
	q, err := quote.NewQuote(kernel.NewUUID(), actor(t, workflow.RoleCustomer), details(), flow, now)
	require.NoError(t, err)
	return q
}

// quotedQuote drives a quote to the quoted status through the regular path.
func quotedQuote(t *testing.T, flow quote.FlowType) *quote.Quote {
	t.Helper()
	q := newQuote(t, flow)
	purchase := actor(t, workflow.RolePurchaseSupport)

	require.NoError(t, q.Transition(workflow.StepPurchaseAccepted, workflow.ActionAccept, purchase, "", now))
	require.NoError(t, q.SendRFQs(purchase, "", now))
	require.NoError(t, q.ReceiveRate(actor(t, workflow.RoleWarehouse), "", now))
	require.NoError(t, q.SelectRate(kernel.NewUUID(), money(t, "900"), kernel.NewUUID(), purchase, now))
	_, err := q.Price(money(t, "1100"), actor(t, workflow.RoleSalesSupport), "", now)
	require.NoError(t, err)
	require.Equal(t, quote.Quoted, q.Status())
	return q
}

func TestNewQuote(t *testing.T) {
	t.Run("starts pending at C1 with one history event", func(t *testing.T) {
		customer := actor(t, workflow.RoleCustomer)

		q, err := quote.NewQuote(kernel.NewUUID(), customer, details(), "", now)

		require.NoError(t, err)
		assert.Equal(t, quote.Pending, q.Status())
		assert.Equal(t, workflow.StepQuoteCreated, q.CurrentStep())
		assert.Equal(t, quote.FlowStandard, q.FlowType())
		assert.True(t, q.IsOwnedBy(customer.ID()))
		require.Len(t, q.PendingEvents(), 1)

		event := q.PendingEvents()[0]
		assert.Equal(t, 1, event.Seq)
		assert.Equal(t, workflow.StepNone, event.FromStep)
		assert.Equal(t, workflow.StepQuoteCreated, event.ToStep)
		assert.Equal(t, "pending", event.ToStatus)
		assert.Equal(t, workflow.ActionCreate, event.Action)
	})

	t.Run("validates the request", func(t *testing.T) {
		bad := details()
		bad.SpaceRequired = 0
		bad.Duration = ""

		_, err := quote.NewQuote(kernel.NewUUID(), actor(t, workflow.RoleCustomer), bad, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("only customers create quotes", func(t *testing.T) {
		_, err := quote.NewQuote(kernel.NewUUID(), actor(t, workflow.RoleSupervisor), details(), "", now)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("rejects unknown flow", func(t *testing.T) {
		_, err := quote.NewQuote(kernel.NewUUID(), actor(t, workflow.RoleCustomer), details(), "express", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestQuote_StandardFlowToBooking(t *testing.T) {
	q := quotedQuote(t, quote.FlowStandard)
	customer := actor(t, workflow.RoleCustomer)
	sales := actor(t, workflow.RoleSalesSupport)
	supervisor := actor(t, workflow.RoleSupervisor)

	require.NoError(t, q.Transition(workflow.StepCustomerAgreed, workflow.ActionAccept, customer, "", now))
	assert.Equal(t, quote.CustomerConfirmationPending, q.Status())

	require.NoError(t, q.Transition(workflow.StepForwardedToSupervisor, workflow.ActionForward, sales, "", now))
	assert.Equal(t, quote.CustomerConfirmationPending, q.Status())

	require.NoError(t, q.Transition(workflow.StepBookingConfirmed, workflow.ActionAccept, supervisor, "ok", now))
	assert.Equal(t, quote.BookingConfirmed, q.Status())
	assert.Equal(t, workflow.StepBookingConfirmed, q.CurrentStep())

	// re-confirmation is idempotent on the status and still audited
	require.NoError(t, q.Transition(workflow.StepBookingConfirmed, workflow.ActionAccept, supervisor, "", now))
	assert.Equal(t, quote.BookingConfirmed, q.Status())

	events := q.PendingEvents()
	for i, e := range events {
		assert.Equal(t, i+1, e.Seq)
	}
	last := events[len(events)-1]
	assert.Equal(t, workflow.StepBookingConfirmed, last.FromStep)
	assert.Equal(t, "booking_confirmed", last.FromStatus)
	require.NoError(t, q.Validate())
}

func TestQuote_SendRFQsKeepsReceivedStatus(t *testing.T) {
	q := newQuote(t, quote.FlowStandard)
	purchase := actor(t, workflow.RolePurchaseSupport)

	require.NoError(t, q.SendRFQs(purchase, "", now))
	require.NoError(t, q.ReceiveRate(actor(t, workflow.RoleWarehouse), "", now))
	require.NoError(t, q.SendRFQs(purchase, "second round", now))

	assert.Equal(t, quote.WarehouseQuoteReceived, q.Status())
	assert.Equal(t, workflow.StepRFQSent, q.CurrentStep())
	require.NoError(t, q.Validate())
}

func TestQuote_RatesConfirmedThenSelection(t *testing.T) {
	q := newQuote(t, quote.FlowStandard)
	purchase := actor(t, workflow.RolePurchaseSupport)
	require.NoError(t, q.SendRFQs(purchase, "", now))
	require.NoError(t, q.ReceiveRate(actor(t, workflow.RoleWarehouse), "", now))

	require.NoError(t, q.Transition(workflow.StepRatesConfirmed, workflow.ActionAccept, purchase, "", now))
	assert.Equal(t, quote.RateConfirmed, q.Status())

	warehouseID := kernel.NewUUID()
	salesID := kernel.NewUUID()
	require.NoError(t, q.SelectRate(warehouseID, money(t, "500"), salesID, purchase, now))

	assert.Equal(t, quote.Processing, q.Status())
	assert.True(t, q.WarehouseID().IsEqual(warehouseID))
	assert.True(t, q.AssignedTo().IsEqual(salesID))
	assert.Equal(t, "500.00", q.FinalPrice().String())
}

func TestQuote_SelectRateTwiceIsConflict(t *testing.T) {
	q := newQuote(t, quote.FlowStandard)
	purchase := actor(t, workflow.RolePurchaseSupport)
	require.NoError(t, q.SendRFQs(purchase, "", now))
	require.NoError(t, q.ReceiveRate(actor(t, workflow.RoleWarehouse), "", now))
	require.NoError(t, q.SelectRate(kernel.NewUUID(), money(t, "500"), kernel.NewUUID(), purchase, now))
	historyBefore := q.HistoryLength()

	err := q.SelectRate(kernel.NewUUID(), money(t, "400"), kernel.NewUUID(), purchase, now)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, "500.00", q.FinalPrice().String())
	assert.Equal(t, historyBefore, q.HistoryLength())
}

func TestQuote_SelectRateRequiresReceivedRates(t *testing.T) {
	q := newQuote(t, quote.FlowStandard)

	err := q.SelectRate(kernel.NewUUID(), money(t, "500"), kernel.NewUUID(), actor(t, workflow.RolePurchaseSupport), now)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Nil(t, q.WarehouseID())
	assert.Nil(t, q.AssignedTo())
}

func TestQuote_PriceRevision(t *testing.T) {
	q := quotedQuote(t, quote.FlowStandard)

	step, err := q.Price(money(t, "1050"), actor(t, workflow.RoleSalesSupport), "discount", now)

	require.NoError(t, err)
	assert.Equal(t, workflow.StepPriceRevised, step)
	assert.Equal(t, "1050.00", q.FinalPrice().String())
	assert.Equal(t, quote.Quoted, q.Status())

	_, err = q.Price(kernel.ZeroMoney(), actor(t, workflow.RoleSalesSupport), "", now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestQuote_PriceBeforeSelectionIsConflict(t *testing.T) {
	q := newQuote(t, quote.FlowStandard)

	_, err := q.Price(money(t, "10"), actor(t, workflow.RoleSalesSupport), "", now)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Nil(t, q.FinalPrice())
}

func TestQuote_RejectFromAnyNonTerminal(t *testing.T) {
	rejections := []struct {
		step workflow.Step
		role workflow.Role
	}{
		{workflow.StepPurchaseRejected, workflow.RolePurchaseSupport},
		{workflow.StepWarehouseRejected, workflow.RoleWarehouse},
		{workflow.StepSalesRejected, workflow.RoleSalesSupport},
		{workflow.StepCustomerDeclined, workflow.RoleCustomer},
		{workflow.StepSupervisorRejected, workflow.RoleSupervisor},
	}

	for _, r := range rejections {
		t.Run(r.step.String(), func(t *testing.T) {
			q := quotedQuote(t, quote.FlowStandard)

			require.NoError(t, q.Transition(r.step, workflow.ActionReject, actor(t, r.role), "", now))
			assert.Equal(t, quote.Rejected, q.Status())

			err := q.Transition(r.step, workflow.ActionReject, actor(t, r.role), "", now)
			require.ErrorIs(t, err, errs.ErrConflict)
		})
	}
}

func TestQuote_CustomerCancel(t *testing.T) {
	q := newQuote(t, quote.FlowStandard)

	require.NoError(t, q.Transition(workflow.StepCustomerDeclined, workflow.ActionCancel, actor(t, workflow.RoleCustomer), "", now))

	assert.Equal(t, quote.Cancelled, q.Status())
	require.NoError(t, q.Validate())
}

func TestQuote_CancelAfterBookingIsConflict(t *testing.T) {
	q := quotedQuote(t, quote.FlowDirect)
	require.NoError(t, q.Transition(workflow.StepDirectBookingConfirmed, workflow.ActionAccept, actor(t, workflow.RoleSupervisor), "", now))

	err := q.Transition(workflow.StepCustomerDeclined, workflow.ActionCancel, actor(t, workflow.RoleCustomer), "", now)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, quote.BookingConfirmed, q.Status())
}

func TestQuote_DirectConfirmationNeedsDirectFlow(t *testing.T) {
	q := quotedQuote(t, quote.FlowStandard)

	err := q.Transition(workflow.StepDirectBookingConfirmed, workflow.ActionAccept, actor(t, workflow.RoleSupervisor), "", now)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, quote.Quoted, q.Status())
}

func TestQuote_BookingConfirmationPreconditions(t *testing.T) {
	q, err := quote.RestoreQuote(quote.Snapshot{
		ID:            kernel.NewUUID(),
		CustomerID:    kernel.NewUUID(),
		Details:       details(),
		Status:        quote.CustomerConfirmationPending,
		CurrentStep:   workflow.StepCustomerAgreed,
		FlowType:      quote.FlowStandard,
		CreatedAt:     now,
		UpdatedAt:     now,
		HistoryLength: 7,
	})
	require.NoError(t, err)

	err = q.Transition(workflow.StepBookingConfirmed, workflow.ActionAccept, actor(t, workflow.RoleSupervisor), "", now)

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, quote.CustomerConfirmationPending, q.Status())
	assert.Empty(t, q.PendingEvents())
}

func TestQuote_TransitionRefusesDedicatedSteps(t *testing.T) {
	q := newQuote(t, quote.FlowStandard)

	for _, step := range []workflow.Step{
		workflow.StepQuoteCreated,
		workflow.StepRFQSent,
		workflow.StepRateSubmitted,
		workflow.StepRateSelected,
		workflow.StepDeliveryRequested,
	} {
		err := q.Transition(step, workflow.ActionAccept, actor(t, workflow.RoleSupervisor), "", now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, step.String())
	}
	assert.Equal(t, 1, q.HistoryLength())
}

func TestQuote_StepNotAllowedInStatus(t *testing.T) {
	q := newQuote(t, quote.FlowStandard)

	err := q.Transition(workflow.StepCustomerAgreed, workflow.ActionAccept, actor(t, workflow.RoleCustomer), "", now)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "step C13 is not allowed in status pending")
}

func TestQuote_RecordStep(t *testing.T) {
	t.Run("cascade steps need a confirmed booking", func(t *testing.T) {
		q := newQuote(t, quote.FlowStandard)

		err := q.RecordStep(workflow.StepDeliveryRequested, workflow.ActionRequest, actor(t, workflow.RoleCustomer), "", now)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("warehouse rfq rejection keeps the status", func(t *testing.T) {
		q := newQuote(t, quote.FlowStandard)
		require.NoError(t, q.SendRFQs(actor(t, workflow.RolePurchaseSupport), "", now))

		require.NoError(t, q.RecordStep(workflow.StepWarehouseRejected, workflow.ActionReject, actor(t, workflow.RoleWarehouse), "no space", now))

		assert.Equal(t, quote.WarehouseQuoteRequested, q.Status())
		assert.Equal(t, workflow.StepWarehouseRejected, q.CurrentStep())
		require.NoError(t, q.Validate())
		events := q.PendingEvents()
		assert.Equal(t, "no space", events[len(events)-1].Note)
	})

	t.Run("post booking step", func(t *testing.T) {
		q := quotedQuote(t, quote.FlowDirect)
		require.NoError(t, q.Transition(workflow.StepDirectBookingConfirmed, workflow.ActionAccept, actor(t, workflow.RoleSupervisor), "", now))

		require.NoError(t, q.RecordStep(workflow.StepCargoDispatchSubmitted, workflow.ActionSubmit, actor(t, workflow.RoleCustomer), "", now))

		assert.Equal(t, quote.BookingConfirmed, q.Status())
		require.NoError(t, q.Validate())
	})
}

func TestQuote_MarkHistoryStored(t *testing.T) {
	q := newQuote(t, quote.FlowStandard)
	require.NoError(t, q.Transition(workflow.StepPurchaseAccepted, workflow.ActionAccept, actor(t, workflow.RolePurchaseSupport), "", now))

	q.MarkHistoryStored()

	assert.Empty(t, q.PendingEvents())
	assert.Equal(t, 2, q.StoredHistoryLength())

	require.NoError(t, q.Transition(workflow.StepPurchaseRejected, workflow.ActionReject, actor(t, workflow.RolePurchaseSupport), "", now))
	assert.Equal(t, 3, q.PendingEvents()[0].Seq)
}

func TestRestoreQuote_Inconsistent(t *testing.T) {
	_, err := quote.RestoreQuote(quote.Snapshot{
		ID:          kernel.NewUUID(),
		CustomerID:  kernel.NewUUID(),
		Details:     details(),
		Status:      quote.Quoted,
		CurrentStep: workflow.StepQuoteCreated,
		FlowType:    quote.FlowStandard,
	})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = quote.RestoreQuote(quote.Snapshot{
		ID:          kernel.NewUUID(),
		CustomerID:  kernel.NewUUID(),
		Details:     details(),
		Status:      quote.BookingConfirmed,
		CurrentStep: workflow.StepBookingConfirmed,
		FlowType:    quote.FlowStandard,
	})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestQuote_ValidateNotConstructed(t *testing.T) {
	var q *quote.Quote
	assert.Equal(t, quote.ErrQuoteIsNotConstructed, q.Validate())
	assert.Equal(t, quote.ErrQuoteIsNotConstructed, (&quote.Quote{}).Validate())
}
