package commands_test

import (
	"testing"

	"procurement/internal/core/application/notifications"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionQuoteCommandHandler_Handle_PurchaseAccepts(t *testing.T) {
	// Arrange
	ctx := t.Context()
	q := pendingQuote(t)
	actor := newActor(t, workflow.RolePurchaseSupport)
	cmd, err := commands.NewTransitionQuoteCommand(actor, q.ID(), workflow.StepPurchaseAccepted, "", "looks fine")
	require.NoError(t, err)

	r := newRepos()
	announcer := new(MockAnnouncer)
	r.expectTx(ctx)
	r.quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()
	r.quotes.On("Update", ctx, q).Return(nil).Once()
	announcer.On("Announce", ctx, mock.MatchedBy(func(n notifications.Notice) bool {
		return n.Step == workflow.StepPurchaseAccepted && n.Detail == "looks fine"
	})).Once()

	handler := commands.NewTransitionQuoteCommandHandler(r.factory(), announcer)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	r.assertAll(t)
	announcer.AssertExpectations(t)
	assert.Equal(t, quote.WarehouseQuoteRequested, q.Status())
	require.Len(t, q.PendingEvents(), 1)
	assert.Equal(t, workflow.ActionAccept, q.PendingEvents()[0].Action)
}

func TestTransitionQuoteCommandHandler_Handle_DeniedBeforeTransaction(t *testing.T) {
	cmd, err := commands.NewTransitionQuoteCommand(
		newActor(t, workflow.RoleCustomer), kernel.NewUUID(), workflow.StepRateSelected, "", "")
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	handler := commands.NewTransitionQuoteCommandHandler(factory, new(MockAnnouncer))

	err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestTransitionQuoteCommandHandler_Handle_ConfirmationSpawnsBooking(t *testing.T) {
	ctx := t.Context()
	q := quoteAt(t, kernel.NewUUID(), quote.CustomerConfirmationPending, workflow.StepForwardedToSupervisor, quote.FlowStandard)
	cmd, err := commands.NewTransitionQuoteCommand(newActor(t, workflow.RoleSupervisor), q.ID(), workflow.StepBookingConfirmed, "", "")
	require.NoError(t, err)

	r := newRepos()
	announcer := new(MockAnnouncer)
	var spawned *booking.Booking
	r.expectTx(ctx)
	r.quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()
	r.bookings.On("FindByQuote", ctx, q.ID()).Return(nil, nil).Once()
	r.bookings.On("Add", ctx, mock.AnythingOfType("*booking.Booking")).
		Run(func(args mock.Arguments) { spawned = args.Get(1).(*booking.Booking) }).
		Return(nil).Once()
	r.quotes.On("Update", ctx, q).Return(nil).Once()
	announcer.On("Announce", ctx, mock.Anything).Once()

	handler := commands.NewTransitionQuoteCommandHandler(r.factory(), announcer)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	r.assertAll(t)
	assert.Equal(t, quote.BookingConfirmed, q.Status())
	require.NotNil(t, spawned)
	assert.Equal(t, q.ID(), spawned.QuoteID())
	assert.Equal(t, booking.Confirmed, spawned.Status())
	assert.True(t, spawned.TotalAmount().IsEqual(*q.FinalPrice()))
}

func TestTransitionQuoteCommandHandler_Handle_RepeatedConfirmationKeepsOneBooking(t *testing.T) {
	ctx := t.Context()
	q := bookedQuote(t, kernel.NewUUID())
	existing := confirmedBooking(t, q)
	cmd, err := commands.NewTransitionQuoteCommand(newActor(t, workflow.RoleSupervisor), q.ID(), workflow.StepBookingConfirmed, "", "")
	require.NoError(t, err)

	r := newRepos()
	announcer := new(MockAnnouncer)
	r.expectTx(ctx)
	r.quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()
	r.bookings.On("FindByQuote", ctx, q.ID()).Return(existing, nil).Once()
	r.quotes.On("Update", ctx, q).Return(nil).Once()
	announcer.On("Announce", ctx, mock.Anything).Once()

	handler := commands.NewTransitionQuoteCommandHandler(r.factory(), announcer)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	r.assertAll(t)
	r.bookings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestTransitionQuoteCommandHandler_Handle_ForeignCustomer(t *testing.T) {
	ctx := t.Context()
	q := quoteAt(t, kernel.NewUUID(), quote.Quoted, workflow.StepPriceQuoted, quote.FlowStandard)
	cmd, err := commands.NewTransitionQuoteCommand(newActor(t, workflow.RoleCustomer), q.ID(), workflow.StepCustomerAgreed, "", "")
	require.NoError(t, err)

	r := newRepos()
	r.expectAbortedTx(ctx)
	r.quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()

	handler := commands.NewTransitionQuoteCommandHandler(r.factory(), new(MockAnnouncer))

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	r.assertAll(t)
	assert.Equal(t, quote.Quoted, q.Status())
}

func TestTransitionQuoteCommandHandler_Handle_WarehouseWithoutRFQ(t *testing.T) {
	ctx := t.Context()
	q := quoteAt(t, kernel.NewUUID(), quote.WarehouseQuoteRequested, workflow.StepRFQSent, quote.FlowStandard)
	actor := newActor(t, workflow.RoleWarehouse)
	cmd, err := commands.NewTransitionQuoteCommand(actor, q.ID(), workflow.StepRFQAcknowledged, "", "")
	require.NoError(t, err)

	r := newRepos()
	r.expectAbortedTx(ctx)
	r.quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()
	r.rfqs.On("ListByQuote", ctx, q.ID()).Return([]*rfq.RFQ{sentRFQ(t, q.ID(), kernel.NewUUID())}, nil).Once()

	handler := commands.NewTransitionQuoteCommandHandler(r.factory(), new(MockAnnouncer))

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	r.assertAll(t)
}

func TestTransitionQuoteCommandHandler_Handle_IllegalStep(t *testing.T) {
	ctx := t.Context()
	q := pendingQuote(t)
	cmd, err := commands.NewTransitionQuoteCommand(newActor(t, workflow.RoleSupervisor), q.ID(), workflow.StepBookingConfirmed, "", "")
	require.NoError(t, err)

	r := newRepos()
	r.expectAbortedTx(ctx)
	r.quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()

	handler := commands.NewTransitionQuoteCommandHandler(r.factory(), new(MockAnnouncer))

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	r.quotes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Empty(t, q.PendingEvents())
}
