package commands_test

import (
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitRateCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	q := quoteAt(t, kernel.NewUUID(), quote.WarehouseQuoteRequested, workflow.StepRFQSent, quote.FlowStandard)
	sent := sentRFQ(t, q.ID(), warehouseID)
	cmd, err := commands.NewSubmitRateCommand(warehouseActor(t, warehouseID), sent.ID(), money(t, "1800"), "net 30")
	require.NoError(t, err)

	r := newRepos()
	announcer := new(MockAnnouncer)
	var stored *rfq.Rate
	r.expectTx(ctx)
	r.rfqs.On("Get", ctx, sent.ID()).Return(sent, nil).Twice()
	r.quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()
	r.rates.On("Add", ctx, mock.AnythingOfType("*rfq.Rate")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*rfq.Rate) }).
		Return(nil).Once()
	r.rfqs.On("Update", ctx, sent).Return(nil).Once()
	r.quotes.On("Update", ctx, q).Return(nil).Once()
	announcer.On("Announce", ctx, mock.Anything).Once()

	handler := commands.NewSubmitRateCommandHandler(r.negotiationFactory(), announcer)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	r.assertAll(t)
	require.NotNil(t, stored)
	assert.Equal(t, cmd.RateID(), stored.ID())
	assert.Equal(t, rfq.RatePending, stored.Status())
	assert.Equal(t, rfq.Responded, sent.Status())
	assert.Equal(t, quote.WarehouseQuoteReceived, q.Status())
}

func TestSubmitRateCommandHandler_Handle_SecondSubmissionConflicts(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	q := quoteAt(t, kernel.NewUUID(), quote.WarehouseQuoteReceived, workflow.StepRateSubmitted, quote.FlowStandard)
	answered, err := rfq.RestoreRFQ(kernel.NewUUID(), q.ID(), warehouseID, rfq.Responded,
		time.Now().Add(time.Hour), nil, time.Now())
	require.NoError(t, err)
	cmd, err := commands.NewSubmitRateCommand(warehouseActor(t, warehouseID), answered.ID(), money(t, "1700"), "")
	require.NoError(t, err)

	r := newRepos()
	r.expectAbortedTx(ctx)
	r.rfqs.On("Get", ctx, answered.ID()).Return(answered, nil).Twice()
	r.quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()

	handler := commands.NewSubmitRateCommandHandler(r.negotiationFactory(), new(MockAnnouncer))

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	r.assertAll(t)
	r.rates.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSubmitRateCommandHandler_Handle_Expired(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	q := quoteAt(t, kernel.NewUUID(), quote.WarehouseQuoteRequested, workflow.StepRFQSent, quote.FlowStandard)
	expired, err := rfq.RestoreRFQ(kernel.NewUUID(), q.ID(), warehouseID, rfq.Sent,
		time.Now().Add(-time.Hour), nil, time.Now().Add(-8*24*time.Hour))
	require.NoError(t, err)
	cmd, err := commands.NewSubmitRateCommand(warehouseActor(t, warehouseID), expired.ID(), money(t, "1700"), "")
	require.NoError(t, err)

	r := newRepos()
	r.expectAbortedTx(ctx)
	r.rfqs.On("Get", ctx, expired.ID()).Return(expired, nil).Twice()
	r.quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()

	handler := commands.NewSubmitRateCommandHandler(r.negotiationFactory(), new(MockAnnouncer))

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	require.ErrorIs(t, err, rfq.ErrExpired)
}

func TestSubmitRateCommandHandler_Handle_OtherWarehouse(t *testing.T) {
	ctx := t.Context()
	q := quoteAt(t, kernel.NewUUID(), quote.WarehouseQuoteRequested, workflow.StepRFQSent, quote.FlowStandard)
	sent := sentRFQ(t, q.ID(), kernel.NewUUID())
	cmd, err := commands.NewSubmitRateCommand(newActor(t, workflow.RoleWarehouse), sent.ID(), money(t, "1700"), "")
	require.NoError(t, err)

	r := newRepos()
	r.expectAbortedTx(ctx)
	r.rfqs.On("Get", ctx, sent.ID()).Return(sent, nil).Once()

	handler := commands.NewSubmitRateCommandHandler(r.negotiationFactory(), new(MockAnnouncer))

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	r.assertAll(t)
	assert.Equal(t, rfq.Sent, sent.Status())
}
