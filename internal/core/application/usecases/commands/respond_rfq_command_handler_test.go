package commands_test

import (
	"testing"

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

func TestRespondRFQCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		decision   workflow.Action
		wantStatus rfq.Status
		wantStep   workflow.Step
	}{
		{"acknowledge", workflow.ActionAccept, rfq.Responded, workflow.StepRFQAcknowledged},
		{"decline", workflow.ActionReject, rfq.Cancelled, workflow.StepWarehouseRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			warehouseID := kernel.NewUUID()
			q := quoteAt(t, kernel.NewUUID(), quote.WarehouseQuoteRequested, workflow.StepRFQSent, quote.FlowStandard)
			sent := sentRFQ(t, q.ID(), warehouseID)
			cmd, err := commands.NewRespondRFQCommand(warehouseActor(t, warehouseID), sent.ID(), tt.decision, "capacity check")
			require.NoError(t, err)

			r := newRepos()
			announcer := new(MockAnnouncer)
			r.expectTx(ctx)
			r.rfqs.On("Get", ctx, sent.ID()).Return(sent, nil).Twice()
			r.quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()
			r.rfqs.On("Update", ctx, sent).Return(nil).Once()
			r.quotes.On("Update", ctx, q).Return(nil).Once()
			announcer.On("Announce", ctx, mock.Anything).Once()

			handler := commands.NewRespondRFQCommandHandler(r.negotiationFactory(), announcer)

			err = handler.Handle(ctx, cmd)

			require.NoError(t, err)
			r.assertAll(t)
			assert.Equal(t, tt.wantStatus, sent.Status())
			assert.Equal(t, []string{"capacity check"}, sent.Notes())
			assert.Equal(t, tt.wantStep, q.CurrentStep())
			assert.Equal(t, quote.WarehouseQuoteRequested, q.Status())
			r.rates.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestRespondRFQCommandHandler_Handle_AlreadyAnswered(t *testing.T) {
	ctx := t.Context()
	warehouseID := kernel.NewUUID()
	q := quoteAt(t, kernel.NewUUID(), quote.WarehouseQuoteRequested, workflow.StepRFQSent, quote.FlowStandard)
	sent := sentRFQ(t, q.ID(), warehouseID)
	require.NoError(t, sent.Reject("full"))
	cmd, err := commands.NewRespondRFQCommand(warehouseActor(t, warehouseID), sent.ID(), workflow.ActionAccept, "")
	require.NoError(t, err)

	r := newRepos()
	r.expectAbortedTx(ctx)
	r.rfqs.On("Get", ctx, sent.ID()).Return(sent, nil).Twice()
	r.quotes.On("GetForUpdate", ctx, q.ID()).Return(q, nil).Once()

	handler := commands.NewRespondRFQCommandHandler(r.negotiationFactory(), new(MockAnnouncer))

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Empty(t, q.PendingEvents())
}

func TestNewRespondRFQCommand_InvalidDecision(t *testing.T) {
	_, err := commands.NewRespondRFQCommand(newActor(t, workflow.RoleWarehouse), kernel.NewUUID(), workflow.ActionCancel, "")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
