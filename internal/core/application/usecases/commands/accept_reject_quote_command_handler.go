package commands

import (
	"context"

	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/workflow"
)

// AcceptRejectQuoteCommandHandler resolves the role shorthand to a step and
// runs it through the same path as TransitionQuoteCommandHandler.
//
//	purchase_support  accept: C2, or C10 once rates were received   reject: C4
//	warehouse         accept: C5                                    reject: C7
//	sales_support     accept: C11, or C16 after customer agreement  reject: C12
//	customer          accept: C13                                   reject, cancel: C14
//	supervisor        accept: C17, or C19 for a quoted direct flow  reject: C18
type AcceptRejectQuoteCommandHandler struct {
	uowFactory UoWFactory
	announcer  Announcer
}

func NewAcceptRejectQuoteCommandHandler(uowFactory UoWFactory, announcer Announcer) AcceptRejectQuoteCommandHandler {
	return AcceptRejectQuoteCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

func (h AcceptRejectQuoteCommandHandler) Handle(ctx context.Context, cmd AcceptRejectQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	q, err := runTransition(ctx, h.uowFactory, cmd.Actor(), cmd.QuoteID(), func(q *quote.Quote) (workflow.Step, workflow.Action, error) {
		step, stepErr := ResolveDecisionStep(cmd.Actor().Role(), cmd.Decision(), q)
		return step, cmd.Decision(), stepErr
	}, cmd.Note())
	if err != nil {
		return err
	}

	h.announcer.Announce(ctx, notice(q, q.CurrentStep(), cmd.Decision(), cmd.Note()))
	return nil
}

// ResolveDecisionStep maps a role's accept/reject/cancel decision on q to a step code.
func ResolveDecisionStep(role workflow.Role, decision workflow.Action, q *quote.Quote) (workflow.Step, error) {
	accept := decision == workflow.ActionAccept
	switch role {
	case workflow.RolePurchaseSupport:
		if !accept {
			return workflow.StepPurchaseRejected, nil
		}
		if q.Status() == quote.WarehouseQuoteReceived {
			return workflow.StepRatesConfirmed, nil
		}
		return workflow.StepPurchaseAccepted, nil
	case workflow.RoleWarehouse:
		if !accept {
			return workflow.StepWarehouseRejected, nil
		}
		return workflow.StepRFQAcknowledged, nil
	case workflow.RoleSalesSupport:
		if !accept {
			return workflow.StepSalesRejected, nil
		}
		if q.Status() == quote.CustomerConfirmationPending {
			return workflow.StepForwardedToSupervisor, nil
		}
		return workflow.StepPriceQuoted, nil
	case workflow.RoleCustomer:
		if !accept {
			return workflow.StepCustomerDeclined, nil
		}
		return workflow.StepCustomerAgreed, nil
	case workflow.RoleSupervisor:
		if !accept {
			return workflow.StepSupervisorRejected, nil
		}
		if q.Status() == quote.Quoted && q.FlowType() == quote.FlowDirect {
			return workflow.StepDirectBookingConfirmed, nil
		}
		return workflow.StepBookingConfirmed, nil
	default:
		return workflow.StepNone, workflow.NewStepDeniedError(role, workflow.StepNone)
	}
}
