package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrTransitionQuoteCommandIsNotConstructed = errors.New(
	"TransitionQuoteCommand must be created via NewTransitionQuoteCommand constructor",
)

// TransitionQuoteCommand moves a quote to the given step on behalf of an actor.
type TransitionQuoteCommand struct {
	actor    workflow.Actor
	quoteID  kernel.UUID
	nextStep workflow.Step
	action   workflow.Action
	note     string

	guard guard.ConstructorGuard
}

// NewTransitionQuoteCommand builds the command. An empty action defaults to
// reject for rejection steps and to accept otherwise.
func NewTransitionQuoteCommand(
	actor workflow.Actor,
	quoteID kernel.UUID,
	nextStep workflow.Step,
	action workflow.Action,
	note string,
) (TransitionQuoteCommand, error) {
	if err := errors.Join(actor.Validate(), quoteID.Validate(), nextStep.Validate()); err != nil {
		return TransitionQuoteCommand{}, err
	}
	if action == "" {
		action = defaultAction(nextStep)
	}
	return TransitionQuoteCommand{
		actor:    actor,
		quoteID:  quoteID,
		nextStep: nextStep,
		action:   action,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionQuoteCommand) Validate() error {
	return c.guard.Validate(ErrTransitionQuoteCommandIsNotConstructed)
}

func (c TransitionQuoteCommand) Actor() workflow.Actor {
	return c.actor
}

func (c TransitionQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c TransitionQuoteCommand) NextStep() workflow.Step {
	return c.nextStep
}

func (c TransitionQuoteCommand) Action() workflow.Action {
	return c.action
}

func (c TransitionQuoteCommand) Note() string {
	return c.note
}

func defaultAction(step workflow.Step) workflow.Action {
	switch step {
	case workflow.StepPurchaseRejected, workflow.StepWarehouseRejected, workflow.StepSalesRejected,
		workflow.StepCustomerDeclined, workflow.StepSupervisorRejected:
		return workflow.ActionReject
	case workflow.StepForwardedToSupervisor:
		return workflow.ActionForward
	case workflow.StepBookingConfirmed, workflow.StepDirectBookingConfirmed, workflow.StepRatesConfirmed:
		return workflow.ActionConfirm
	default:
		return workflow.ActionAccept
	}
}
