package commands

import (
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrAcceptRejectQuoteCommandIsNotConstructed = errors.New(
	"AcceptRejectQuoteCommand must be created via NewAcceptRejectQuoteCommand constructor",
)

// AcceptRejectQuoteCommand is the role shorthand for the common quote steps:
// the actor only says accept, reject or (customers only) cancel and the
// handler resolves the step from the role and the quote's status.
type AcceptRejectQuoteCommand struct {
	actor    workflow.Actor
	quoteID  kernel.UUID
	decision workflow.Action
	note     string

	guard guard.ConstructorGuard
}

func NewAcceptRejectQuoteCommand(
	actor workflow.Actor,
	quoteID kernel.UUID,
	decision workflow.Action,
	note string,
) (AcceptRejectQuoteCommand, error) {
	if err := errors.Join(actor.Validate(), quoteID.Validate()); err != nil {
		return AcceptRejectQuoteCommand{}, err
	}
	switch decision {
	case workflow.ActionAccept, workflow.ActionReject:
	case workflow.ActionCancel:
		if actor.Role() != workflow.RoleCustomer {
			return AcceptRejectQuoteCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"action", errors.New("only customers can cancel a quote"))
		}
	default:
		return AcceptRejectQuoteCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"action", fmt.Errorf("%q is not one of accept, reject, cancel", decision))
	}
	return AcceptRejectQuoteCommand{
		actor:    actor,
		quoteID:  quoteID,
		decision: decision,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptRejectQuoteCommand) Validate() error {
	return c.guard.Validate(ErrAcceptRejectQuoteCommandIsNotConstructed)
}

func (c AcceptRejectQuoteCommand) Actor() workflow.Actor {
	return c.actor
}

func (c AcceptRejectQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c AcceptRejectQuoteCommand) Decision() workflow.Action {
	return c.decision
}

func (c AcceptRejectQuoteCommand) Note() string {
	return c.note
}
