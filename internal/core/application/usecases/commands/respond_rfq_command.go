package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrRespondRFQCommandIsNotConstructed = errors.New("RespondRFQCommand must be created via NewRespondRFQCommand constructor")

// RespondRFQCommand lets a warehouse acknowledge or decline an RFQ without a rate.
type RespondRFQCommand struct {
	actor    workflow.Actor
	rfqID    kernel.UUID
	decision workflow.Action
	note     string

	guard guard.ConstructorGuard
}

func NewRespondRFQCommand(actor workflow.Actor, rfqID kernel.UUID, decision workflow.Action, note string) (RespondRFQCommand, error) {
	if err := errors.Join(actor.Validate(), rfqID.Validate()); err != nil {
		return RespondRFQCommand{}, err
	}
	if err := checkDecision(decision, workflow.ActionAccept, workflow.ActionReject); err != nil {
		return RespondRFQCommand{}, err
	}
	return RespondRFQCommand{
		actor:    actor,
		rfqID:    rfqID,
		decision: decision,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RespondRFQCommand) Validate() error {
	return c.guard.Validate(ErrRespondRFQCommandIsNotConstructed)
}

func (c RespondRFQCommand) Actor() workflow.Actor {
	return c.actor
}

func (c RespondRFQCommand) RFQID() kernel.UUID {
	return c.rfqID
}

func (c RespondRFQCommand) Decision() workflow.Action {
	return c.decision
}

func (c RespondRFQCommand) Note() string {
	return c.note
}

// Step is C5 for an acknowledgement and C7 for a rejection.
func (c RespondRFQCommand) Step() workflow.Step {
	if c.decision == workflow.ActionReject {
		return workflow.StepWarehouseRejected
	}
	return workflow.StepRFQAcknowledged
}
