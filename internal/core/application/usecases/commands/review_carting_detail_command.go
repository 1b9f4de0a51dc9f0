package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrReviewCartingDetailCommandIsNotConstructed = errors.New(
	"ReviewCartingDetailCommand must be created via NewReviewCartingDetailCommand constructor",
)

// ReviewCartingDetailCommand is the supervisor's confirmation (C26) or rejection (C27).
type ReviewCartingDetailCommand struct {
	actor     workflow.Actor
	cartingID kernel.UUID
	decision  workflow.Action
	note      string

	guard guard.ConstructorGuard
}

func NewReviewCartingDetailCommand(
	actor workflow.Actor,
	cartingID kernel.UUID,
	decision workflow.Action,
	note string,
) (ReviewCartingDetailCommand, error) {
	if err := errors.Join(actor.Validate(), cartingID.Validate()); err != nil {
		return ReviewCartingDetailCommand{}, err
	}
	if err := checkDecision(decision, workflow.ActionConfirm, workflow.ActionReject); err != nil {
		return ReviewCartingDetailCommand{}, err
	}
	return ReviewCartingDetailCommand{
		actor:     actor,
		cartingID: cartingID,
		decision:  decision,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewCartingDetailCommand) Validate() error {
	return c.guard.Validate(ErrReviewCartingDetailCommandIsNotConstructed)
}

func (c ReviewCartingDetailCommand) Actor() workflow.Actor { return c.actor }
func (c ReviewCartingDetailCommand) CartingID() kernel.UUID { return c.cartingID }
func (c ReviewCartingDetailCommand) Decision() workflow.Action { return c.decision }
func (c ReviewCartingDetailCommand) Note() string { return c.note }

func (c ReviewCartingDetailCommand) Step() workflow.Step {
	if c.decision == workflow.ActionReject {
		return workflow.StepCartingRejected
	}
	return workflow.StepCartingConfirmed
}
