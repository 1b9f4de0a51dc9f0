package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrReviewCargoDispatchCommandIsNotConstructed = errors.New(
	"ReviewCargoDispatchCommand must be created via NewReviewCargoDispatchCommand constructor",
)

// ReviewCargoDispatchCommand is the supervisor's approval (C22) or rejection (C23).
type ReviewCargoDispatchCommand struct {
	actor    workflow.Actor
	cargoID  kernel.UUID
	decision workflow.Action
	note     string

	guard guard.ConstructorGuard
}

func NewReviewCargoDispatchCommand(
	actor workflow.Actor,
	cargoID kernel.UUID,
	decision workflow.Action,
	note string,
) (ReviewCargoDispatchCommand, error) {
	if err := errors.Join(actor.Validate(), cargoID.Validate()); err != nil {
		return ReviewCargoDispatchCommand{}, err
	}
	if err := checkDecision(decision, workflow.ActionApprove, workflow.ActionReject); err != nil {
		return ReviewCargoDispatchCommand{}, err
	}
	return ReviewCargoDispatchCommand{
		actor:    actor,
		cargoID:  cargoID,
		decision: decision,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewCargoDispatchCommand) Validate() error {
	return c.guard.Validate(ErrReviewCargoDispatchCommandIsNotConstructed)
}

func (c ReviewCargoDispatchCommand) Actor() workflow.Actor { return c.actor }
func (c ReviewCargoDispatchCommand) CargoID() kernel.UUID { return c.cargoID }
func (c ReviewCargoDispatchCommand) Decision() workflow.Action { return c.decision }
func (c ReviewCargoDispatchCommand) Note() string { return c.note }

func (c ReviewCargoDispatchCommand) Step() workflow.Step {
	if c.decision == workflow.ActionReject {
		return workflow.StepCargoDispatchRejected
	}
	return workflow.StepCargoDispatchApproved
}
