package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrReviewDeliveryRequestCommandIsNotConstructed = errors.New(
	"ReviewDeliveryRequestCommand must be created via NewReviewDeliveryRequestCommand constructor",
)

// ReviewDeliveryRequestCommand is the supervisor's decision on a delivery request.
type ReviewDeliveryRequestCommand struct {
	actor     workflow.Actor
	requestID kernel.UUID
	adviceID  kernel.UUID
	decision  workflow.Action
	note      string

	guard guard.ConstructorGuard
}

func NewReviewDeliveryRequestCommand(
	actor workflow.Actor,
	requestID kernel.UUID,
	decision workflow.Action,
	note string,
) (ReviewDeliveryRequestCommand, error) {
	if err := errors.Join(actor.Validate(), requestID.Validate()); err != nil {
		return ReviewDeliveryRequestCommand{}, err
	}
	if err := checkDecision(decision, workflow.ActionApprove, workflow.ActionReject); err != nil {
		return ReviewDeliveryRequestCommand{}, err
	}
	return ReviewDeliveryRequestCommand{
		actor:     actor,
		requestID: requestID,
		adviceID:  kernel.NewUUID(),
		decision:  decision,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrReviewDeliveryRequestCommandIsNotConstructed)
}

func (c ReviewDeliveryRequestCommand) Actor() workflow.Actor { return c.actor }
func (c ReviewDeliveryRequestCommand) RequestID() kernel.UUID { return c.requestID }
func (c ReviewDeliveryRequestCommand) Decision() workflow.Action { return c.decision }
func (c ReviewDeliveryRequestCommand) Note() string { return c.note }

// AdviceID is the identifier of the advice issued on approval.
func (c ReviewDeliveryRequestCommand) AdviceID() kernel.UUID { return c.adviceID }
