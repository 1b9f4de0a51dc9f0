package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrReviewInvoiceCommandIsNotConstructed = errors.New(
	"ReviewInvoiceCommand must be created via NewReviewInvoiceCommand constructor",
)

// ReviewInvoiceCommand approves a draft invoice for sending or cancels it.
type ReviewInvoiceCommand struct {
	actor     workflow.Actor
	invoiceID kernel.UUID
	decision  workflow.Action
	note      string

	guard guard.ConstructorGuard
}

func NewReviewInvoiceCommand(
	actor workflow.Actor,
	invoiceID kernel.UUID,
	decision workflow.Action,
	note string,
) (ReviewInvoiceCommand, error) {
	if err := errors.Join(actor.Validate(), invoiceID.Validate()); err != nil {
		return ReviewInvoiceCommand{}, err
	}
	if err := checkDecision(decision, workflow.ActionApprove, workflow.ActionReject); err != nil {
		return ReviewInvoiceCommand{}, err
	}
	return ReviewInvoiceCommand{
		actor:     actor,
		invoiceID: invoiceID,
		decision:  decision,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrReviewInvoiceCommandIsNotConstructed)
}

func (c ReviewInvoiceCommand) Actor() workflow.Actor { return c.actor }
func (c ReviewInvoiceCommand) InvoiceID() kernel.UUID { return c.invoiceID }
func (c ReviewInvoiceCommand) Decision() workflow.Action { return c.decision }
func (c ReviewInvoiceCommand) Note() string { return c.note }
