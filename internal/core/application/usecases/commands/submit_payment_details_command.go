package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrSubmitPaymentDetailsCommandIsNotConstructed = errors.New(
	"SubmitPaymentDetailsCommand must be created via NewSubmitPaymentDetailsCommand constructor",
)

// SubmitPaymentDetailsCommand settles an invoice.
type SubmitPaymentDetailsCommand struct {
	actor     workflow.Actor
	invoiceID kernel.UUID
	reference string

	guard guard.ConstructorGuard
}

func NewSubmitPaymentDetailsCommand(actor workflow.Actor, invoiceID kernel.UUID, reference string) (SubmitPaymentDetailsCommand, error) {
	if err := errors.Join(actor.Validate(), invoiceID.Validate()); err != nil {
		return SubmitPaymentDetailsCommand{}, err
	}
	return SubmitPaymentDetailsCommand{
		actor:     actor,
		invoiceID: invoiceID,
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitPaymentDetailsCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPaymentDetailsCommandIsNotConstructed)
}

func (c SubmitPaymentDetailsCommand) Actor() workflow.Actor { return c.actor }
func (c SubmitPaymentDetailsCommand) InvoiceID() kernel.UUID { return c.invoiceID }
func (c SubmitPaymentDetailsCommand) Reference() string { return c.reference }
