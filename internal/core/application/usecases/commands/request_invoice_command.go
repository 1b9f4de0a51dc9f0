package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrRequestInvoiceCommandIsNotConstructed = errors.New(
	"RequestInvoiceCommand must be created via NewRequestInvoiceCommand constructor",
)

// RequestInvoiceCommand asks for the bill of a delivered booking.
type RequestInvoiceCommand struct {
	actor     workflow.Actor
	bookingID kernel.UUID
	invoiceID kernel.UUID
	dueInDays int

	guard guard.ConstructorGuard
}

// NewRequestInvoiceCommand creates the command. dueInDays of zero picks the default term.
func NewRequestInvoiceCommand(actor workflow.Actor, bookingID kernel.UUID, dueInDays int) (RequestInvoiceCommand, error) {
	if err := errors.Join(actor.Validate(), bookingID.Validate()); err != nil {
		return RequestInvoiceCommand{}, err
	}
	return RequestInvoiceCommand{
		actor:     actor,
		bookingID: bookingID,
		invoiceID: kernel.NewUUID(),
		dueInDays: dueInDays,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RequestInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrRequestInvoiceCommandIsNotConstructed)
}

func (c RequestInvoiceCommand) Actor() workflow.Actor { return c.actor }
func (c RequestInvoiceCommand) BookingID() kernel.UUID { return c.bookingID }
func (c RequestInvoiceCommand) InvoiceID() kernel.UUID { return c.invoiceID }
func (c RequestInvoiceCommand) DueInDays() int { return c.dueInDays }
