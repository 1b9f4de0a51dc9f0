package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrCancelBookingCommandIsNotConstructed = errors.New("CancelBookingCommand must be created via NewCancelBookingCommand constructor")

type CancelBookingCommand struct {
	actor     workflow.Actor
	bookingID kernel.UUID
	note      string

	guard guard.ConstructorGuard
}

func NewCancelBookingCommand(actor workflow.Actor, bookingID kernel.UUID, note string) (CancelBookingCommand, error) {
	if err := errors.Join(actor.Validate(), bookingID.Validate()); err != nil {
		return CancelBookingCommand{}, err
	}
	return CancelBookingCommand{
		actor:     actor,
		bookingID: bookingID,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

func (c CancelBookingCommand) Actor() workflow.Actor { return c.actor }
func (c CancelBookingCommand) BookingID() kernel.UUID { return c.bookingID }
func (c CancelBookingCommand) Note() string { return c.note }
