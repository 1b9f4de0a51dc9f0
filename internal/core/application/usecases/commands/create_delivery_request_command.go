package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrCreateDeliveryRequestCommandIsNotConstructed = errors.New(
	"CreateDeliveryRequestCommand must be created via NewCreateDeliveryRequestCommand constructor",
)

// CreateDeliveryRequestCommand asks for the goods of a booking to be delivered.
type CreateDeliveryRequestCommand struct {
	actor         workflow.Actor
	bookingID     kernel.UUID
	requestID     kernel.UUID
	destination   string
	preferredDate *time.Time
	notes         string

	guard guard.ConstructorGuard
}

func NewCreateDeliveryRequestCommand(
	actor workflow.Actor,
	bookingID kernel.UUID,
	destination string,
	preferredDate *time.Time,
	notes string,
) (CreateDeliveryRequestCommand, error) {
	if err := errors.Join(actor.Validate(), bookingID.Validate()); err != nil {
		return CreateDeliveryRequestCommand{}, err
	}
	return CreateDeliveryRequestCommand{
		actor:         actor,
		bookingID:     bookingID,
		requestID:     kernel.NewUUID(),
		destination:   destination,
		preferredDate: preferredDate,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryRequestCommandIsNotConstructed)
}

func (c CreateDeliveryRequestCommand) Actor() workflow.Actor { return c.actor }
func (c CreateDeliveryRequestCommand) BookingID() kernel.UUID { return c.bookingID }
func (c CreateDeliveryRequestCommand) RequestID() kernel.UUID { return c.requestID }
func (c CreateDeliveryRequestCommand) Destination() string { return c.destination }
func (c CreateDeliveryRequestCommand) PreferredDate() *time.Time { return c.preferredDate }
func (c CreateDeliveryRequestCommand) Notes() string { return c.notes }
