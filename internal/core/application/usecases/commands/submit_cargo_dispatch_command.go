package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrSubmitCargoDispatchCommandIsNotConstructed = errors.New(
	"SubmitCargoDispatchCommand must be created via NewSubmitCargoDispatchCommand constructor",
)

// SubmitCargoDispatchCommand carries the customer's description of the goods
// sent to the warehouse under a booking.
type SubmitCargoDispatchCommand struct {
	actor       workflow.Actor
	bookingID   kernel.UUID
	cargoID     kernel.UUID
	description string
	packages    int
	weightKg    float64

	guard guard.ConstructorGuard
}

func NewSubmitCargoDispatchCommand(
	actor workflow.Actor,
	bookingID kernel.UUID,
	description string,
	packages int,
	weightKg float64,
) (SubmitCargoDispatchCommand, error) {
	if err := errors.Join(actor.Validate(), bookingID.Validate()); err != nil {
		return SubmitCargoDispatchCommand{}, err
	}
	return SubmitCargoDispatchCommand{
		actor:       actor,
		bookingID:   bookingID,
		cargoID:     kernel.NewUUID(),
		description: description,
		packages:    packages,
		weightKg:    weightKg,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitCargoDispatchCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCargoDispatchCommandIsNotConstructed)
}

func (c SubmitCargoDispatchCommand) Actor() workflow.Actor { return c.actor }
func (c SubmitCargoDispatchCommand) BookingID() kernel.UUID { return c.bookingID }
func (c SubmitCargoDispatchCommand) CargoID() kernel.UUID { return c.cargoID }
func (c SubmitCargoDispatchCommand) Description() string { return c.description }
func (c SubmitCargoDispatchCommand) Packages() int { return c.packages }
func (c SubmitCargoDispatchCommand) WeightKg() float64 { return c.weightKg }
