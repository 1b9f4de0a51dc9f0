package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrSubmitCartingDetailCommandIsNotConstructed = errors.New(
	"SubmitCartingDetailCommand must be created via NewSubmitCartingDetailCommand constructor",
)

// SubmitCartingDetailCommand carries the vehicle and staging area the
// warehouse arranged for an approved cargo dispatch.
type SubmitCartingDetailCommand struct {
	actor         workflow.Actor
	cargoID       kernel.UUID
	cartingID     kernel.UUID
	vehicleNumber string
	stagingArea   string

	guard guard.ConstructorGuard
}

func NewSubmitCartingDetailCommand(
	actor workflow.Actor,
	cargoID kernel.UUID,
	vehicleNumber, stagingArea string,
) (SubmitCartingDetailCommand, error) {
	if err := errors.Join(actor.Validate(), cargoID.Validate()); err != nil {
		return SubmitCartingDetailCommand{}, err
	}
	return SubmitCartingDetailCommand{
		actor:         actor,
		cargoID:       cargoID,
		cartingID:     kernel.NewUUID(),
		vehicleNumber: vehicleNumber,
		stagingArea:   stagingArea,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitCartingDetailCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCartingDetailCommandIsNotConstructed)
}

func (c SubmitCartingDetailCommand) Actor() workflow.Actor { return c.actor }
func (c SubmitCartingDetailCommand) CargoID() kernel.UUID { return c.cargoID }
func (c SubmitCartingDetailCommand) CartingID() kernel.UUID { return c.cartingID }
func (c SubmitCartingDetailCommand) VehicleNumber() string { return c.vehicleNumber }
func (c SubmitCartingDetailCommand) StagingArea() string { return c.stagingArea }
