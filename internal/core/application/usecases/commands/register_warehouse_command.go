package commands

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrRegisterWarehouseCommandIsNotConstructed = errors.New(
	"RegisterWarehouseCommand must be created via NewRegisterWarehouseCommand constructor",
)

// RegisterWarehouseCommand onboards a candidate warehouse and maps it to the
// warehouse user who operates it.
type RegisterWarehouseCommand struct {
	actor        workflow.Actor
	warehouseID  kernel.UUID
	name         string
	location     string
	capacity     int
	contactEmail string
	operatorID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewRegisterWarehouseCommand(
	actor workflow.Actor,
	name, location string,
	capacity int,
	contactEmail string,
	operatorID kernel.UUID,
) (RegisterWarehouseCommand, error) {
	var problems []error
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if strings.TrimSpace(contactEmail) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("contactEmail"))
	}
	if err := errors.Join(append(problems, actor.Validate(), operatorID.Validate())...); err != nil {
		return RegisterWarehouseCommand{}, err
	}
	return RegisterWarehouseCommand{
		actor:        actor,
		warehouseID:  kernel.NewUUID(),
		name:         name,
		location:     location,
		capacity:     capacity,
		contactEmail: contactEmail,
		operatorID:   operatorID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrRegisterWarehouseCommandIsNotConstructed)
}

func (c RegisterWarehouseCommand) Actor() workflow.Actor { return c.actor }
func (c RegisterWarehouseCommand) WarehouseID() kernel.UUID { return c.warehouseID }
func (c RegisterWarehouseCommand) Name() string { return c.name }
func (c RegisterWarehouseCommand) Location() string { return c.location }
func (c RegisterWarehouseCommand) Capacity() int { return c.capacity }
func (c RegisterWarehouseCommand) ContactEmail() string { return c.contactEmail }
func (c RegisterWarehouseCommand) OperatorID() kernel.UUID { return c.operatorID }
