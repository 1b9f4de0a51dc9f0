package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrCreateDeliveryOrderCommandIsNotConstructed = errors.New(
	"CreateDeliveryOrderCommand must be created via NewCreateDeliveryOrderCommand constructor",
)

// CreateDeliveryOrderCommand issues the delivery order of an advice.
type CreateDeliveryOrderCommand struct {
	actor    workflow.Actor
	adviceID kernel.UUID
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateDeliveryOrderCommand(actor workflow.Actor, adviceID kernel.UUID) (CreateDeliveryOrderCommand, error) {
	if err := errors.Join(actor.Validate(), adviceID.Validate()); err != nil {
		return CreateDeliveryOrderCommand{}, err
	}
	return CreateDeliveryOrderCommand{
		actor:    actor,
		adviceID: adviceID,
		orderID:  kernel.NewUUID(),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryOrderCommandIsNotConstructed)
}

func (c CreateDeliveryOrderCommand) Actor() workflow.Actor { return c.actor }
func (c CreateDeliveryOrderCommand) AdviceID() kernel.UUID { return c.adviceID }
func (c CreateDeliveryOrderCommand) OrderID() kernel.UUID { return c.orderID }
