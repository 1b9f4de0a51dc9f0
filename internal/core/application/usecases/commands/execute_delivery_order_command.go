package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrExecuteDeliveryOrderCommandIsNotConstructed = errors.New(
	"ExecuteDeliveryOrderCommand must be created via NewExecuteDeliveryOrderCommand constructor",
)

// ExecuteDeliveryOrderCommand records that the goods left the warehouse.
type ExecuteDeliveryOrderCommand struct {
	actor   workflow.Actor
	orderID kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

func NewExecuteDeliveryOrderCommand(actor workflow.Actor, orderID kernel.UUID, note string) (ExecuteDeliveryOrderCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return ExecuteDeliveryOrderCommand{}, err
	}
	return ExecuteDeliveryOrderCommand{
		actor:   actor,
		orderID: orderID,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ExecuteDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrExecuteDeliveryOrderCommandIsNotConstructed)
}

func (c ExecuteDeliveryOrderCommand) Actor() workflow.Actor { return c.actor }
func (c ExecuteDeliveryOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c ExecuteDeliveryOrderCommand) Note() string { return c.note }
