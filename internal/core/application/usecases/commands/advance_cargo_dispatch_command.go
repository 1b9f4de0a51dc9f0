package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrAdvanceCargoDispatchCommandIsNotConstructed = errors.New(
	"AdvanceCargoDispatchCommand must be created via NewAdvanceCargoDispatchCommand constructor",
)

// AdvanceCargoDispatchCommand moves an approved cargo dispatch to processing
// (action process) or a processing one to completed (action complete).
type AdvanceCargoDispatchCommand struct {
	actor   workflow.Actor
	cargoID kernel.UUID
	action  workflow.Action

	guard guard.ConstructorGuard
}

func NewAdvanceCargoDispatchCommand(actor workflow.Actor, cargoID kernel.UUID, action workflow.Action) (AdvanceCargoDispatchCommand, error) {
	if err := errors.Join(actor.Validate(), cargoID.Validate()); err != nil {
		return AdvanceCargoDispatchCommand{}, err
	}
	if err := checkDecision(action, workflow.ActionProcess, workflow.ActionComplete); err != nil {
		return AdvanceCargoDispatchCommand{}, err
	}
	return AdvanceCargoDispatchCommand{
		actor:   actor,
		cargoID: cargoID,
		action:  action,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceCargoDispatchCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceCargoDispatchCommandIsNotConstructed)
}

func (c AdvanceCargoDispatchCommand) Actor() workflow.Actor { return c.actor }
func (c AdvanceCargoDispatchCommand) CargoID() kernel.UUID { return c.cargoID }
func (c AdvanceCargoDispatchCommand) Action() workflow.Action { return c.action }
