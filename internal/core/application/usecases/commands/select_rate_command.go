package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrSelectRateCommandIsNotConstructed = errors.New("SelectRateCommand must be created via NewSelectRateCommand constructor")

// SelectRateCommand picks the winning rate of a quote and assigns the quote to
// a sales support user. Without a sales user the acting user takes the quote.
type SelectRateCommand struct {
	actor       workflow.Actor
	rateID      kernel.UUID
	salesUserID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewSelectRateCommand(actor workflow.Actor, rateID kernel.UUID, salesUserID *kernel.UUID) (SelectRateCommand, error) {
	if err := errors.Join(actor.Validate(), rateID.Validate()); err != nil {
		return SelectRateCommand{}, err
	}
	if salesUserID != nil {
		if err := salesUserID.Validate(); err != nil {
			return SelectRateCommand{}, err
		}
	}
	return SelectRateCommand{
		actor:       actor,
		rateID:      rateID,
		salesUserID: salesUserID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SelectRateCommand) Validate() error {
	return c.guard.Validate(ErrSelectRateCommandIsNotConstructed)
}

func (c SelectRateCommand) Actor() workflow.Actor {
	return c.actor
}

func (c SelectRateCommand) RateID() kernel.UUID {
	return c.rateID
}

// Assignee is the sales user to hand the quote to, or the actor.
func (c SelectRateCommand) Assignee() kernel.UUID {
	if c.salesUserID != nil {
		return *c.salesUserID
	}
	return c.actor.ID()
}
