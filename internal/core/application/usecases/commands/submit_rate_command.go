package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrSubmitRateCommandIsNotConstructed = errors.New("SubmitRateCommand must be created via NewSubmitRateCommand constructor")

// SubmitRateCommand is a warehouse's answer to an RFQ.
type SubmitRateCommand struct {
	actor  workflow.Actor
	rateID kernel.UUID
	rfqID  kernel.UUID
	amount kernel.Money
	terms  string

	guard guard.ConstructorGuard
}

func NewSubmitRateCommand(actor workflow.Actor, rfqID kernel.UUID, amount kernel.Money, terms string) (SubmitRateCommand, error) {
	if err := errors.Join(actor.Validate(), rfqID.Validate(), amount.ValidatePositive("amount")); err != nil {
		return SubmitRateCommand{}, err
	}
	return SubmitRateCommand{
		actor:  actor,
		rateID: kernel.NewUUID(),
		rfqID:  rfqID,
		amount: amount,
		terms:  terms,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitRateCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRateCommandIsNotConstructed)
}

func (c SubmitRateCommand) Actor() workflow.Actor {
	return c.actor
}

// RateID returns the identifier the rate is created with.
func (c SubmitRateCommand) RateID() kernel.UUID {
	return c.rateID
}

func (c SubmitRateCommand) RFQID() kernel.UUID {
	return c.rfqID
}

func (c SubmitRateCommand) Amount() kernel.Money {
	return c.amount
}

func (c SubmitRateCommand) Terms() string {
	return c.terms
}
