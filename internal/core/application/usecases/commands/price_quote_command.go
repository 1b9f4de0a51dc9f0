package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrPriceQuoteCommandIsNotConstructed = errors.New(
	"PriceQuoteCommand must be created via NewPriceQuoteCommand constructor",
)

// PriceQuoteCommand sets the final price sales support offers the customer.
type PriceQuoteCommand struct {
	actor   workflow.Actor
	quoteID kernel.UUID
	price   kernel.Money
	note    string

	guard guard.ConstructorGuard
}

func NewPriceQuoteCommand(actor workflow.Actor, quoteID kernel.UUID, price kernel.Money, note string) (PriceQuoteCommand, error) {
	if err := errors.Join(actor.Validate(), quoteID.Validate(), price.ValidatePositive("price")); err != nil {
		return PriceQuoteCommand{}, err
	}
	return PriceQuoteCommand{
		actor:   actor,
		quoteID: quoteID,
		price:   price,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PriceQuoteCommand) Validate() error {
	return c.guard.Validate(ErrPriceQuoteCommandIsNotConstructed)
}

func (c PriceQuoteCommand) Actor() workflow.Actor {
	return c.actor
}

func (c PriceQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c PriceQuoteCommand) Price() kernel.Money {
	return c.price
}

func (c PriceQuoteCommand) Note() string {
	return c.note
}
