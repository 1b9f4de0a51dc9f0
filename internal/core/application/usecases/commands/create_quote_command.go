package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrCreateQuoteCommandIsNotConstructed = errors.New(
	"CreateQuoteCommand must be created via NewCreateQuoteCommand constructor",
)

// CreateQuoteCommand represents a customer's request for storage space.
//
// Example:
//
//	cmd, err := NewCreateQuoteCommand(actor, quote.Details{
//	    CustomerEmail: "ops@acme.test",
//	    SpaceRequired: 500,
//	    Duration:      "3 months",
//	    Location:      "Chennai",
//	}, quote.FlowStandard)
//	if err != nil {
//	    return fmt.Errorf("invalid quote request: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateQuoteCommand struct {
	quoteID kernel.UUID
	actor   workflow.Actor
	details quote.Details
	flow    quote.FlowType

	guard guard.ConstructorGuard
}

// NewCreateQuoteCommand validates the request and assigns the new quote id.
func NewCreateQuoteCommand(actor workflow.Actor, details quote.Details, flow quote.FlowType) (CreateQuoteCommand, error) {
	parsedFlow, flowErr := quote.ParseFlowType(flow.String())
	if err := errors.Join(actor.Validate(), details.Validate(), flowErr); err != nil {
		return CreateQuoteCommand{}, err
	}
	return CreateQuoteCommand{
		quoteID: kernel.NewUUID(),
		actor:   actor,
		details: details,
		flow:    parsedFlow,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateQuoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuoteCommandIsNotConstructed)
}

// QuoteID returns the identifier the quote is created with.
func (c CreateQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c CreateQuoteCommand) Actor() workflow.Actor {
	return c.actor
}

func (c CreateQuoteCommand) Details() quote.Details {
	return c.details
}

func (c CreateQuoteCommand) Flow() quote.FlowType {
	return c.flow
}
