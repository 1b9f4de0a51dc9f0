package commands

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrCreateRFQCommandIsNotConstructed = errors.New("CreateRFQCommand must be created via NewCreateRFQCommand constructor")

// CreateRFQCommand sends a quote out for rates to one or more warehouses.
type CreateRFQCommand struct {
	actor        workflow.Actor
	quoteID      kernel.UUID
	warehouseIDs []kernel.UUID
	validUntil   *time.Time
	note         string

	guard guard.ConstructorGuard
}

// NewCreateRFQCommand requires a non-empty list of distinct warehouses.
// A nil validUntil leaves the default deadline to the RFQ.
func NewCreateRFQCommand(
	actor workflow.Actor,
	quoteID kernel.UUID,
	warehouseIDs []kernel.UUID,
	validUntil *time.Time,
	note string,
) (CreateRFQCommand, error) {
	if err := errors.Join(actor.Validate(), quoteID.Validate()); err != nil {
		return CreateRFQCommand{}, err
	}
	if len(warehouseIDs) == 0 {
		return CreateRFQCommand{}, errs.NewValueIsRequiredError("warehouseIds")
	}

	seen := make(map[kernel.UUID]struct{}, len(warehouseIDs))
	ids := make([]kernel.UUID, 0, len(warehouseIDs))
	for _, id := range warehouseIDs {
		if err := id.Validate(); err != nil {
			return CreateRFQCommand{}, err
		}
		if _, dup := seen[id]; dup {
			return CreateRFQCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"warehouseIds", fmt.Errorf("warehouse %s is listed twice", id.String()))
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return CreateRFQCommand{
		actor:        actor,
		quoteID:      quoteID,
		warehouseIDs: ids,
		validUntil:   validUntil,
		note:         note,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRFQCommand) Validate() error {
	return c.guard.Validate(ErrCreateRFQCommandIsNotConstructed)
}

func (c CreateRFQCommand) Actor() workflow.Actor {
	return c.actor
}

func (c CreateRFQCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c CreateRFQCommand) WarehouseIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.warehouseIDs...)
}

func (c CreateRFQCommand) ValidUntil() *time.Time {
	return c.validUntil
}

func (c CreateRFQCommand) Note() string {
	return c.note
}
