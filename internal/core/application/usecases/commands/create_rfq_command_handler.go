package commands

import (
	"context"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/domain/model/warehouse"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
)

// CreateRFQCommandHandler fans a quote out to candidate warehouses (C3).
type CreateRFQCommandHandler struct {
	uowFactory NegotiationUoWFactory
	announcer  Announcer
}

func NewCreateRFQCommandHandler(uowFactory NegotiationUoWFactory, announcer Announcer) CreateRFQCommandHandler {
	return CreateRFQCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

// Handle creates one sent RFQ per warehouse and notifies each warehouse
// contact after commit. A warehouse that still has an open RFQ for the
// quote makes the whole request a Conflict.
func (h CreateRFQCommandHandler) Handle(ctx context.Context, cmd CreateRFQCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.Authorize(cmd.Actor(), workflow.StepRFQSent); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	q, err := lockQuote(ctx, uow.QuoteRepository(), cmd.QuoteID(), cmd.Actor())
	if err != nil {
		return err
	}

	warehouses, err := h.loadWarehouses(ctx, uow, cmd.WarehouseIDs())
	if err != nil {
		return err
	}

	existing, err := uow.RFQRepository().ListByQuote(ctx, q.ID())
	if err != nil {
		return err
	}
	for _, r := range existing {
		if _, requested := warehouses[r.WarehouseID()]; requested && r.Status().IsActive() {
			return errs.NewConflictErrorWithCause(
				"rfq",
				"warehouse already has an open rfq for this quote",
				fmt.Errorf("warehouse %s", r.WarehouseID().String()),
			)
		}
	}

	now := utcNow()
	if err = q.SendRFQs(cmd.Actor(), cmd.Note(), now); err != nil {
		return err
	}

	for _, id := range cmd.WarehouseIDs() {
		r, rfqErr := rfq.NewRFQ(kernel.NewUUID(), q.ID(), id, cmd.ValidUntil(), now)
		if rfqErr != nil {
			return rfqErr
		}
		if err = uow.RFQRepository().Add(ctx, r); err != nil {
			return err
		}
	}

	if err = uow.QuoteRepository().Update(ctx, q); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, id := range cmd.WarehouseIDs() {
		n := notice(q, workflow.StepRFQSent, workflow.ActionSubmit, cmd.Note())
		n.WarehouseEmail = warehouses[id].ContactEmail()
		h.announcer.Announce(ctx, n)
	}
	return nil
}

func (h CreateRFQCommandHandler) loadWarehouses(
	ctx context.Context,
	uow NegotiationUoW,
	ids []kernel.UUID,
) (map[kernel.UUID]*warehouse.Warehouse, error) {
	found, err := uow.WarehouseRepository().GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[kernel.UUID]*warehouse.Warehouse, len(found))
	for _, w := range found {
		byID[w.ID()] = w
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, errs.NewObjectNotFoundError("warehouse", id.String())
		}
	}
	return byID, nil
}
