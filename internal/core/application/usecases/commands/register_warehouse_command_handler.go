package commands

import (
	"context"

	"procurement/internal/core/domain/model/warehouse"
	"procurement/internal/core/domain/model/workflow"
)

type RegisterWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

func NewRegisterWarehouseCommandHandler(uowFactory WarehouseUoWFactory) RegisterWarehouseCommandHandler {
	return RegisterWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterWarehouseCommandHandler) Handle(ctx context.Context, cmd RegisterWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := workflow.AuthorizeOnboarding(cmd.Actor()); err != nil {
		return err
	}

	w, err := warehouse.NewWarehouse(
		cmd.WarehouseID(),
		cmd.Name(),
		cmd.Location(),
		cmd.Capacity(),
		cmd.ContactEmail(),
		cmd.OperatorID(),
		utcNow(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WarehouseRepository().Add(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
