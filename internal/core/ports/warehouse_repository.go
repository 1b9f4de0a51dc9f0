package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/warehouse"
)

// WarehouseRepository persists the candidate warehouses RFQs are sent to.
type WarehouseRepository interface {
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetMany loads every listed warehouse. A missing id fails with NotFound.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*warehouse.Warehouse, error)
}
