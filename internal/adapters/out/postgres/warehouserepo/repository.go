// Package warehouserepo persists the warehouses RFQs are sent to.
package warehouserepo

import (
	"context"
	"errors"

	"procurement/internal/adapters/out/postgres/pgerr"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/warehouse"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWarehouseRepository implements WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormWarehouseRepository(db *gorm.DB, tracker aggregateTracker) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("warehouse", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany returns the warehouses in the order of ids. Duplicated ids are
// returned once.
func (r *GormWarehouseRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*warehouse.Warehouse, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]WarehouseDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	result := make([]*warehouse.Warehouse, 0, len(dtos))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		key := id.Bytes()
		if seen[key] {
			continue
		}
		seen[key] = true

		dto, ok := byID[key]
		if !ok {
			return nil, errs.NewObjectNotFoundError("warehouse", id.String())
		}
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	return result, nil
}
