package warehouserepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO is a candidate warehouse. OperatorID is the user acting for it.
type WarehouseDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Location     string    `gorm:"not null"`
	Capacity     int       `gorm:"not null"`
	ContactEmail string    `gorm:"not null"`
	OperatorID   uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false;not null"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:           w.ID().Bytes(),
		Name:         w.Name(),
		Location:     w.Location(),
		Capacity:     w.Capacity(),
		ContactEmail: w.ContactEmail(),
		OperatorID:   w.OperatorID().Bytes(),
		CreatedAt:    w.CreatedAt(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	operatorID, err := kernel.UUIDFromBytes(dto.OperatorID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, dto.Name, dto.Location, dto.Capacity, dto.ContactEmail, operatorID, dto.CreatedAt.UTC())
}
