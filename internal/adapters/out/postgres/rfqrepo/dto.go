// Package rfqrepo persists requests for quotation and the rates warehouses
// submit against them.
package rfqrepo

import (
	"database/sql/driver"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/rfq"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Notes is stored as a text[] on postgres and as its array literal elsewhere.
type Notes []string

func (Notes) GormDataType() string {
	return "text"
}

func (Notes) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func (n Notes) Value() (driver.Value, error) {
	return pq.StringArray(n).Value()
}

func (n *Notes) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*n = Notes(arr)
	return nil
}

type RFQDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	QuoteID     uuid.UUID `gorm:"type:uuid;index;not null"`
	WarehouseID uuid.UUID `gorm:"type:uuid;index;not null"`
	Status      string    `gorm:"not null"`
	ValidUntil  time.Time `gorm:"not null"`
	Notes       Notes
	CreatedAt   time.Time `gorm:"autoCreateTime:false;not null"`
}

func (RFQDTO) TableName() string {
	return "rfqs"
}

// RateDTO is one warehouse offer. At most one rate per quote can be accepted,
// which the partial unique index enforces.
type RateDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RFQID       uuid.UUID       `gorm:"column:rfq_id;type:uuid;index;not null"`
	QuoteID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_rates_one_accepted,unique,where:status = 'accepted'"`
	WarehouseID uuid.UUID       `gorm:"type:uuid;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status      string          `gorm:"not null;index:idx_rates_one_accepted,unique"`
	CreatedAt   time.Time       `gorm:"autoCreateTime:false;not null"`
	Terms       string
}

func (RateDTO) TableName() string {
	return "rates"
}

func rfqFromDomain(r *rfq.RFQ) RFQDTO {
	return RFQDTO{
		ID:          r.ID().Bytes(),
		QuoteID:     r.QuoteID().Bytes(),
		WarehouseID: r.WarehouseID().Bytes(),
		Status:      r.Status().String(),
		ValidUntil:  r.ValidUntil(),
		Notes:       Notes(r.Notes()),
		CreatedAt:   r.CreatedAt(),
	}
}

func rfqToDomain(dto RFQDTO) (*rfq.RFQ, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	quoteID, err := kernel.UUIDFromBytes(dto.QuoteID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}
	status, err := rfq.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return rfq.RestoreRFQ(id, quoteID, warehouseID, status, dto.ValidUntil, []string(dto.Notes), dto.CreatedAt)
}

func rateFromDomain(r *rfq.Rate) RateDTO {
	return RateDTO{
		ID:          r.ID().Bytes(),
		RFQID:       r.RFQID().Bytes(),
		QuoteID:     r.QuoteID().Bytes(),
		WarehouseID: r.WarehouseID().Bytes(),
		Amount:      r.Amount().Decimal(),
		Status:      r.Status().String(),
		CreatedAt:   r.CreatedAt(),
		Terms:       r.Terms(),
	}
}

func rateToDomain(dto RateDTO) (*rfq.Rate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	rfqID, err := kernel.UUIDFromBytes(dto.RFQID[:])
	if err != nil {
		return nil, err
	}
	quoteID, err := kernel.UUIDFromBytes(dto.QuoteID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}
	status, err := rfq.ParseRateStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return rfq.RestoreRate(id, rfqID, quoteID, warehouseID, amount, dto.Terms, status, dto.CreatedAt)
}
