// Package invoicerepo persists invoices raised after delivery.
package invoicerepo

import (
	"time"

	"procurement/internal/core/domain/model/invoice"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BookingID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	QuoteID          uuid.UUID       `gorm:"type:uuid;not null"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	WarehouseID      uuid.UUID       `gorm:"type:uuid;not null"`
	Amount           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DueDate          time.Time       `gorm:"index;not null"`
	Status           string          `gorm:"index;not null"`
	CreatedAt        time.Time       `gorm:"autoCreateTime:false;not null"`
	PaymentReference string
	PaidAt           *time.Time
}

func (InvoiceDTO) TableName() string {
	return "invoices"
}

func fromDomain(i *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:               i.ID().Bytes(),
		BookingID:        i.BookingID().Bytes(),
		QuoteID:          i.QuoteID().Bytes(),
		CustomerID:       i.CustomerID().Bytes(),
		WarehouseID:      i.WarehouseID().Bytes(),
		Amount:           i.Amount().Decimal(),
		DueDate:          i.DueDate(),
		Status:           i.Status().String(),
		CreatedAt:        i.CreatedAt(),
		PaymentReference: i.PaymentReference(),
		PaidAt:           i.PaidAt(),
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	ids := make([]kernel.UUID, 0, 5)
	for _, raw := range []uuid.UUID{dto.ID, dto.BookingID, dto.QuoteID, dto.CustomerID, dto.WarehouseID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}
	status, err := invoice.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var paidAt *time.Time
	if dto.PaidAt != nil {
		at := dto.PaidAt.UTC()
		paidAt = &at
	}

	return invoice.RestoreInvoice(invoice.Snapshot{
		ID:               ids[0],
		BookingID:        ids[1],
		QuoteID:          ids[2],
		CustomerID:       ids[3],
		WarehouseID:      ids[4],
		Amount:           amount,
		DueDate:          dto.DueDate,
		Status:           status,
		PaymentReference: dto.PaymentReference,
		PaidAt:           paidAt,
		CreatedAt:        dto.CreatedAt,
	})
}
