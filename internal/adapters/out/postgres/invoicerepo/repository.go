package invoicerepo

import (
	"context"
	"time"

	"procurement/internal/adapters/out/postgres/pgerr"
	"procurement/internal/core/domain/model/invoice"
	"procurement/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("invoice", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InvoiceDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.NotFound("invoice", id.String(), err)
	}

	return toDomain(dto)
}

func (r *GormInvoiceRepository) ListByBooking(ctx context.Context, bookingID kernel.UUID) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

// ListDue returns sent invoices past their due date, oldest due first.
func (r *GormInvoiceRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", invoice.Sent.String(), now.UTC()).
		Order("due_date, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

func toDomainAll(dtos []InvoiceDTO) ([]*invoice.Invoice, error) {
	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}
