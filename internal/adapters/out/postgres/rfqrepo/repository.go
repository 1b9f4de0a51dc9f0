package rfqrepo

import (
	"context"
	"errors"

	"procurement/internal/adapters/out/postgres/pgerr"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormRFQRepository implements RFQRepository using GORM.
type GormRFQRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormRFQRepository(db *gorm.DB, tracker aggregateTracker) *GormRFQRepository {
	return &GormRFQRepository{db: db, tracker: tracker}
}

func (r *GormRFQRepository) Add(ctx context.Context, aggregate *rfq.RFQ) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := rfqFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("rfq", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRFQRepository) Update(ctx context.Context, aggregate *rfq.RFQ) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := rfqFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RFQDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRFQRepository) Get(ctx context.Context, id kernel.UUID) (*rfq.RFQ, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RFQDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rfq", id.String())
		}
		return nil, err
	}

	return rfqToDomain(dto)
}

func (r *GormRFQRepository) ListByQuote(ctx context.Context, quoteID kernel.UUID) ([]*rfq.RFQ, error) {
	var dtos []RFQDTO
	if err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	rfqs := make([]*rfq.RFQ, 0, len(dtos))
	for _, dto := range dtos {
		item, err := rfqToDomain(dto)
		if err != nil {
			return nil, err
		}
		rfqs = append(rfqs, item)
	}
	return rfqs, nil
}

// GormRateRepository implements RateRepository using GORM.
type GormRateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormRateRepository(db *gorm.DB, tracker aggregateTracker) *GormRateRepository {
	return &GormRateRepository{db: db, tracker: tracker}
}

func (r *GormRateRepository) Add(ctx context.Context, aggregate *rfq.Rate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := rateFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("rate", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update fails with a Conflict when it would leave two accepted rates on one quote.
func (r *GormRateRepository) Update(ctx context.Context, aggregate *rfq.Rate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := rateFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RateDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate("rate", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRateRepository) Get(ctx context.Context, id kernel.UUID) (*rfq.Rate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rate", id.String())
		}
		return nil, err
	}

	return rateToDomain(dto)
}

func (r *GormRateRepository) ListByQuote(ctx context.Context, quoteID kernel.UUID) ([]*rfq.Rate, error) {
	var dtos []RateDTO
	if err := r.db.WithContext(ctx).
		Where("quote_id = ?", quoteID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	rates := make([]*rfq.Rate, 0, len(dtos))
	for _, dto := range dtos {
		rate, err := rateToDomain(dto)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, nil
}
