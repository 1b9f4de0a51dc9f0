package quoterepo

import (
	"context"
	"errors"

	"procurement/internal/adapters/out/postgres/pgerr"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormQuoteRepository implements QuoteRepository using GORM.
type GormQuoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormQuoteRepository(db *gorm.DB, tracker aggregateTracker) *GormQuoteRepository {
	return &GormQuoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the quote row and its creation event.
func (r *GormQuoteRepository) Add(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("quote", err)
	}
	if err := r.appendEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column and appends the pending events. The row is only
// matched while its stored history length equals the one the aggregate was
// loaded with, so a concurrent append turns into a Conflict.
func (r *GormQuoteRepository) Update(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&QuoteDTO{}).
		Where("id = ? AND history_length = ?", dto.ID, aggregate.StoredHistoryLength()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&QuoteDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("quote", aggregate.ID().String())
		}
		return errs.NewConflictError("quote", "history was changed by another writer")
	}

	if err := r.appendEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate takes a row lock on the quote. SQLite has no row locks and
// relies on its single writer instead.
func (r *GormQuoteRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormQuoteRepository) History(ctx context.Context, id kernel.UUID) ([]workflow.Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	if err := r.db.WithContext(ctx).
		Where("quote_id = ?", id.Bytes()).
		Order("seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	events := make([]workflow.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := eventToDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *GormQuoteRepository) get(_ context.Context, db *gorm.DB, id kernel.UUID) (*quote.Quote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormQuoteRepository) appendEvents(ctx context.Context, aggregate *quote.Quote) error {
	pending := aggregate.PendingEvents()
	if len(pending) == 0 {
		return nil
	}

	dtos := make([]EventDTO, 0, len(pending))
	for _, e := range pending {
		dtos = append(dtos, eventFromDomain(e))
	}
	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		if pgerr.IsDuplicate(err) {
			return errs.NewConflictErrorWithCause("quote", "history was changed by another writer", err)
		}
		return err
	}

	aggregate.MarkHistoryStored()
	return nil
}
