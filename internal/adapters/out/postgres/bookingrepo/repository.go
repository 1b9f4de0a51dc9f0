package bookingrepo

import (
	"context"

	"procurement/internal/adapters/out/postgres/pgerr"
	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormBookingRepository implements BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add relies on the unique quote_id index to refuse a second booking.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := bookingFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("booking", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := bookingFromDomain(aggregate)
	if err := r.update(ctx, &BookingDTO{}, dto.ID, &dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	var dto BookingDTO
	if err := r.first(ctx, "booking", &dto, "id = ?", id); err != nil {
		return nil, err
	}
	return bookingToDomain(dto)
}

func (r *GormBookingRepository) FindByQuote(ctx context.Context, quoteID kernel.UUID) (*booking.Booking, error) {
	var dtos []BookingDTO
	if err := r.db.WithContext(ctx).Where("quote_id = ?", quoteID.Bytes()).Limit(1).Find(&dtos).Error; err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, nil
	}
	return bookingToDomain(dtos[0])
}

func (r *GormBookingRepository) AddCargo(ctx context.Context, cargo *booking.CargoDispatch) error {
	if err := cargo.Validate(); err != nil {
		return err
	}

	dto := cargoFromDomain(cargo)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("cargo dispatch", err)
	}

	r.tracker.TrackAggregate(cargo.ID(), cargo)
	return nil
}

func (r *GormBookingRepository) UpdateCargo(ctx context.Context, cargo *booking.CargoDispatch) error {
	if err := cargo.Validate(); err != nil {
		return err
	}

	dto := cargoFromDomain(cargo)
	if err := r.update(ctx, &CargoDispatchDTO{}, dto.ID, &dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(cargo.ID(), cargo)
	return nil
}

func (r *GormBookingRepository) GetCargo(ctx context.Context, id kernel.UUID) (*booking.CargoDispatch, error) {
	var dto CargoDispatchDTO
	if err := r.first(ctx, "cargo dispatch", &dto, "id = ?", id); err != nil {
		return nil, err
	}
	return cargoToDomain(dto)
}

func (r *GormBookingRepository) ListCargo(ctx context.Context, bookingID kernel.UUID) ([]*booking.CargoDispatch, error) {
	var dtos []CargoDispatchDTO
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]*booking.CargoDispatch, 0, len(dtos))
	for _, dto := range dtos {
		c, err := cargoToDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *GormBookingRepository) AddCarting(ctx context.Context, carting *booking.Carting) error {
	if err := carting.Validate(); err != nil {
		return err
	}

	dto := cartingFromDomain(carting)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("carting", err)
	}

	r.tracker.TrackAggregate(carting.ID(), carting)
	return nil
}

func (r *GormBookingRepository) UpdateCarting(ctx context.Context, carting *booking.Carting) error {
	if err := carting.Validate(); err != nil {
		return err
	}

	dto := cartingFromDomain(carting)
	if err := r.update(ctx, &CartingDTO{}, dto.ID, &dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(carting.ID(), carting)
	return nil
}

func (r *GormBookingRepository) GetCarting(ctx context.Context, id kernel.UUID) (*booking.Carting, error) {
	var dto CartingDTO
	if err := r.first(ctx, "carting", &dto, "id = ?", id); err != nil {
		return nil, err
	}
	return cartingToDomain(dto)
}

func (r *GormBookingRepository) ListCarting(ctx context.Context, cargoDispatchID kernel.UUID) ([]*booking.Carting, error) {
	var dtos []CartingDTO
	if err := r.db.WithContext(ctx).
		Where("cargo_dispatch_id = ?", cargoDispatchID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]*booking.Carting, 0, len(dtos))
	for _, dto := range dtos {
		c, err := cartingToDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *GormBookingRepository) first(ctx context.Context, entity string, dest any, query string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).First(dest, query, id.Bytes()).Error; err != nil {
		return pgerr.NotFound(entity, id.String(), err)
	}
	return nil
}

func (r *GormBookingRepository) update(ctx context.Context, model any, id any, dto any) error {
	result := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Select("*").Updates(dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
