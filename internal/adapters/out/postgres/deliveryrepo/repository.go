package deliveryrepo

import (
	"context"

	"procurement/internal/adapters/out/postgres/pgerr"
	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryRepository) AddRequest(ctx context.Context, request *delivery.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}
	dto := requestFromDomain(request)
	return r.create(ctx, "delivery request", request.ID(), request, &dto)
}

func (r *GormDeliveryRepository) UpdateRequest(ctx context.Context, request *delivery.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}
	dto := requestFromDomain(request)
	return r.update(ctx, &RequestDTO{}, request.ID(), request, &dto)
}

func (r *GormDeliveryRepository) GetRequest(ctx context.Context, id kernel.UUID) (*delivery.Request, error) {
	var dto RequestDTO
	if err := r.first(ctx, "delivery request", &dto, id); err != nil {
		return nil, err
	}
	return requestToDomain(dto)
}

func (r *GormDeliveryRepository) ListRequests(ctx context.Context, bookingID kernel.UUID) ([]*delivery.Request, error) {
	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, requestToDomain)
}

func (r *GormDeliveryRepository) AddAdvice(ctx context.Context, advice *delivery.Advice) error {
	if err := advice.Validate(); err != nil {
		return err
	}
	dto := adviceFromDomain(advice)
	return r.create(ctx, "delivery advice", advice.ID(), advice, &dto)
}

func (r *GormDeliveryRepository) UpdateAdvice(ctx context.Context, advice *delivery.Advice) error {
	if err := advice.Validate(); err != nil {
		return err
	}
	dto := adviceFromDomain(advice)
	return r.update(ctx, &AdviceDTO{}, advice.ID(), advice, &dto)
}

func (r *GormDeliveryRepository) GetAdvice(ctx context.Context, id kernel.UUID) (*delivery.Advice, error) {
	var dto AdviceDTO
	if err := r.first(ctx, "delivery advice", &dto, id); err != nil {
		return nil, err
	}
	return adviceToDomain(dto)
}

// ListIssuedAdvices returns the oldest advices still waiting for an order.
func (r *GormDeliveryRepository) ListIssuedAdvices(ctx context.Context, limit int) ([]*delivery.Advice, error) {
	var dtos []AdviceDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", delivery.AdviceIssued.String()).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, adviceToDomain)
}

func (r *GormDeliveryRepository) AddOrder(ctx context.Context, order *delivery.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	dto := orderFromDomain(order)
	return r.create(ctx, "delivery order", order.ID(), order, &dto)
}

func (r *GormDeliveryRepository) UpdateOrder(ctx context.Context, order *delivery.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	dto := orderFromDomain(order)
	return r.update(ctx, &OrderDTO{}, order.ID(), order, &dto)
}

func (r *GormDeliveryRepository) GetOrder(ctx context.Context, id kernel.UUID) (*delivery.Order, error) {
	var dto OrderDTO
	if err := r.first(ctx, "delivery order", &dto, id); err != nil {
		return nil, err
	}
	return orderToDomain(dto)
}

func (r *GormDeliveryRepository) AddReport(ctx context.Context, report *delivery.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}
	dto := reportFromDomain(report)
	return r.create(ctx, "delivery report", report.ID(), report, &dto)
}

func (r *GormDeliveryRepository) FindReportByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Report, error) {
	var dtos []ReportDTO
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes()).Limit(1).Find(&dtos).Error; err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, nil
	}
	return reportToDomain(dtos[0])
}

func (r *GormDeliveryRepository) HasReportForBooking(ctx context.Context, bookingID kernel.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ReportDTO{}).
		Where("booking_id = ?", bookingID.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormDeliveryRepository) create(ctx context.Context, entity string, id kernel.UUID, aggregate, dto any) error {
	if err := r.db.WithContext(ctx).Create(dto).Error; err != nil {
		return pgerr.Translate(entity, err)
	}
	r.tracker.TrackAggregate(id, aggregate)
	return nil
}

func (r *GormDeliveryRepository) update(ctx context.Context, model any, id kernel.UUID, aggregate, dto any) error {
	result := r.db.WithContext(ctx).Model(model).Where("id = ?", id.Bytes()).Select("*").Updates(dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.tracker.TrackAggregate(id, aggregate)
	return nil
}

func (r *GormDeliveryRepository) first(ctx context.Context, entity string, dest any, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id.Bytes()).Error; err != nil {
		return pgerr.NotFound(entity, id.String(), err)
	}
	return nil
}

func mapAll[D any, T any](dtos []D, convert func(D) (T, error)) ([]T, error) {
	result := make([]T, 0, len(dtos))
	for _, dto := range dtos {
		item, err := convert(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}
