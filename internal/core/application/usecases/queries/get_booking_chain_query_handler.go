package queries

import (
	"context"
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetBookingChainQueryHandler struct {
	db *gorm.DB
}

func NewGetBookingChainQueryHandler(db *gorm.DB) GetBookingChainQueryHandler {
	return GetBookingChainQueryHandler{db: db}
}

type bookingRow struct {
	ID          uuid.UUID
	QuoteID     uuid.UUID
	CustomerID  uuid.UUID
	WarehouseID uuid.UUID
	Status      string
	StartDate   time.Time
	Duration    string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

type cargoRow struct {
	ID          uuid.UUID
	Description string
	Packages    int
	WeightKg    float64
	Status      string
	CreatedAt   time.Time
}

type cartingRow struct {
	ID              uuid.UUID
	CargoDispatchID uuid.UUID
	VehicleNumber   string
	StagingArea     string
	Status          string
	CreatedAt       time.Time
}

type requestRow struct {
	ID            uuid.UUID
	Destination   string
	PreferredDate *time.Time
	Notes         string
	Status        string
	CreatedAt     time.Time
}

type stageRow struct {
	ID         uuid.UUID
	ParentID   uuid.UUID
	Status     string
	CreatedAt  time.Time
	ExecutedAt *time.Time
}

type reportRow struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ReceivedBy  string
	DeliveredAt time.Time
	Remarks     string
	CreatedAt   time.Time
}

type invoiceRow struct {
	ID               uuid.UUID
	Amount           decimal.Decimal
	DueDate          time.Time
	Status           string
	PaymentReference string
	PaidAt           *time.Time
	CreatedAt        time.Time
}

// idReader converts stored ids and keeps the first failure.
type idReader struct {
	err error
}

func (r *idReader) id(raw uuid.UUID) kernel.UUID {
	if r.err != nil {
		return kernel.UUID{}
	}
	id, err := toUUID(raw)
	r.err = err
	return id
}

func (r *idReader) money(amount decimal.Decimal) kernel.Money {
	if r.err != nil {
		return kernel.Money{}
	}
	m, err := kernel.NewMoney(amount)
	r.err = err
	return m
}

func (h GetBookingChainQueryHandler) Handle(
	ctx context.Context,
	query GetBookingChainQuery,
) (BookingChainResponse, error) {
	if err := query.Validate(); err != nil {
		return BookingChainResponse{}, err
	}
	db := h.db.WithContext(ctx)
	bookingID := query.BookingID().Bytes()

	var b bookingRow
	err := db.Table("bookings").
		Select("id, quote_id, customer_id, warehouse_id, status, start_date, duration, total_amount, created_at").
		Where("id = ?", bookingID).
		Take(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return BookingChainResponse{}, errs.NewObjectNotFoundError("booking", query.BookingID().String())
	}
	if err != nil {
		return BookingChainResponse{}, err
	}

	ids := &idReader{}
	resp := BookingChainResponse{
		ID:          ids.id(b.ID),
		QuoteID:     ids.id(b.QuoteID),
		CustomerID:  ids.id(b.CustomerID),
		WarehouseID: ids.id(b.WarehouseID),
		Status:      b.Status,
		StartDate:   b.StartDate.UTC(),
		Duration:    b.Duration,
		TotalAmount: ids.money(b.TotalAmount),
		CreatedAt:   b.CreatedAt.UTC(),
	}
	if ids.err != nil {
		return BookingChainResponse{}, ids.err
	}
	if err = authorizeBookingRead(query.Actor(), resp); err != nil {
		return BookingChainResponse{}, err
	}

	if resp.Cargo, err = h.cargo(db, bookingID, ids); err != nil {
		return BookingChainResponse{}, err
	}
	if resp.Deliveries, err = h.deliveries(db, bookingID, ids); err != nil {
		return BookingChainResponse{}, err
	}
	if resp.Invoices, err = h.invoices(db, bookingID, ids); err != nil {
		return BookingChainResponse{}, err
	}
	return resp, nil
}

func authorizeBookingRead(actor workflow.Actor, b BookingChainResponse) error {
	if err := actor.AuthorizeOwner(b.CustomerID); err != nil {
		return err
	}
	if actor.Role() == workflow.RoleWarehouse {
		return actor.AuthorizeWarehouse(b.WarehouseID)
	}
	return nil
}

func (h GetBookingChainQueryHandler) cargo(db *gorm.DB, bookingID uuid.UUID, ids *idReader) ([]CargoResponse, error) {
	var cargoRows []cargoRow
	if err := db.Table("cargo_dispatches").
		Select("id, description, packages, weight_kg, status, created_at").
		Where("booking_id = ?", bookingID).
		Order("created_at, id").
		Find(&cargoRows).Error; err != nil {
		return nil, err
	}
	var cartingRows []cartingRow
	if err := db.Table("cartings").
		Select("id, cargo_dispatch_id, vehicle_number, staging_area, status, created_at").
		Where("booking_id = ?", bookingID).
		Order("created_at, id").
		Find(&cartingRows).Error; err != nil {
		return nil, err
	}

	byCargo := make(map[uuid.UUID][]CartingResponse, len(cargoRows))
	for _, c := range cartingRows {
		byCargo[c.CargoDispatchID] = append(byCargo[c.CargoDispatchID], CartingResponse{
			ID:            ids.id(c.ID),
			VehicleNumber: c.VehicleNumber,
			StagingArea:   c.StagingArea,
			Status:        c.Status,
			CreatedAt:     c.CreatedAt.UTC(),
		})
	}

	result := make([]CargoResponse, 0, len(cargoRows))
	for _, c := range cargoRows {
		cartings := byCargo[c.ID]
		if cartings == nil {
			cartings = make([]CartingResponse, 0)
		}
		result = append(result, CargoResponse{
			ID:          ids.id(c.ID),
			Description: c.Description,
			Packages:    c.Packages,
			WeightKg:    c.WeightKg,
			Status:      c.Status,
			CreatedAt:   c.CreatedAt.UTC(),
			Cartings:    cartings,
		})
	}
	return result, ids.err
}

func (h GetBookingChainQueryHandler) deliveries(
	db *gorm.DB,
	bookingID uuid.UUID,
	ids *idReader,
) ([]DeliveryResponse, error) {
	var requests []requestRow
	if err := db.Table("delivery_requests").
		Select("id, destination, preferred_date, notes, status, created_at").
		Where("booking_id = ?", bookingID).
		Order("created_at, id").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	var advices []stageRow
	if err := db.Table("delivery_advices").
		Select("id, request_id AS parent_id, status, created_at").
		Where("booking_id = ?", bookingID).
		Find(&advices).Error; err != nil {
		return nil, err
	}
	var orders []stageRow
	if err := db.Table("delivery_orders").
		Select("id, advice_id AS parent_id, status, created_at, executed_at").
		Where("booking_id = ?", bookingID).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	var reports []reportRow
	if err := db.Table("delivery_reports").
		Select("id, order_id, received_by, delivered_at, remarks, created_at").
		Where("booking_id = ?", bookingID).
		Find(&reports).Error; err != nil {
		return nil, err
	}

	adviceByRequest := make(map[uuid.UUID]stageRow, len(advices))
	for _, a := range advices {
		adviceByRequest[a.ParentID] = a
	}
	orderByAdvice := make(map[uuid.UUID]stageRow, len(orders))
	for _, o := range orders {
		orderByAdvice[o.ParentID] = o
	}
	reportByOrder := make(map[uuid.UUID]reportRow, len(reports))
	for _, r := range reports {
		reportByOrder[r.OrderID] = r
	}

	result := make([]DeliveryResponse, 0, len(requests))
	for _, r := range requests {
		d := DeliveryResponse{
			ID:            ids.id(r.ID),
			Destination:   r.Destination,
			PreferredDate: utcPtr(r.PreferredDate),
			Notes:         r.Notes,
			Status:        r.Status,
			CreatedAt:     r.CreatedAt.UTC(),
		}
		if a, ok := adviceByRequest[r.ID]; ok {
			d.Advice = stageResponse(a, ids)
			if o, ok := orderByAdvice[a.ID]; ok {
				d.Order = stageResponse(o, ids)
				if rep, ok := reportByOrder[o.ID]; ok {
					d.Report = &ReportResponse{
						ID:          ids.id(rep.ID),
						ReceivedBy:  rep.ReceivedBy,
						DeliveredAt: rep.DeliveredAt.UTC(),
						Remarks:     rep.Remarks,
						CreatedAt:   rep.CreatedAt.UTC(),
					}
				}
			}
		}
		result = append(result, d)
	}
	return result, ids.err
}

func stageResponse(row stageRow, ids *idReader) *StageResponse {
	return &StageResponse{
		ID:         ids.id(row.ID),
		Status:     row.Status,
		CreatedAt:  row.CreatedAt.UTC(),
		ExecutedAt: utcPtr(row.ExecutedAt),
	}
}

func (h GetBookingChainQueryHandler) invoices(db *gorm.DB, bookingID uuid.UUID, ids *idReader) ([]InvoiceResponse, error) {
	var rows []invoiceRow
	if err := db.Table("invoices").
		Select("id, amount, due_date, status, payment_reference, paid_at, created_at").
		Where("booking_id = ?", bookingID).
		Order("created_at, id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]InvoiceResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, InvoiceResponse{
			ID:               ids.id(r.ID),
			Amount:           ids.money(r.Amount),
			DueDate:          r.DueDate.UTC(),
			Status:           r.Status,
			PaymentReference: r.PaymentReference,
			PaidAt:           utcPtr(r.PaidAt),
			CreatedAt:        r.CreatedAt.UTC(),
		})
	}
	return result, ids.err
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
