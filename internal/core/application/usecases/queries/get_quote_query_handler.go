package queries

import (
	"context"
	"database/sql"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetQuoteQueryHandler struct {
	db *gorm.DB
}

func NewGetQuoteQueryHandler(db *gorm.DB) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{db: db}
}

func (h GetQuoteQueryHandler) Handle(ctx context.Context, query GetQuoteQuery) (QuoteResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteResponse{}, err
	}
	if err := authorizeQuoteRead(ctx, h.db, query.Actor(), query.QuoteID()); err != nil {
		return QuoteResponse{}, err
	}

	var (
		resp           QuoteResponse
		id, customerID uuid.UUID
		assignedTo     uuid.NullUUID
		warehouseID    uuid.NullUUID
		finalPrice     decimal.NullDecimal
		goodsType      sql.NullString
		requestedStart sql.NullTime
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			customer_email,
			space_required,
			duration,
			location,
			goods_type,
			requested_start,
			status,
			current_step,
			flow_type,
			assigned_to,
			warehouse_id,
			final_price,
			created_at,
			updated_at
		FROM quotes
		WHERE id = ?
	`, query.QuoteID().Bytes()).Row().Scan(
		&id,
		&customerID,
		&resp.CustomerEmail,
		&resp.SpaceRequired,
		&resp.Duration,
		&resp.Location,
		&goodsType,
		&requestedStart,
		&resp.Status,
		&resp.CurrentStep,
		&resp.FlowType,
		&assignedTo,
		&warehouseID,
		&finalPrice,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return QuoteResponse{}, errs.NewObjectNotFoundError("quote", query.QuoteID().String())
	}
	if err != nil {
		return QuoteResponse{}, err
	}

	if resp.ID, err = toUUID(id); err != nil {
		return QuoteResponse{}, err
	}
	if resp.CustomerID, err = toUUID(customerID); err != nil {
		return QuoteResponse{}, err
	}
	if resp.AssignedTo, err = toUUIDPtr(assignedTo); err != nil {
		return QuoteResponse{}, err
	}
	if resp.WarehouseID, err = toUUIDPtr(warehouseID); err != nil {
		return QuoteResponse{}, err
	}
	if finalPrice.Valid {
		price, err := kernel.NewMoney(finalPrice.Decimal)
		if err != nil {
			return QuoteResponse{}, err
		}
		resp.FinalPrice = &price
	}
	resp.GoodsType = goodsType.String
	resp.RequestedStart = toTimePtr(requestedStart)
	resp.CreatedAt = resp.CreatedAt.UTC()
	resp.UpdatedAt = resp.UpdatedAt.UTC()

	if resp.History, err = loadHistory(ctx, h.db, id); err != nil {
		return QuoteResponse{}, err
	}
	return resp, nil
}
