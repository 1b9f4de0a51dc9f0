package queries

import (
	"context"
	"database/sql"

	"procurement/internal/core/domain/model/workflow"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListWarehouseRFQsQueryHandler struct {
	db *gorm.DB
}

func NewListWarehouseRFQsQueryHandler(db *gorm.DB) ListWarehouseRFQsQueryHandler {
	return ListWarehouseRFQsQueryHandler{db: db}
}

func (h ListWarehouseRFQsQueryHandler) Handle(
	ctx context.Context,
	query ListWarehouseRFQsQuery,
) ([]WarehouseRFQResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	actor := query.Actor()
	warehouseID := actor.WarehouseID()
	if actor.Role() != workflow.RoleWarehouse || warehouseID == nil {
		return nil, workflow.NewWarehouseScopeError(actor.Role())
	}

	tx := h.db.WithContext(ctx).
		Table("rfqs AS r").
		Select(`r.id, r.quote_id, r.status, r.valid_until, r.notes, r.created_at,
			q.space_required, q.duration, q.location, q.goods_type, q.requested_start, q.current_step`).
		Joins("JOIN quotes AS q ON q.id = r.quote_id").
		Where("r.warehouse_id = ?", warehouseID.Bytes())
	if query.Status() != "" {
		tx = tx.Where("r.status = ?", query.Status())
	}

	rows, err := tx.Order("r.created_at DESC, r.id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]WarehouseRFQResponse, 0)
	for rows.Next() {
		var (
			r              WarehouseRFQResponse
			id, quoteID    uuid.UUID
			notes          pq.StringArray
			goodsType      sql.NullString
			requestedStart sql.NullTime
		)
		if err = rows.Scan(
			&id,
			&quoteID,
			&r.Status,
			&r.ValidUntil,
			&notes,
			&r.CreatedAt,
			&r.SpaceRequired,
			&r.Duration,
			&r.Location,
			&goodsType,
			&requestedStart,
			&r.QuoteStep,
		); err != nil {
			return nil, err
		}
		if r.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if r.QuoteID, err = toUUID(quoteID); err != nil {
			return nil, err
		}
		r.Notes = append([]string{}, notes...)
		r.GoodsType = goodsType.String
		r.RequestedStart = toTimePtr(requestedStart)
		r.ValidUntil = r.ValidUntil.UTC()
		r.CreatedAt = r.CreatedAt.UTC()
		result = append(result, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
