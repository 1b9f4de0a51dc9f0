package queries

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListQuoteRFQsQueryHandler struct {
	db *gorm.DB
}

func NewListQuoteRFQsQueryHandler(db *gorm.DB) ListQuoteRFQsQueryHandler {
	return ListQuoteRFQsQueryHandler{db: db}
}

func (h ListQuoteRFQsQueryHandler) Handle(ctx context.Context, query ListQuoteRFQsQuery) ([]RFQResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	actor := query.Actor()
	if actor.Role() == workflow.RoleCustomer {
		return nil, errs.NewPermissionDeniedError(actor.Role().String(), "list warehouse rates")
	}
	if err := authorizeQuoteRead(ctx, h.db, actor, query.QuoteID()); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("rfqs").
		Select("id, quote_id, warehouse_id, status, valid_until, notes, created_at").
		Where("quote_id = ?", query.QuoteID().Bytes())
	if actor.Role() == workflow.RoleWarehouse {
		tx = tx.Where("warehouse_id = ?", actor.WarehouseID().Bytes())
	}
	rfqs, err := scanRFQs(tx.Order("created_at, id"))
	if err != nil {
		return nil, err
	}
	if len(rfqs) == 0 {
		return rfqs, nil
	}

	ids := make([]uuid.UUID, 0, len(rfqs))
	index := make(map[kernel.UUID]int, len(rfqs))
	for i, r := range rfqs {
		ids = append(ids, r.ID.Bytes())
		index[r.ID] = i
	}
	rates, err := scanRates(h.db.WithContext(ctx).
		Table("rates").
		Select("id, rfq_id, amount, terms, status, created_at").
		Where("rfq_id IN ?", ids).
		Order("created_at, id"))
	if err != nil {
		return nil, err
	}
	for _, rate := range rates {
		i := index[rate.RFQID]
		rfqs[i].Rates = append(rfqs[i].Rates, rate)
	}
	return rfqs, nil
}

func scanRFQs(tx *gorm.DB) ([]RFQResponse, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]RFQResponse, 0)
	for rows.Next() {
		var (
			r                        RFQResponse
			id, quoteID, warehouseID uuid.UUID
			notes                    pq.StringArray
		)
		if err = rows.Scan(&id, &quoteID, &warehouseID, &r.Status, &r.ValidUntil, &notes, &r.CreatedAt); err != nil {
			return nil, err
		}
		if r.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if r.QuoteID, err = toUUID(quoteID); err != nil {
			return nil, err
		}
		if r.WarehouseID, err = toUUID(warehouseID); err != nil {
			return nil, err
		}
		r.Notes = append([]string{}, notes...)
		r.ValidUntil = r.ValidUntil.UTC()
		r.CreatedAt = r.CreatedAt.UTC()
		r.Rates = make([]RateResponse, 0)
		result = append(result, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanRates(tx *gorm.DB) ([]RateResponse, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]RateResponse, 0)
	for rows.Next() {
		var (
			r         RateResponse
			id, rfqID uuid.UUID
			amount    decimal.Decimal
		)
		if err = rows.Scan(&id, &rfqID, &amount, &r.Terms, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		if r.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if r.RFQID, err = toUUID(rfqID); err != nil {
			return nil, err
		}
		if r.Amount, err = kernel.NewMoney(amount); err != nil {
			return nil, err
		}
		r.CreatedAt = r.CreatedAt.UTC()
		result = append(result, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
