package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetQuoteHistoryQueryHandler reads workflow_events directly.
type GetQuoteHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetQuoteHistoryQueryHandler(db *gorm.DB) GetQuoteHistoryQueryHandler {
	return GetQuoteHistoryQueryHandler{db: db}
}

func (h GetQuoteHistoryQueryHandler) Handle(ctx context.Context, query GetQuoteHistoryQuery) ([]QuoteEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := authorizeQuoteRead(ctx, h.db, query.Actor(), query.QuoteID()); err != nil {
		return nil, err
	}
	return loadHistory(ctx, h.db, query.QuoteID().Bytes())
}

func loadHistory(ctx context.Context, db *gorm.DB, quoteID uuid.UUID) ([]QuoteEventResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			seq,
			from_step,
			to_step,
			from_status,
			to_status,
			action,
			actor_role,
			actor_id,
			note,
			occurred_at
		FROM workflow_events
		WHERE quote_id = ?
		ORDER BY seq
	`, quoteID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]QuoteEventResponse, 0)
	for rows.Next() {
		var e QuoteEventResponse
		var actorID uuid.UUID
		if err = rows.Scan(
			&e.Seq,
			&e.FromStep,
			&e.ToStep,
			&e.FromStatus,
			&e.ToStatus,
			&e.Action,
			&e.ActorRole,
			&actorID,
			&e.Note,
			&e.OccurredAt,
		); err != nil {
			return nil, err
		}
		if e.ActorID, err = toUUID(actorID); err != nil {
			return nil, err
		}
		e.OccurredAt = e.OccurredAt.UTC()
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
