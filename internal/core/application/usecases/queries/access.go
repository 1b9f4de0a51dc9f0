package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// authorizeQuoteRead checks that actor may see the quote: a customer must own
// it and a warehouse user must have received an RFQ for it.
func authorizeQuoteRead(ctx context.Context, db *gorm.DB, actor workflow.Actor, quoteID kernel.UUID) error {
	var customerID uuid.UUID
	err := db.WithContext(ctx).
		Raw(`SELECT customer_id FROM quotes WHERE id = ?`, quoteID.Bytes()).
		Row().
		Scan(&customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewObjectNotFoundError("quote", quoteID.String())
	}
	if err != nil {
		return err
	}

	owner, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return err
	}
	if err = actor.AuthorizeOwner(owner); err != nil {
		return err
	}

	if actor.Role() != workflow.RoleWarehouse {
		return nil
	}
	warehouseID := actor.WarehouseID()
	if warehouseID == nil {
		return workflow.NewWarehouseScopeError(actor.Role())
	}
	var count int64
	if err = db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM rfqs WHERE quote_id = ? AND warehouse_id = ?`, quoteID.Bytes(), warehouseID.Bytes()).
		Row().
		Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return workflow.NewWarehouseScopeError(actor.Role())
	}
	return nil
}

func toUUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

func toUUIDPtr(raw uuid.NullUUID) (*kernel.UUID, error) {
	if !raw.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toTimePtr(raw sql.NullTime) *time.Time {
	if !raw.Valid {
		return nil
	}
	t := raw.Time.UTC()
	return &t
}
