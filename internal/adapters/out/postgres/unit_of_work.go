// Package postgres provides the GORM-based Unit of Work that every command
// of the procurement workflow runs in.
//
// A unit of work wraps one database transaction. Every repository obtained
// from it between Begin and Commit/Rollback reads and writes through that
// transaction, so the quote row lock taken by QuoteRepository.GetForUpdate
// covers all dependent records written in the same command.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	q, err := uow.QuoteRepository().GetForUpdate(ctx, quoteID)
//	if err != nil {
//	    return err
//	}
//	// mutate q and its dependents ...
//	if err := uow.QuoteRepository().Update(ctx, q); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction,
// which the deferred call ignores.
package postgres

import (
	"context"
	"fmt"

	"procurement/internal/adapters/out/postgres/bookingrepo"
	"procurement/internal/adapters/out/postgres/deliveryrepo"
	"procurement/internal/adapters/out/postgres/invoicerepo"
	"procurement/internal/adapters/out/postgres/quoterepo"
	"procurement/internal/adapters/out/postgres/rfqrepo"
	"procurement/internal/adapters/out/postgres/warehouserepo"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each command gets a fresh unit of work isolated from concurrent ones.
type GormUnitOfWorkFactory struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, log: zap.NewNop()}
}

// WithLogger makes committed units of work report the aggregates they wrote
// at debug level.
func (f *GormUnitOfWorkFactory) WithLogger(log *zap.Logger) *GormUnitOfWorkFactory {
	f.log = log
	return f
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		log:               f.log,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	log               *zap.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. A second call on the same instance is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the changes permanent and closes the transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err == nil && len(uow.trackedAggregates) > 0 {
		uow.log.Debug("unit of work committed",
			zap.Int("aggregates", len(uow.trackedAggregates)),
			zap.Strings("written", uow.written()))
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards the changes and closes the transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) QuoteRepository() ports.QuoteRepository {
	return quoterepo.NewGormQuoteRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RFQRepository() ports.RFQRepository {
	return rfqrepo.NewGormRFQRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RateRepository() ports.RateRepository {
	return rfqrepo.NewGormRateRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return invoicerepo.NewGormInvoiceRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount returns how many writes the current transaction has seen.
// Commit and Rollback reset it.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) written() []string {
	out := make([]string, 0, len(uow.trackedAggregates))
	for _, a := range uow.trackedAggregates {
		out = append(out, fmt.Sprintf("%T %s", a.Aggregate, a.ID.String()))
	}
	return out
}

// conn returns the active transaction, or the plain connection outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
