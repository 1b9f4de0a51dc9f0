package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
// Every repository it returns is bound to the transaction started by Begin.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	QuoteRepository() QuoteRepository
	WarehouseRepository() WarehouseRepository
	RFQRepository() RFQRepository
	RateRepository() RateRepository
	BookingRepository() BookingRepository
	DeliveryRepository() DeliveryRepository
	InvoiceRepository() InvoiceRepository
}
