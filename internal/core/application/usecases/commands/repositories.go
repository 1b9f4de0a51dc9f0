// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization against
// the workflow gate, transaction management, persistence and, after commit,
// notification of the next responsible party.
package commands

import (
	"context"

	"procurement/internal/core/application/notifications"
	"procurement/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	QuoteRepoFactory interface {
		QuoteRepository() ports.QuoteRepository
	}

	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	RFQRepoFactory interface {
		RFQRepository() ports.RFQRepository
	}

	RateRepoFactory interface {
		RateRepository() ports.RateRepository
	}

	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// QuoteUoW manages transactions for quote-only operations.
	QuoteUoW interface {
		TxManager
		QuoteRepoFactory
	}

	// QuoteUoWFactory creates new quote unit of work instances.
	QuoteUoWFactory interface {
		Create() QuoteUoW
	}

	// WarehouseUoW manages transactions for warehouse onboarding.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// NegotiationUoW manages transactions of the RFQ and rate negotiation.
	// The quote row lock serializes every negotiation step of a quote.
	NegotiationUoW interface {
		TxManager
		QuoteRepoFactory
		WarehouseRepoFactory
		RFQRepoFactory
		RateRepoFactory
	}

	// NegotiationUoWFactory creates new negotiation unit of work instances.
	NegotiationUoWFactory interface {
		Create() NegotiationUoW
	}

	// UoW manages transactions across the quote and the post-booking records.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   q, err := uow.QuoteRepository().GetForUpdate(ctx, quoteID)
	//   b, err := uow.BookingRepository().FindByQuote(ctx, quoteID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		QuoteRepoFactory
		WarehouseRepoFactory
		RFQRepoFactory
		BookingRepoFactory
		DeliveryRepoFactory
		InvoiceRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Announcer tells the next responsible party about a committed step.
// Implementations never fail; see notifications.Dispatcher.
type Announcer interface {
	Announce(ctx context.Context, notice notifications.Notice)
}
