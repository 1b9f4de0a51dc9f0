// Package ports defines the contracts between the procurement core and its
// infrastructure: repositories, the unit of work and the notifier.
package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/workflow"
)

// QuoteRepository persists quote aggregates together with their workflow history.
type QuoteRepository interface {
	// Add stores a new quote and its pending history events.
	Add(ctx context.Context, aggregate *quote.Quote) error

	// Update stores the quote and appends its pending history events in the
	// same transaction. It fails with a Conflict when another writer appended
	// to the history since the quote was loaded.
	Update(ctx context.Context, aggregate *quote.Quote) error

	// Get loads a quote without locking it.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// GetForUpdate loads a quote and locks its row until the transaction ends.
	// Every command that changes a quote or one of its dependent records takes
	// this lock first.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// History returns the stored events of a quote ordered by sequence.
	History(ctx context.Context, id kernel.UUID) ([]workflow.Event, error)
}
