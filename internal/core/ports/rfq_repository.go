package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/rfq"
)

// RFQRepository persists requests for quotation.
type RFQRepository interface {
	Add(ctx context.Context, aggregate *rfq.RFQ) error
	Update(ctx context.Context, aggregate *rfq.RFQ) error
	Get(ctx context.Context, id kernel.UUID) (*rfq.RFQ, error)

	// ListByQuote returns every RFQ of a quote ordered by creation time.
	ListByQuote(ctx context.Context, quoteID kernel.UUID) ([]*rfq.RFQ, error)
}

// RateRepository persists warehouse rates.
type RateRepository interface {
	Add(ctx context.Context, aggregate *rfq.Rate) error
	Update(ctx context.Context, aggregate *rfq.Rate) error
	Get(ctx context.Context, id kernel.UUID) (*rfq.Rate, error)

	// ListByQuote returns every rate submitted for a quote across its RFQs.
	ListByQuote(ctx context.Context, quoteID kernel.UUID) ([]*rfq.Rate, error)
}
