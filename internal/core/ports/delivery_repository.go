package ports

import (
	"context"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
)

// DeliveryRepository persists the four stages of the delivery chain.
// Find methods return nil without an error when nothing matches.
type DeliveryRepository interface {
	AddRequest(ctx context.Context, request *delivery.Request) error
	UpdateRequest(ctx context.Context, request *delivery.Request) error
	GetRequest(ctx context.Context, id kernel.UUID) (*delivery.Request, error)
	ListRequests(ctx context.Context, bookingID kernel.UUID) ([]*delivery.Request, error)

	AddAdvice(ctx context.Context, advice *delivery.Advice) error
	UpdateAdvice(ctx context.Context, advice *delivery.Advice) error
	GetAdvice(ctx context.Context, id kernel.UUID) (*delivery.Advice, error)

	// ListIssuedAdvices returns up to limit advices that still wait for their
	// order, oldest first.
	ListIssuedAdvices(ctx context.Context, limit int) ([]*delivery.Advice, error)

	AddOrder(ctx context.Context, order *delivery.Order) error
	UpdateOrder(ctx context.Context, order *delivery.Order) error
	GetOrder(ctx context.Context, id kernel.UUID) (*delivery.Order, error)

	AddReport(ctx context.Context, report *delivery.Report) error
	FindReportByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Report, error)
	HasReportForBooking(ctx context.Context, bookingID kernel.UUID) (bool, error)
}
