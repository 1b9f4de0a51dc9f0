package services

import (
	"time"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
)

// DeliveryScheduler advances the delivery chain on the supervisor's approval.
// The advice and the order are issued separately so that an advice survives
// a failed order and can be completed later.
type DeliveryScheduler struct{}

func NewDeliveryScheduler() DeliveryScheduler {
	return DeliveryScheduler{}
}

// Schedule approves the request and issues its advice.
func (s DeliveryScheduler) Schedule(r *delivery.Request, adviceID kernel.UUID, now time.Time) (*delivery.Advice, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := r.Schedule(); err != nil {
		return nil, err
	}
	return delivery.NewAdvice(adviceID, r, now)
}

// IssueOrder creates the order of an issued advice.
func (s DeliveryScheduler) IssueOrder(a *delivery.Advice, orderID kernel.UUID, now time.Time) (*delivery.Order, error) {
	return delivery.NewOrder(orderID, a, now)
}
