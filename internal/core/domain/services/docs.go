// Package services provides domain services that coordinate several
// aggregates of the procurement workflow.
//
// The package includes:
//   - RateSelector: resolves a quote's competing rates to one warehouse
//   - DeliveryScheduler: turns an approved delivery request into an advice and an order
//
// Services only change aggregates in memory. Command handlers load the
// aggregates inside a unit of work and persist what the service returns.
package services
