package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrGetBookingChainQueryIsNotConstructed = errors.New(
	"GetBookingChainQuery must be created via NewGetBookingChainQuery constructor",
)

// GetBookingChainQuery reads a booking with everything raised after it:
// cargo dispatches and their cartings, the delivery chain and invoices.
type GetBookingChainQuery struct {
	actor     workflow.Actor
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetBookingChainQuery(actor workflow.Actor, bookingID kernel.UUID) (GetBookingChainQuery, error) {
	if err := errors.Join(actor.Validate(), bookingID.Validate()); err != nil {
		return GetBookingChainQuery{}, err
	}
	return GetBookingChainQuery{actor: actor, bookingID: bookingID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBookingChainQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingChainQueryIsNotConstructed)
}

func (q GetBookingChainQuery) Actor() workflow.Actor  { return q.actor }
func (q GetBookingChainQuery) BookingID() kernel.UUID { return q.bookingID }

type BookingChainResponse struct {
	ID          kernel.UUID        `json:"id"`
	QuoteID     kernel.UUID        `json:"quoteId"`
	CustomerID  kernel.UUID        `json:"customerId"`
	WarehouseID kernel.UUID        `json:"warehouseId"`
	Status      string             `json:"status"`
	StartDate   time.Time          `json:"startDate"`
	Duration    string             `json:"duration"`
	TotalAmount kernel.Money       `json:"totalAmount"`
	CreatedAt   time.Time          `json:"createdAt"`
	Cargo       []CargoResponse    `json:"cargo"`
	Deliveries  []DeliveryResponse `json:"deliveries"`
	Invoices    []InvoiceResponse  `json:"invoices"`
}

type CargoResponse struct {
	ID          kernel.UUID       `json:"id"`
	Description string            `json:"description"`
	Packages    int               `json:"packages"`
	WeightKg    float64           `json:"weightKg"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	Cartings    []CartingResponse `json:"cartings"`
}

type CartingResponse struct {
	ID            kernel.UUID `json:"id"`
	VehicleNumber string      `json:"vehicleNumber"`
	StagingArea   string      `json:"stagingArea"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// DeliveryResponse is one delivery request with the stages raised from it.
type DeliveryResponse struct {
	ID            kernel.UUID     `json:"id"`
	Destination   string          `json:"destination"`
	PreferredDate *time.Time      `json:"preferredDate,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	Advice        *StageResponse  `json:"advice,omitempty"`
	Order         *StageResponse  `json:"order,omitempty"`
	Report        *ReportResponse `json:"report,omitempty"`
}

// StageResponse describes a delivery advice or order.
type StageResponse struct {
	ID         kernel.UUID `json:"id"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	ExecutedAt *time.Time  `json:"executedAt,omitempty"`
}

type ReportResponse struct {
	ID          kernel.UUID `json:"id"`
	ReceivedBy  string      `json:"receivedBy"`
	DeliveredAt time.Time   `json:"deliveredAt"`
	Remarks     string      `json:"remarks,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type InvoiceResponse struct {
	ID               kernel.UUID  `json:"id"`
	Amount           kernel.Money `json:"amount"`
	DueDate          time.Time    `json:"dueDate"`
	Status           string       `json:"status"`
	PaymentReference string       `json:"paymentReference,omitempty"`
	PaidAt           *time.Time   `json:"paidAt,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
}
