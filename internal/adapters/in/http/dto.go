package http

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
)

type CreatedResponse struct {
	ID kernel.UUID `json:"id"`
}

type CreateQuoteRequest struct {
	CustomerEmail  string     `json:"customerEmail" validate:"omitempty,email"`
	SpaceRequired  int        `json:"spaceRequired" validate:"required,gt=0"`
	Duration       string     `json:"duration" validate:"required"`
	Location       string     `json:"location" validate:"required"`
	GoodsType      string     `json:"goodsType"`
	RequestedStart *time.Time `json:"requestedStart"`
	FlowType       string     `json:"flowType" validate:"omitempty,oneof=standard direct"`
}

// DecisionRequest answers a review step.
type DecisionRequest struct {
	Action string `json:"action" validate:"required"`
	Note   string `json:"note" validate:"max=2000"`
}

type TransitionRequest struct {
	Step   string `json:"step" validate:"required,max=3"`
	Action string `json:"action"`
	Note   string `json:"note" validate:"max=2000"`
}

type PriceRequest struct {
	Price string `json:"price" validate:"required,numeric"`
	Note  string `json:"note" validate:"max=2000"`
}

type CreateRFQRequest struct {
	WarehouseIDs []string   `json:"warehouseIds" validate:"required,min=1,dive,uuid"`
	ValidUntil   *time.Time `json:"validUntil"`
	Note         string     `json:"note" validate:"max=2000"`
}

type SubmitRateRequest struct {
	Amount string `json:"amount" validate:"required,numeric"`
	Terms  string `json:"terms" validate:"max=2000"`
}

type SelectRateRequest struct {
	SalesUserID *string `json:"salesUserId" validate:"omitempty,uuid"`
}

type RegisterWarehouseRequest struct {
	Name         string `json:"name" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Capacity     int    `json:"capacity" validate:"required,gt=0"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	OperatorID   string `json:"operatorId" validate:"required,uuid"`
}

type NoteRequest struct {
	Note string `json:"note" validate:"max=2000"`
}

type CargoDispatchRequest struct {
	Description string  `json:"description" validate:"required"`
	Packages    int     `json:"packages" validate:"required,gt=0"`
	WeightKg    float64 `json:"weightKg" validate:"required,gt=0"`
}

type AdvanceCargoRequest struct {
	Action string `json:"action" validate:"required,oneof=process complete"`
}

type CartingRequest struct {
	VehicleNumber string `json:"vehicleNumber" validate:"required"`
	StagingArea   string `json:"stagingArea" validate:"required"`
}

type DeliveryRequestRequest struct {
	Destination   string     `json:"destination" validate:"required"`
	PreferredDate *time.Time `json:"preferredDate"`
	Notes         string     `json:"notes" validate:"max=2000"`
}

type DeliveryReportRequest struct {
	ReceivedBy  string     `json:"receivedBy" validate:"required"`
	Remarks     string     `json:"remarks" validate:"max=2000"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}

type InvoiceRequest struct {
	DueInDays int `json:"dueInDays" validate:"gte=0,lte=365"`
}

type PaymentRequest struct {
	Reference string `json:"reference" validate:"required"`
}
