// Package delivery models the strict four-stage delivery chain of a booking:
// request, advice, order and report. Each stage is created once from its
// predecessor and only moves forward.
package delivery

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// RequestStatus of a delivery request.
//
//	Pending ──> Scheduled
//	   └──────> Rejected
type RequestStatus int

const (
	RequestUnknown RequestStatus = iota
	RequestPending
	RequestScheduled
	RequestRejected
)

func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		RequestUnknown:   "unknown",
		RequestPending:   "pending",
		RequestScheduled: "scheduled",
		RequestRejected:  "rejected",
	}
}

func ParseRequestStatus(s string) (RequestStatus, error) {
	for status, name := range getRequestStatusStrings() {
		if status != RequestUnknown && name == s {
			return status, nil
		}
	}
	return RequestUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid delivery request status", s))
}

func (s RequestStatus) Validate() error {
	if s <= RequestUnknown || s > RequestRejected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

func (s RequestStatus) String() string {
	if str, ok := getRequestStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// AdviceStatus of a delivery advice. An issued advice without an order is
// picked up by the order retry job; one whose booking closed is withdrawn.
//
//	Issued ──> Ordered
//	   └─────> Withdrawn
type AdviceStatus int

const (
	AdviceUnknown AdviceStatus = iota
	AdviceIssued
	AdviceOrdered
	AdviceWithdrawn
)

func getAdviceStatusStrings() map[AdviceStatus]string {
	return map[AdviceStatus]string{
		AdviceUnknown:   "unknown",
		AdviceIssued:    "issued",
		AdviceOrdered:   "ordered",
		AdviceWithdrawn: "withdrawn",
	}
}

func ParseAdviceStatus(s string) (AdviceStatus, error) {
	for status, name := range getAdviceStatusStrings() {
		if status != AdviceUnknown && name == s {
			return status, nil
		}
	}
	return AdviceUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid delivery advice status", s))
}

func (s AdviceStatus) Validate() error {
	if s <= AdviceUnknown || s > AdviceWithdrawn {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid advice status", s))
	}
	return nil
}

func (s AdviceStatus) String() string {
	if str, ok := getAdviceStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// OrderStatus of a delivery order.
type OrderStatus int

const (
	OrderUnknown OrderStatus = iota
	OrderIssued
	OrderExecuted
)

func getOrderStatusStrings() map[OrderStatus]string {
	return map[OrderStatus]string{
		OrderUnknown:  "unknown",
		OrderIssued:   "issued",
		OrderExecuted: "executed",
	}
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for status, name := range getOrderStatusStrings() {
		if status != OrderUnknown && name == s {
			return status, nil
		}
	}
	return OrderUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid delivery order status", s))
}

func (s OrderStatus) Validate() error {
	if s <= OrderUnknown || s > OrderExecuted {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

func (s OrderStatus) String() string {
	if str, ok := getOrderStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func illegalMove(entity string, from fmt.Stringer, action string) error {
	return errs.NewConflictErrorWithCause(entity, "cannot "+action, fmt.Errorf("status is %s", from))
}
