package booking

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status of a booking.
//
//	Pending ──> Confirmed ──> Active ──> Completed
//	   └───────────┴──> Cancelled
type Status int

const (
	Unknown Status = iota
	Pending
	Confirmed
	Active
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Active:    "active",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid booking status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CargoStatus of a cargo dispatch.
//
//	Submitted ──> Approved ──> Processing ──> Completed
//	    └──> Rejected
type CargoStatus int

const (
	CargoUnknown CargoStatus = iota
	CargoSubmitted
	CargoApproved
	CargoProcessing
	CargoCompleted
	CargoRejected
)

func getCargoStatusStrings() map[CargoStatus]string {
	return map[CargoStatus]string{
		CargoUnknown:    "unknown",
		CargoSubmitted:  "submitted",
		CargoApproved:   "approved",
		CargoProcessing: "processing",
		CargoCompleted:  "completed",
		CargoRejected:   "rejected",
	}
}

func ParseCargoStatus(s string) (CargoStatus, error) {
	for status, name := range getCargoStatusStrings() {
		if status != CargoUnknown && name == s {
			return status, nil
		}
	}
	return CargoUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid cargo status", s))
}

func (s CargoStatus) Validate() error {
	if s <= CargoUnknown || s > CargoRejected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid cargo status", s))
	}
	return nil
}

func (s CargoStatus) String() string {
	if str, ok := getCargoStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CartingStatus of a carting detail.
type CartingStatus int

const (
	CartingUnknown CartingStatus = iota
	CartingSubmitted
	CartingConfirmed
	CartingRejected
)

func getCartingStatusStrings() map[CartingStatus]string {
	return map[CartingStatus]string{
		CartingUnknown:   "unknown",
		CartingSubmitted: "submitted",
		CartingConfirmed: "confirmed",
		CartingRejected:  "rejected",
	}
}

func ParseCartingStatus(s string) (CartingStatus, error) {
	for status, name := range getCartingStatusStrings() {
		if status != CartingUnknown && name == s {
			return status, nil
		}
	}
	return CartingUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid carting status", s))
}

func (s CartingStatus) Validate() error {
	if s <= CartingUnknown || s > CartingRejected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid carting status", s))
	}
	return nil
}

func (s CartingStatus) String() string {
	if str, ok := getCartingStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func illegalMove(entity string, from fmt.Stringer, action string) error {
	return errs.NewConflictErrorWithCause(entity, "illegal status transition", fmt.Errorf("cannot %s from %s", action, from))
}
