package rfq

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status is the lifecycle of a request for quotation sent to one warehouse.
//
//	Sent ──┬──> Responded ──> Cancelled
//	       ├──> Cancelled
//	       └──> Expired
type Status int

const (
	Unknown Status = iota
	Sent
	Responded
	Expired
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Sent:      "sent",
		Responded: "responded",
		Expired:   "expired",
		Cancelled: "cancelled",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid rfq status", s))
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

// IsActive reports whether the RFQ still blocks a new RFQ for the same quote and warehouse.
func (s Status) IsActive() bool {
	return s == Sent || s == Responded
}

// RateStatus is the lifecycle of a warehouse's rate offer.
type RateStatus int

const (
	RateUnknown RateStatus = iota
	RatePending
	RateAccepted
	RateRejected
)

func getRateStatusStrings() map[RateStatus]string {
	return map[RateStatus]string{
		RateUnknown:  "unknown",
		RatePending:  "pending",
		RateAccepted: "accepted",
		RateRejected: "rejected",
	}
}

func ParseRateStatus(s string) (RateStatus, error) {
	for status, name := range getRateStatusStrings() {
		if status != RateUnknown && name == s {
			return status, nil
		}
	}
	return RateUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid rate status", s))
}

func (s RateStatus) Validate() error {
	if s <= RateUnknown || s > RateRejected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid rate status", s))
	}
	return nil
}

func (s RateStatus) String() string {
	if str, ok := getRateStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
