package invoice

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status of an invoice.
//
//	Draft ──> Sent ──> Paid
//	  │        └──> Overdue ──> Paid
//	  └──> Cancelled
type Status int

const (
	Unknown Status = iota
	Draft
	Sent
	Paid
	Overdue
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Draft:     "draft",
		Sent:      "sent",
		Paid:      "paid",
		Overdue:   "overdue",
		Cancelled: "cancelled",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid invoice status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid invoice status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsPayable reports whether the customer may submit payment details.
func (s Status) IsPayable() bool {
	return s == Sent || s == Overdue
}
