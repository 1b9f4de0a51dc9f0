package quote

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status is the coarse lifecycle state of a quote.
//
//	Pending ──> WarehouseQuoteRequested ──> WarehouseQuoteReceived ──┬──> RateConfirmed ──┐
//	                                                                 └───────────────────┴──> Processing
//	Processing ──> Quoted ──> CustomerConfirmationPending ──> BookingConfirmed
//	                 └──────────── (direct flow) ────────────────────┘
//
// Rejected is reachable from every non-terminal status, Cancelled from every
// non-terminal status except BookingConfirmed. Rejected and Cancelled are terminal.
type Status int

const (
	Unknown Status = iota
	Pending
	WarehouseQuoteRequested
	WarehouseQuoteReceived
	RateConfirmed
	Processing
	Quoted
	CustomerConfirmationPending
	BookingConfirmed
	Rejected
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                     "unknown",
		Pending:                     "pending",
		WarehouseQuoteRequested:     "warehouse_quote_requested",
		WarehouseQuoteReceived:      "warehouse_quote_received",
		RateConfirmed:               "rate_confirmed",
		Processing:                  "processing",
		Quoted:                      "quoted",
		CustomerConfirmationPending: "customer_confirmation_pending",
		BookingConfirmed:            "booking_confirmed",
		Rejected:                    "rejected",
		Cancelled:                   "cancelled",
	}
}

// forward edges; rejection and cancellation are handled separately
func getForwardEdges() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no forward edges
	return map[Status][]Status{
		Pending:                     {WarehouseQuoteRequested},
		WarehouseQuoteRequested:     {WarehouseQuoteRequested, WarehouseQuoteReceived},
		WarehouseQuoteReceived:      {WarehouseQuoteReceived, RateConfirmed, Processing},
		RateConfirmed:               {Processing},
		Processing:                  {Quoted},
		Quoted:                      {Quoted, CustomerConfirmationPending, BookingConfirmed},
		CustomerConfirmationPending: {BookingConfirmed},
		BookingConfirmed:            {BookingConfirmed},
	}
}

// ParseStatus converts the persisted name of a status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid quote status", s))
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

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Cancelled
}

// CanMoveTo reports whether next is reachable from s in one step.
func (s Status) CanMoveTo(next Status) bool {
	if s.Validate() != nil || s.IsTerminal() {
		return false
	}
	switch next {
	case Rejected:
		return true
	case Cancelled:
		return s != BookingConfirmed
	}
	for _, candidate := range getForwardEdges()[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// MoveTo returns next if the edge exists, otherwise a ConflictError.
func (s Status) MoveTo(next Status) (Status, error) {
	if !s.CanMoveTo(next) {
		return Unknown, errs.NewConflictErrorWithCause(
			"quote",
			"illegal status transition",
			fmt.Errorf("%s -> %s", s, next),
		)
	}
	return next, nil
}

// Reject moves any non-terminal status to Rejected.
func (s Status) Reject() (Status, error) {
	return s.MoveTo(Rejected)
}

// Cancel moves any non-terminal status other than BookingConfirmed to Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.MoveTo(Cancelled)
}
