package quote

import (
	"fmt"
	"slices"

	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
)

// stepRule describes a forward step: the statuses it may be taken from and
// the status it leads to. A zero target keeps the current status.
type stepRule struct {
	from []Status
	to   Status
}

func getStepRules() map[workflow.Step]stepRule {
	rules := map[workflow.Step]stepRule{
		workflow.StepPurchaseAccepted:       {from: []Status{Pending}, to: WarehouseQuoteRequested},
		workflow.StepRFQSent:                {from: []Status{Pending, WarehouseQuoteRequested, WarehouseQuoteReceived}, to: WarehouseQuoteRequested},
		workflow.StepRFQAcknowledged:        {from: []Status{WarehouseQuoteRequested, WarehouseQuoteReceived}},
		workflow.StepRateSubmitted:          {from: []Status{WarehouseQuoteRequested, WarehouseQuoteReceived}, to: WarehouseQuoteReceived},
		workflow.StepRateSelected:           {from: []Status{WarehouseQuoteReceived, RateConfirmed}, to: Processing},
		workflow.StepRatesConfirmed:         {from: []Status{WarehouseQuoteReceived}, to: RateConfirmed},
		workflow.StepPriceQuoted:            {from: []Status{Processing, Quoted}, to: Quoted},
		workflow.StepCustomerAgreed:         {from: []Status{Quoted}, to: CustomerConfirmationPending},
		workflow.StepPriceRevised:           {from: []Status{Quoted}, to: Quoted},
		workflow.StepForwardedToSupervisor:  {from: []Status{CustomerConfirmationPending}},
		workflow.StepBookingConfirmed:       {from: []Status{CustomerConfirmationPending, BookingConfirmed}, to: BookingConfirmed},
		workflow.StepDirectBookingConfirmed: {from: []Status{Quoted, CustomerConfirmationPending, BookingConfirmed}, to: BookingConfirmed},
	}
	// invoice review and the post-booking cascade leave the quote booked
	for _, step := range postBookingSteps() {
		rules[step] = stepRule{from: []Status{BookingConfirmed}}
	}
	return rules
}

func postBookingSteps() []workflow.Step {
	return []workflow.Step{
		workflow.StepInvoiceReviewed,
		workflow.StepBookingCancelled,
		workflow.StepCargoDispatchSubmitted,
		workflow.StepCargoDispatchApproved,
		workflow.StepCargoDispatchRejected,
		workflow.StepCargoProcessed,
		workflow.StepCartingSubmitted,
		workflow.StepCartingConfirmed,
		workflow.StepCartingRejected,
		workflow.StepDeliveryRequested,
		workflow.StepDeliveryOrderExecuted,
		workflow.StepDeliveryReportSubmitted,
		workflow.StepInvoiceRequested,
		workflow.StepDeliveryReviewed,
		workflow.StepPaymentSubmitted,
	}
}

// rejection steps end the quote from any non-terminal status
func getRejectionSteps() []workflow.Step {
	return []workflow.Step{
		workflow.StepPurchaseRejected,
		workflow.StepWarehouseRejected,
		workflow.StepSalesRejected,
		workflow.StepCustomerDeclined,
		workflow.StepSupervisorRejected,
	}
}

// steps that carry side effects and are only reachable through their own operation
func getDedicatedSteps() []workflow.Step {
	return append([]workflow.Step{
		workflow.StepQuoteCreated,
		workflow.StepRFQSent,
		workflow.StepRateSubmitted,
		workflow.StepRateSelected,
	}, postBookingSteps()...)
}

// getConsistentStatuses lists the statuses a quote may hold while its current
// step is the given one. It ties the step code to the coarse status.
func getConsistentStatuses(step workflow.Step) []Status {
	switch step {
	case workflow.StepQuoteCreated:
		return []Status{Pending}
	case workflow.StepPurchaseAccepted:
		return []Status{WarehouseQuoteRequested}
	case workflow.StepRFQSent, workflow.StepRFQAcknowledged:
		return []Status{WarehouseQuoteRequested, WarehouseQuoteReceived}
	case workflow.StepWarehouseRejected:
		return []Status{WarehouseQuoteRequested, WarehouseQuoteReceived, Rejected}
	case workflow.StepRateSubmitted:
		return []Status{WarehouseQuoteReceived}
	case workflow.StepRateSelected:
		return []Status{Processing}
	case workflow.StepRatesConfirmed:
		return []Status{RateConfirmed}
	case workflow.StepPriceQuoted, workflow.StepPriceRevised:
		return []Status{Quoted}
	case workflow.StepCustomerAgreed, workflow.StepForwardedToSupervisor:
		return []Status{CustomerConfirmationPending}
	case workflow.StepCustomerDeclined:
		return []Status{Rejected, Cancelled}
	case workflow.StepPurchaseRejected, workflow.StepSalesRejected, workflow.StepSupervisorRejected:
		return []Status{Rejected}
	}
	if slices.Contains(postBookingSteps(), step) ||
		step == workflow.StepBookingConfirmed || step == workflow.StepDirectBookingConfirmed {
		return []Status{BookingConfirmed}
	}
	return nil
}

// IsBookingConfirmationStep reports whether entering step requires a booking to exist.
func IsBookingConfirmationStep(step workflow.Step) bool {
	return step == workflow.StepBookingConfirmed || step == workflow.StepDirectBookingConfirmed
}

// IsRejectionStep reports whether step terminates the quote.
func IsRejectionStep(step workflow.Step) bool {
	return slices.Contains(getRejectionSteps(), step)
}

// IsDedicatedStep reports whether step is only reachable through its own operation.
func IsDedicatedStep(step workflow.Step) bool {
	return slices.Contains(getDedicatedSteps(), step)
}

// resolveTarget returns the status the quote moves to when taking step with action.
func resolveTarget(current Status, step workflow.Step, action workflow.Action) (Status, error) {
	if IsRejectionStep(step) {
		if step == workflow.StepCustomerDeclined && action == workflow.ActionCancel {
			return current.Cancel()
		}
		return current.Reject()
	}

	rule, ok := getStepRules()[step]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%s has no quote transition", step))
	}
	if !slices.Contains(rule.from, current) {
		return Unknown, errs.NewConflictErrorWithCause(
			"quote",
			fmt.Sprintf("step %s is not allowed in status %s", step, current),
			fmt.Errorf("%s -> %s", current, step),
		)
	}

	if rule.to == Unknown {
		return current, nil
	}
	target := rule.to
	if step == workflow.StepRFQSent && current == WarehouseQuoteReceived {
		target = current
	}
	return current.MoveTo(target)
}
