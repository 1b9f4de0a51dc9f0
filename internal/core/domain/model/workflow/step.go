package workflow

import (
	"fmt"
	"strconv"
	"strings"

	"procurement/internal/pkg/errs"
)

// Step is a workflow step code. Codes are stored verbatim in quote history.
type Step string

const (
	StepNone Step = ""

	StepQuoteCreated            Step = "C1"
	StepPurchaseAccepted        Step = "C2"
	StepRFQSent                 Step = "C3"
	StepPurchaseRejected        Step = "C4"
	StepRFQAcknowledged         Step = "C5"
	StepRateSubmitted           Step = "C6"
	StepWarehouseRejected       Step = "C7"
	StepInvoiceReviewed         Step = "C8"
	StepRateSelected            Step = "C9"
	StepRatesConfirmed          Step = "C10"
	StepPriceQuoted             Step = "C11"
	StepSalesRejected           Step = "C12"
	StepCustomerAgreed          Step = "C13"
	StepCustomerDeclined        Step = "C14"
	StepPriceRevised            Step = "C15"
	StepForwardedToSupervisor   Step = "C16"
	StepBookingConfirmed        Step = "C17"
	StepSupervisorRejected      Step = "C18"
	StepDirectBookingConfirmed  Step = "C19"
	StepBookingCancelled        Step = "C20"
	StepCargoDispatchSubmitted  Step = "C21"
	StepCargoDispatchApproved   Step = "C22"
	StepCargoDispatchRejected   Step = "C23"
	StepCargoProcessed          Step = "C24"
	StepCartingSubmitted        Step = "C25"
	StepCartingConfirmed        Step = "C26"
	StepCartingRejected         Step = "C27"
	StepDeliveryRequested       Step = "C28"
	StepDeliveryOrderExecuted   Step = "C29"
	StepDeliveryReportSubmitted Step = "C30"
	StepInvoiceRequested        Step = "C31"
	StepDeliveryReviewed        Step = "C32"
	StepPaymentSubmitted        Step = "C33"
)

const (
	firstStep = 1
	lastStep  = 33
)

// ParseStep validates a step code received from a client or the store.
func ParseStep(s string) (Step, error) {
	step := Step(strings.ToUpper(strings.TrimSpace(s)))
	if err := step.Validate(); err != nil {
		return StepNone, err
	}
	return step, nil
}

// Number returns the numeric part of the code, or 0 for a malformed code.
func (s Step) Number() int {
	if !strings.HasPrefix(string(s), "C") {
		return 0
	}
	n, err := strconv.Atoi(string(s)[1:])
	if err != nil || n < firstStep || n > lastStep {
		return 0
	}
	return n
}

func (s Step) Validate() error {
	if s.Number() == 0 || string(s) != fmt.Sprintf("C%d", s.Number()) {
		return errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%q is not a step code between C1 and C33", string(s)))
	}
	return nil
}

func (s Step) String() string {
	return string(s)
}

// AllSteps returns C1..C33 in order.
func AllSteps() []Step {
	steps := make([]Step, 0, lastStep)
	for i := firstStep; i <= lastStep; i++ {
		steps = append(steps, Step(fmt.Sprintf("C%d", i)))
	}
	return steps
}
