package quote

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"
)

var (
	// ErrQuoteIsNotConstructed is returned when a Quote was not created through NewQuote or RestoreQuote.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")
)

// Details is the storage request submitted by a customer.
type Details struct {
	CustomerEmail  string
	SpaceRequired  int
	Duration       string
	Location       string
	GoodsType      string
	RequestedStart *time.Time
}

// Validate checks the mandatory request fields.
func (d Details) Validate() error {
	var problems []error
	if strings.TrimSpace(d.CustomerEmail) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("customerEmail"))
	}
	if d.SpaceRequired <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"spaceRequired", fmt.Errorf("%d is not greater than 0", d.SpaceRequired)))
	}
	if strings.TrimSpace(d.Duration) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("duration"))
	}
	if strings.TrimSpace(d.Location) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("location"))
	}
	return errors.Join(problems...)
}

// Quote is the aggregate root of a customer's storage request. It owns the
// coarse status, the current step code and the pending part of the workflow
// history. Every mutation records exactly one history event.
//
// Quote follows these invariants:
//   - status is consistent with the current step code
//   - status moves only along the edges defined by Status
//   - a booking confirmation requires a selected warehouse and a final price
//   - history only grows
type Quote struct {
	id             kernel.UUID
	customerID     kernel.UUID
	details        Details
	status         Status
	currentStep    workflow.Step
	flowType       FlowType
	assignedTo     *kernel.UUID
	warehouseID    *kernel.UUID
	finalPrice     *kernel.Money
	createdAt      time.Time
	updatedAt      time.Time
	storedHistory  int
	pendingHistory []workflow.Event
	isConstructed  bool
}

// NewQuote creates a pending quote at step C1 on behalf of a customer and
// records the creation event.
func NewQuote(id kernel.UUID, customer workflow.Actor, details Details, flow FlowType, now time.Time) (*Quote, error) {
	if err := errors.Join(id.Validate(), customer.Validate(), details.Validate()); err != nil {
		return nil, err
	}
	if customer.Role() != workflow.RoleCustomer {
		return nil, workflow.NewStepDeniedError(customer.Role(), workflow.StepQuoteCreated)
	}
	if flow == "" {
		flow = FlowStandard
	}
	if _, err := ParseFlowType(string(flow)); err != nil {
		return nil, err
	}

	q := &Quote{
		id:            id,
		customerID:    customer.ID(),
		details:       details,
		status:        Pending,
		currentStep:   workflow.StepQuoteCreated,
		flowType:      flow,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}
	if err := q.record(workflow.StepNone, Unknown, workflow.ActionCreate, customer, "", now); err != nil {
		return nil, err
	}
	return q, nil
}

// Snapshot carries the persisted state of a quote.
type Snapshot struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	Details       Details
	Status        Status
	CurrentStep   workflow.Step
	FlowType      FlowType
	AssignedTo    *kernel.UUID
	WarehouseID   *kernel.UUID
	FinalPrice    *kernel.Money
	CreatedAt     time.Time
	UpdatedAt     time.Time
	HistoryLength int
}

// RestoreQuote rebuilds a quote from storage and re-checks its invariants.
func RestoreQuote(s Snapshot) (*Quote, error) {
	q := &Quote{
		id:            s.ID,
		customerID:    s.CustomerID,
		details:       s.Details,
		status:        s.Status,
		currentStep:   s.CurrentStep,
		flowType:      s.FlowType,
		assignedTo:    s.AssignedTo,
		warehouseID:   s.WarehouseID,
		finalPrice:    s.FinalPrice,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		storedHistory: s.HistoryLength,
		isConstructed: true,
	}
	if err := errors.Join(q.id.Validate(), q.customerID.Validate()); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Validate checks construction and the status/step consistency.
func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	if err := q.status.Validate(); err != nil {
		return err
	}
	if err := q.currentStep.Validate(); err != nil {
		return err
	}
	if !slices.Contains(getConsistentStatuses(q.currentStep), q.status) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("status %s is inconsistent with step %s", q.status, q.currentStep),
		)
	}
	if q.status == BookingConfirmed && (q.warehouseID == nil || q.finalPrice == nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.New("booking_confirmed requires a warehouse and a final price"),
		)
	}
	return nil
}

// ID returns the quote's unique identifier.
func (q *Quote) ID() kernel.UUID {
	return q.id
}

func (q *Quote) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *Quote) Details() Details {
	return q.details
}

func (q *Quote) Status() Status {
	return q.status
}

func (q *Quote) CurrentStep() workflow.Step {
	return q.currentStep
}

func (q *Quote) FlowType() FlowType {
	return q.flowType
}

func (q *Quote) AssignedTo() *kernel.UUID {
	return q.assignedTo
}

func (q *Quote) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

func (q *Quote) FinalPrice() *kernel.Money {
	return q.finalPrice
}

func (q *Quote) CreatedAt() time.Time {
	return q.createdAt
}

func (q *Quote) UpdatedAt() time.Time {
	return q.updatedAt
}

// PendingEvents returns the events recorded since the quote was loaded.
func (q *Quote) PendingEvents() []workflow.Event {
	return slices.Clone(q.pendingHistory)
}

func (q *Quote) StoredHistoryLength() int {
	return q.storedHistory
}

// HistoryLength counts stored and pending events.
func (q *Quote) HistoryLength() int {
	return q.storedHistory + len(q.pendingHistory)
}

func (q *Quote) IsOwnedBy(customerID kernel.UUID) bool {
	return q.customerID.IsEqual(customerID)
}

// MarkHistoryStored folds pending events into the stored history once the
// repository has written them.
func (q *Quote) MarkHistoryStored() {
	q.storedHistory += len(q.pendingHistory)
	q.pendingHistory = nil
}

// Transition takes a step that has no side effects beyond the quote itself.
// Steps owned by a dedicated operation (RFQ fan-out, rate submission, rate
// selection and the post-booking cascade) are refused.
func (q *Quote) Transition(step workflow.Step, action workflow.Action, actor workflow.Actor, note string, now time.Time) error {
	if err := step.Validate(); err != nil {
		return err
	}
	if IsDedicatedStep(step) {
		return errs.NewValueIsInvalidErrorWithCause(
			"nextStep",
			fmt.Errorf("step %s is performed by its own operation", step),
		)
	}
	return q.apply(step, action, actor, note, now)
}

// SendRFQs records the RFQ fan-out (C3).
func (q *Quote) SendRFQs(actor workflow.Actor, note string, now time.Time) error {
	return q.apply(workflow.StepRFQSent, workflow.ActionSubmit, actor, note, now)
}

// ReceiveRate records a warehouse rate submission (C6).
func (q *Quote) ReceiveRate(actor workflow.Actor, note string, now time.Time) error {
	return q.apply(workflow.StepRateSubmitted, workflow.ActionSubmit, actor, note, now)
}

// SelectRate assigns the quote to the chosen warehouse at the rate's price and
// hands it to sales support (C9). A quote can be assigned only once.
func (q *Quote) SelectRate(
	warehouseID kernel.UUID,
	price kernel.Money,
	assignee kernel.UUID,
	actor workflow.Actor,
	now time.Time,
) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if err := errors.Join(warehouseID.Validate(), assignee.Validate(), price.ValidatePositive("price")); err != nil {
		return err
	}
	if q.assignedTo != nil {
		return errs.NewConflictError("quote", "already assigned to sales support")
	}
	if q.status != WarehouseQuoteReceived && q.status != RateConfirmed {
		return errs.NewConflictErrorWithCause(
			"quote",
			"not awaiting rate selection",
			fmt.Errorf("status is %s", q.status),
		)
	}

	prevWarehouse, prevPrice := q.warehouseID, q.finalPrice
	q.warehouseID = &warehouseID
	q.finalPrice = &price
	q.assignedTo = &assignee
	if err := q.apply(workflow.StepRateSelected, workflow.ActionSelect, actor, "", now); err != nil {
		q.warehouseID, q.finalPrice, q.assignedTo = prevWarehouse, prevPrice, nil
		return err
	}
	return nil
}

// Price sets the final price offered to the customer: C11 for the first
// quotation from processing, C15 for a revision of a quoted price.
func (q *Quote) Price(price kernel.Money, actor workflow.Actor, note string, now time.Time) (workflow.Step, error) {
	if err := q.Validate(); err != nil {
		return workflow.StepNone, err
	}
	if err := price.ValidatePositive("price"); err != nil {
		return workflow.StepNone, err
	}

	step := workflow.StepPriceQuoted
	if q.status == Quoted {
		step = workflow.StepPriceRevised
	}

	prev := q.finalPrice
	q.finalPrice = &price
	if err := q.apply(step, workflow.ActionPrice, actor, note, now); err != nil {
		q.finalPrice = prev
		return workflow.StepNone, err
	}
	return step, nil
}

// RecordStep appends a history event for a step that does not change the
// status: RFQ acknowledgement or rejection by a warehouse, invoice review,
// and the post-booking cascade.
func (q *Quote) RecordStep(step workflow.Step, action workflow.Action, actor workflow.Actor, note string, now time.Time) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if err := step.Validate(); err != nil {
		return err
	}
	if q.status.IsTerminal() {
		return errs.NewConflictErrorWithCause("quote", "quote is closed", fmt.Errorf("status is %s", q.status))
	}

	allowed := getConsistentStatuses(step)
	if rule, ok := getStepRules()[step]; ok && rule.to == Unknown {
		allowed = rule.from
	}
	if !slices.Contains(allowed, q.status) {
		return errs.NewConflictErrorWithCause(
			"quote",
			fmt.Sprintf("step %s is not allowed in status %s", step, q.status),
			fmt.Errorf("%s -> %s", q.status, step),
		)
	}

	from := q.currentStep
	q.currentStep = step
	q.updatedAt = now.UTC()
	if err := q.record(from, q.status, action, actor, note, now); err != nil {
		q.currentStep = from
		return err
	}
	return nil
}

func (q *Quote) apply(step workflow.Step, action workflow.Action, actor workflow.Actor, note string, now time.Time) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	next, err := resolveTarget(q.status, step, action)
	if err != nil {
		return err
	}

	switch {
	case step == workflow.StepDirectBookingConfirmed && q.status == Quoted && q.flowType != FlowDirect:
		return errs.NewConflictError("quote", "direct booking confirmation requires the direct flow")
	case IsBookingConfirmationStep(step) && (q.warehouseID == nil || q.finalPrice == nil):
		return errs.NewPreconditionFailedError("quote", "a selected warehouse and a final price")
	case step == workflow.StepPriceQuoted && q.finalPrice == nil:
		return errs.NewPreconditionFailedError("quote", "a final price")
	}

	fromStep, fromStatus := q.currentStep, q.status
	q.status = next
	q.currentStep = step
	q.updatedAt = now.UTC()
	if err = q.record(fromStep, fromStatus, action, actor, note, now); err != nil {
		q.status, q.currentStep = fromStatus, fromStep
		return err
	}
	return nil
}

func (q *Quote) record(from workflow.Step, fromStatus Status, action workflow.Action, actor workflow.Actor, note string, now time.Time) error {
	fromStatusName := ""
	if fromStatus != Unknown {
		fromStatusName = fromStatus.String()
	}
	event, err := workflow.NewEvent(
		q.id,
		q.HistoryLength()+1,
		from,
		q.currentStep,
		fromStatusName,
		q.status.String(),
		action,
		actor,
		note,
		now,
	)
	if err != nil {
		return err
	}
	q.pendingHistory = append(q.pendingHistory, event)
	return nil
}
