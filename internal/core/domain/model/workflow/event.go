package workflow

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// Action names what happened at a step.
type Action string

const (
	ActionCreate   Action = "create"
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionCancel   Action = "cancel"
	ActionSubmit   Action = "submit"
	ActionApprove  Action = "approve"
	ActionSelect   Action = "select"
	ActionPrice    Action = "price"
	ActionForward  Action = "forward"
	ActionConfirm  Action = "confirm"
	ActionProcess  Action = "process"
	ActionComplete Action = "complete"
	ActionExecute  Action = "execute"
	ActionRequest  Action = "request"
	ActionPay      Action = "pay"
	ActionIssue    Action = "issue"
)

func (a Action) String() string {
	return string(a)
}

// Event is one immutable entry of a quote's workflow history.
// Seq starts at 1 and is unique per quote.
type Event struct {
	QuoteID    kernel.UUID
	Seq        int
	FromStep   Step
	ToStep     Step
	FromStatus string
	ToStatus   string
	Action     Action
	ActorRole  Role
	ActorID    kernel.UUID
	Note       string
	OccurredAt time.Time
}

// NewEvent builds a history entry stamped in UTC.
func NewEvent(
	quoteID kernel.UUID,
	seq int,
	from, to Step,
	fromStatus, toStatus string,
	action Action,
	actor Actor,
	note string,
	at time.Time,
) (Event, error) {
	if err := quoteID.Validate(); err != nil {
		return Event{}, err
	}
	if err := actor.Validate(); err != nil {
		return Event{}, err
	}
	if err := to.Validate(); err != nil {
		return Event{}, err
	}
	if seq < 1 {
		return Event{}, errs.NewValueIsOutOfRangeError("seq", seq, 1, "unbounded")
	}
	if action == "" {
		return Event{}, errs.NewValueIsRequiredError("action")
	}
	return Event{
		QuoteID:    quoteID,
		Seq:        seq,
		FromStep:   from,
		ToStep:     to,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		Action:     action,
		ActorRole:  actor.Role(),
		ActorID:    actor.ID(),
		Note:       note,
		OccurredAt: at.UTC(),
	}, nil
}
