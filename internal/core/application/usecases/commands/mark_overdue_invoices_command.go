package commands

import (
	"errors"
	"time"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrMarkOverdueInvoicesCommandIsNotConstructed = errors.New(
	"MarkOverdueInvoicesCommand must be created via NewMarkOverdueInvoicesCommand constructor",
)

// MarkOverdueInvoicesCommand flags sent invoices past their due date.
type MarkOverdueInvoicesCommand struct {
	now   time.Time
	limit int

	guard guard.ConstructorGuard
}

func NewMarkOverdueInvoicesCommand(now time.Time, limit int) (MarkOverdueInvoicesCommand, error) {
	if now.IsZero() {
		return MarkOverdueInvoicesCommand{}, errs.NewValueIsRequiredError("now")
	}
	if limit == 0 {
		limit = DefaultRetryBatch
	}
	if limit < 0 || limit > 1000 {
		return MarkOverdueInvoicesCommand{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, 1000)
	}
	return MarkOverdueInvoicesCommand{
		now:   now.UTC(),
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOverdueInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueInvoicesCommandIsNotConstructed)
}

func (c MarkOverdueInvoicesCommand) Now() time.Time { return c.now }
func (c MarkOverdueInvoicesCommand) Limit() int { return c.limit }
