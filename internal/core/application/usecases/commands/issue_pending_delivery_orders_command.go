package commands

import (
	"errors"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// DefaultRetryBatch bounds how many advices one retry pass handles.
const DefaultRetryBatch = 50

var ErrIssuePendingDeliveryOrdersCommandIsNotConstructed = errors.New(
	"IssuePendingDeliveryOrdersCommand must be created via NewIssuePendingDeliveryOrdersCommand constructor",
)

// IssuePendingDeliveryOrdersCommand retries the orders of advices left issued
// by a failed approval.
type IssuePendingDeliveryOrdersCommand struct {
	limit int

	guard guard.ConstructorGuard
}

func NewIssuePendingDeliveryOrdersCommand(limit int) (IssuePendingDeliveryOrdersCommand, error) {
	if limit == 0 {
		limit = DefaultRetryBatch
	}
	if limit < 0 || limit > 1000 {
		return IssuePendingDeliveryOrdersCommand{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, 1000)
	}
	return IssuePendingDeliveryOrdersCommand{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c IssuePendingDeliveryOrdersCommand) Validate() error {
	return c.guard.Validate(ErrIssuePendingDeliveryOrdersCommandIsNotConstructed)
}

func (c IssuePendingDeliveryOrdersCommand) Limit() int {
	return c.limit
}
