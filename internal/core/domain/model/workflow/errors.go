package workflow

import "procurement/internal/pkg/errs"

// NewStepDeniedError reports that role is not permitted to take step.
func NewStepDeniedError(role Role, step Step) *errs.PermissionDeniedError {
	return errs.NewPermissionDeniedError(string(role), stepAction(step))
}

// NewWarehouseScopeError reports a warehouse user acting on another warehouse's records.
func NewWarehouseScopeError(role Role) *errs.PermissionDeniedError {
	return errs.NewPermissionDeniedError(string(role), "act on records of another warehouse")
}

// NewOwnershipError reports a customer acting on another customer's records.
func NewOwnershipError(role Role) *errs.PermissionDeniedError {
	return errs.NewPermissionDeniedError(string(role), "act on another customer's records")
}
