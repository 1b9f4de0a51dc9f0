// Package guard provides ConstructorGuard, a marker embedded in commands, queries
// and value objects to detect instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a zero-size-ish flag set only by NewConstructorGuard.
// A zero value guard fails validation, which lets a type reject struct literals:
//
//	type SubmitRateCommand struct {
//	    rfqID kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (c SubmitRateCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitRateCommandIsNotConstructed)
//	}
//
// ConstructorGuard is immutable and safe to copy and to use concurrently.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
