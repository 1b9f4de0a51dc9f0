package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrObjectNotFound     = errors.New("object not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrConflict           = errors.New("conflict")
	ErrPreconditionFailed = errors.New("precondition failed")
)

// IsValidation reports whether err is one of the input validation errors
// (required, invalid or out of range values).
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// unwrapWith returns the sentinel followed by the cause, if any, so that
// errors.Is matches both the error kind and the underlying reason.
func unwrapWith(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, cause.Error())
}

func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError is returned when a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() []error {
	return unwrapWith(ErrValueIsRequired, e.Cause)
}

// ValueIsInvalidError is returned when a value is present but malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() []error {
	return unwrapWith(ErrValueIsInvalid, e.Cause)
}

// ValueIsOutOfRangeError is returned when a value falls outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() []error {
	return unwrapWith(ErrValueIsOutOfRange, e.Cause)
}

// ObjectNotFoundError is returned when an entity lookup misses.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() []error {
	return unwrapWith(ErrObjectNotFound, e.Cause)
}

// PermissionDeniedError is returned when the acting role may not perform an action.
type PermissionDeniedError struct {
	Role   string
	Action string
	Cause  error
}

func NewPermissionDeniedError(role, action string) *PermissionDeniedError {
	return &PermissionDeniedError{Role: role, Action: action}
}

func NewPermissionDeniedErrorWithCause(role, action string, cause error) *PermissionDeniedError {
	return &PermissionDeniedError{Role: role, Action: action, Cause: cause}
}

func (e *PermissionDeniedError) Error() string {
	return withCause(fmt.Sprintf("%s: role %q may not %s", ErrPermissionDenied, e.Role, e.Action), e.Cause)
}

func (e *PermissionDeniedError) Unwrap() []error {
	return unwrapWith(ErrPermissionDenied, e.Cause)
}

// ConflictError is returned when a write collides with the current state:
// duplicate creation, out-of-order stage, lost race, expired or answered RFQ.
type ConflictError struct {
	Entity string
	Reason string
	Cause  error
}

func NewConflictError(entity, reason string) *ConflictError {
	return &ConflictError{Entity: entity, Reason: reason}
}

func NewConflictErrorWithCause(entity, reason string, cause error) *ConflictError {
	return &ConflictError{Entity: entity, Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s: %s", ErrConflict, e.Entity, e.Reason), e.Cause)
}

func (e *ConflictError) Unwrap() []error {
	return unwrapWith(ErrConflict, e.Cause)
}

// PreconditionFailedError is returned when a transition needs data that is not set yet.
type PreconditionFailedError struct {
	Entity      string
	Requirement string
	Cause       error
}

func NewPreconditionFailedError(entity, requirement string) *PreconditionFailedError {
	return &PreconditionFailedError{Entity: entity, Requirement: requirement}
}

func NewPreconditionFailedErrorWithCause(entity, requirement string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Entity: entity, Requirement: requirement, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s requires %s", ErrPreconditionFailed, e.Entity, e.Requirement), e.Cause)
}

func (e *PreconditionFailedError) Unwrap() []error {
	return unwrapWith(ErrPreconditionFailed, e.Cause)
}
