// Package errs provides standardized error types for the procurement workflow.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application and mapped to HTTP status codes at the edge.
//
// The package includes one error type per failure class:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - PermissionDeniedError: the acting role is not allowed to take the step
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ConflictError: the write collides with the current state
//   - PreconditionFailedError: a transition needs data that is not set yet
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() returning the sentinel and the cause, so errors.Is matches both
package errs
