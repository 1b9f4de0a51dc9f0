// Package pgerr maps database failures onto the application's typed errors.
package pgerr

import (
	"errors"

	"procurement/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// IsDuplicate reports whether err is a unique-index violation. It needs a
// gorm.DB opened with TranslateError, or a raw lib/pq error.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// Translate turns a duplicate-key failure on entity into a Conflict and leaves
// every other error untouched.
func Translate(entity string, err error) error {
	if err == nil {
		return nil
	}
	if IsDuplicate(err) {
		return errs.NewConflictErrorWithCause(entity, "already exists", err)
	}
	return err
}

// NotFound turns gorm.ErrRecordNotFound into an ObjectNotFoundError for entity.
func NotFound(entity string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, id)
	}
	return err
}
