// Package services provides the persistence gateway: one repository per
// aggregate, all backed by the shared Ent client. Services own their
// transactions; callers never see a half-applied write.
package services

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to API handlers and the scheduler.
var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyInProgress indicates a same-scope job is already pending or
	// running. Schedulers count this as deduped rather than skipped.
	ErrAlreadyInProgress = errors.New("job already in progress")

	// ErrTooManyPending indicates the per-(prompt, type) pending cap was hit.
	ErrTooManyPending = errors.New("too many pending jobs for this prompt and type")

	// ErrNotPending indicates a mutation that is only legal on pending jobs.
	ErrNotPending = errors.New("job is not pending")
)

// ValidationError reports an invalid request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
