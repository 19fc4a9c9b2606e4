package domain

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a referenced encounter, participant, condition,
// or library entry does not exist.
type NotFoundError struct {
	// Resource is the entity kind, e.g. "encounter" or "participant".
	Resource string
	// ID is the identifier that failed to resolve.
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// NotFound constructs a NotFoundError for the given resource and id.
func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError reports an out-of-range or malformed input: negative HP,
// negative healing, a death-save roll outside [1,20], and similar.
type ValidationError struct {
	// Field names the offending input.
	Field string
	// Reason describes the constraint that was violated.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid constructs a ValidationError for the given field.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// BusinessLogicError reports an operation that is well-formed but not legal
// in the current state: mutating a completed encounter, rolling a death save
// for a conscious participant, attempting a save on a condition with no DC.
type BusinessLogicError struct {
	// Reason describes why the operation is not permitted.
	Reason string
}

// Error implements the error interface.
func (e *BusinessLogicError) Error() string { return e.Reason }

// NotPermitted constructs a BusinessLogicError.
func NotPermitted(format string, args ...any) error {
	return &BusinessLogicError{Reason: fmt.Sprintf(format, args...)}
}

// IsBusinessLogic reports whether err is (or wraps) a BusinessLogicError.
func IsBusinessLogic(err error) bool {
	var be *BusinessLogicError
	return errors.As(err, &be)
}
