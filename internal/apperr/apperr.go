// Package apperr defines the error taxonomy shared by all services.
// Callers branch on these with errors.As; everything else is wrapped
// with %w and treated as infrastructure failure.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected command due to bad input.
// The registry is left untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown identifier passed to an operation.
type NotFoundError struct {
	Kind string // "work order", "part", "technician"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
