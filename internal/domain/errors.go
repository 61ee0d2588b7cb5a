package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")

	// ErrUnknownLocation is reported when a plugin contributes to a menu
	// location that has no entry in the location table.
	ErrUnknownLocation = errors.New("unknown menu location")

	// ErrCommandNotRegistered is returned by a host menu registry when an
	// action targets a command the host command registry does not know yet.
	ErrCommandNotRegistered = errors.New("command not registered")
)

// msgRequired is the standard message for required fields.
const msgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Required returns a ValidationError for a single missing field.
func Required(field string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msgRequired}}
}
