package domain

import (
	"errors"
	"testing"
)

func TestValidationError_Is(t *testing.T) {
	t.Parallel()

	err := error(&ValidationError{Fields: map[string]string{"command": msgRequired}})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{
		"plugin":  msgRequired,
		"command": "must not be blank",
	}}

	want := "validation error: command: must not be blank; plugin: is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRequired(t *testing.T) {
	t.Parallel()

	err := Required("id")

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if verr.Fields["id"] != msgRequired {
		t.Errorf("Fields[id] = %q, want %q", verr.Fields["id"], msgRequired)
	}
}
