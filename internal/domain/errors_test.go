package domain

import (
	"errors"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("query.max_letters", "must be > 0")

	if got := err.Error(); got != "validation: query.max_letters: must be > 0" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "dictionary.source", Message: "unknown"},
		{Field: "finder.workers", Message: "must be >= 1"},
	})

	want := "validation: 2 errors (dictionary.source: unknown; finder.workers: must be >= 1)"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrNotFound, ErrValidation) {
		t.Fatal("ErrNotFound and ErrValidation must be distinct")
	}
}
