package errors

import (
	"fmt"
	"testing"
)

func TestNotFoundCarriesKey(t *testing.T) {
	err := NotFound("composition", "Silk 100%")

	if err.Type != TypeNotFound {
		t.Fatalf("Type = %s, want %s", err.Type, TypeNotFound)
	}
	if got := err.Context["composition"]; got != "Silk 100%" {
		t.Errorf("Context[composition] = %v, want %q", got, "Silk 100%")
	}
	want := "[NOT_FOUND] composition not found: Silk 100%"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestTypeOfFollowsWrapping(t *testing.T) {
	inner := Input("gsm out of range")
	wrapped := fmt.Errorf("estimate: %w", inner)

	if got := TypeOf(wrapped); got != TypeInput {
		t.Errorf("TypeOf = %s, want %s", got, TypeInput)
	}
	if !IsType(wrapped, TypeInput) {
		t.Error("IsType should see through fmt.Errorf wrapping")
	}
	if got := TypeOf(fmt.Errorf("plain")); got != TypeInternal {
		t.Errorf("TypeOf(plain) = %s, want %s", got, TypeInternal)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Export("failed to write workbook", cause)

	if err.Unwrap() != cause {
		t.Fatal("Unwrap did not return cause")
	}
	want := "[EXPORT_ERROR] failed to write workbook: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
