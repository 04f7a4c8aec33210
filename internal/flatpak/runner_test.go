// Where: internal/flatpak/runner_test.go
// What: Tests for runner error to exit-status mapping.
// Why: Keep the failing tool's status propagating through the pipeline.
package flatpak

import (
	"errors"
	"os/exec"
	"testing"
)

func TestExitStatusMissingBinary(t *testing.T) {
	err := &exec.Error{Name: "flatpak-builder", Err: exec.ErrNotFound}
	if got := exitStatus(err); got != 127 {
		t.Fatalf("expected 127 for missing binary, got %d", got)
	}
}

func TestExitStatusGenericError(t *testing.T) {
	if got := exitStatus(errors.New("boom")); got != 1 {
		t.Fatalf("expected 1 for generic error, got %d", got)
	}
}
