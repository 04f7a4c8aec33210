// Where: internal/clierr/exit_error_test.go
// What: Tests for exit-code carrying errors.
// Why: Keep code extraction and wrapping semantics stable.
package clierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeOf(t *testing.T) {
	if got := ExitCodeOf(nil); got != 0 {
		t.Fatalf("nil error should be 0, got %d", got)
	}
	if got := ExitCodeOf(errors.New("plain")); got != 1 {
		t.Fatalf("plain error should be 1, got %d", got)
	}
	if got := ExitCodeOf(New(42, "boom")); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestExitCodeOfWrappedChain(t *testing.T) {
	err := fmt.Errorf("outer: %w", Wrap(7, "step failed", errors.New("inner")))
	if got := ExitCodeOf(err); got != 7 {
		t.Fatalf("expected 7 through the chain, got %d", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("inner")
	err := Wrapf(3, cause, "step %s failed", "export")
	if !errors.Is(err, cause) {
		t.Fatalf("cause lost through wrapping")
	}
	if err.Error() != "step export failed: inner" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestNormalizeRejectsZero(t *testing.T) {
	if got := ExitCodeOf(New(0, "boom")); got != 1 {
		t.Fatalf("zero code must normalize to 1, got %d", got)
	}
}
