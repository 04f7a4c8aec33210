// Where: internal/app/app_test.go
// What: Tests for CLI parsing and dispatch.
// Why: Keep the command surface and exit conventions stable.
package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	exitCode := Run([]string{"version"}, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d", exitCode)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("version output is empty")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	exitCode := Run([]string{"frobnicate"}, Dependencies{Out: &out, WorkDir: t.TempDir()})
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit for unknown command")
	}
}

func TestRunNoArguments(t *testing.T) {
	var out bytes.Buffer
	exitCode := Run(nil, Dependencies{Out: &out, WorkDir: t.TempDir()})
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit without a command")
	}
}
