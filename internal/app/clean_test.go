// Where: internal/app/clean_test.go
// What: Tests for the clean command.
// Why: Verify the confirmation gate and artifact removal.
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func cleanDeps(dir string, out *bytes.Buffer, terminal, confirm bool) Dependencies {
	return Dependencies{
		WorkDir:    dir,
		Out:        out,
		IsTerminal: func(*os.File) bool { return terminal },
		Confirm:    func(string) (bool, error) { return confirm, nil },
	}
}

func TestRunCleanWithYes(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "export"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var out bytes.Buffer
	exitCode := Run([]string{"clean", "--yes"}, cleanDeps(dir, &out, false, false))
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d", exitCode)
	}
	if _, err := os.Stat(filepath.Join(dir, "export")); !os.IsNotExist(err) {
		t.Fatalf("export dir survived clean")
	}
}

func TestRunCleanNonInteractiveRequiresYes(t *testing.T) {
	var out bytes.Buffer
	exitCode := Run([]string{"clean"}, cleanDeps(t.TempDir(), &out, false, false))
	if exitCode == 0 {
		t.Fatalf("expected refusal without --yes on non-TTY stdin")
	}
}

func TestRunCleanConfirmed(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "var"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var out bytes.Buffer
	exitCode := Run([]string{"clean"}, cleanDeps(dir, &out, true, true))
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d", exitCode)
	}
	if _, err := os.Stat(filepath.Join(dir, "var")); !os.IsNotExist(err) {
		t.Fatalf("var dir survived clean")
	}
}

func TestRunCleanDeclined(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "build"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var out bytes.Buffer
	exitCode := Run([]string{"clean"}, cleanDeps(dir, &out, true, false))
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit when declined")
	}
	if _, err := os.Stat(filepath.Join(dir, "build")); err != nil {
		t.Fatalf("build dir removed despite decline: %v", err)
	}
}
