// Where: internal/app/lint_test.go
// What: Tests for the lint command.
// Why: Verify schema validation is reachable from the CLI surface.
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const lintManifest = `{
  "app-id": "com.endlessm.Showmehow.Service",
  "runtime": "com.endlessm.apps.Platform",
  "sdk": "com.endlessm.apps.Sdk",
  "modules": [
    {"name": "showmehow", "sources": [{"type": "git", "path": "."}]}
  ]
}`

func TestRunLintExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, []byte(lintManifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	var out bytes.Buffer
	exitCode := Run([]string{"lint", path}, buildDeps(dir, nil, nil, &out))
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d (output: %s)", exitCode, out.String())
	}
}

func TestRunLintDefaultsToRenderedManifest(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "app.json.in")
	if err := os.WriteFile(templatePath, []byte("unused"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.json"), []byte(lintManifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	var out bytes.Buffer
	exitCode := Run([]string{"--template", templatePath, "lint"}, buildDeps(dir, nil, nil, &out))
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d (output: %s)", exitCode, out.String())
	}
}

func TestRunLintRejectsInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, []byte(`{"app-id": "x"}`), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	var out bytes.Buffer
	exitCode := Run([]string{"lint", path}, buildDeps(dir, nil, nil, &out))
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit for invalid manifest")
	}
}

func TestRunLintMissingFile(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	exitCode := Run([]string{"lint", filepath.Join(dir, "absent.json")}, buildDeps(dir, nil, nil, &out))
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit for missing manifest")
	}
}
