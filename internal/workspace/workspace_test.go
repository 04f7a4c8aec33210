// Where: internal/workspace/workspace_test.go
// What: Tests for artifact cleaning.
// Why: Ensure stale artifacts go away and absent ones are tolerated.
package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanRemovesExistingArtifacts(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "build", "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "metadata"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Clean(dir); err != nil {
		t.Fatalf("clean: %v", err)
	}

	for _, path := range Artifacts {
		if _, err := os.Stat(filepath.Join(dir, path)); !os.IsNotExist(err) {
			t.Fatalf("artifact %s still present (err=%v)", path, err)
		}
	}
}

func TestCleanMissingArtifactsIsNoError(t *testing.T) {
	if err := Clean(t.TempDir()); err != nil {
		t.Fatalf("clean of empty dir: %v", err)
	}
}

func TestCleanLeavesUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "com.endlessm.Showmehow.Service.json.in")
	if err := os.WriteFile(keep, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Clean(dir); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Fatalf("template removed by clean: %v", err)
	}
}
