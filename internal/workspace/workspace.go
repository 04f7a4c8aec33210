// Where: internal/workspace/workspace.go
// What: Build artifact cleaning for the working directory.
// Why: Guarantee a clean build by removing stale outputs before each run.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Artifacts are the paths left behind by flatpak-builder and build-export
// that must not leak into the next run.
var Artifacts = []string{"files", "var", "metadata", "export", "build"}

// Clean removes the given artifact paths under dir. Removal is
// remove-if-present: paths that do not exist are not an error.
func Clean(dir string, paths ...string) error {
	if len(paths) == 0 {
		paths = Artifacts
	}
	for _, path := range paths {
		target := filepath.Join(dir, path)
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("remove %s: %w", target, err)
		}
	}
	return nil
}
