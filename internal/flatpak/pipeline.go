// Where: internal/flatpak/pipeline.go
// What: The three external build steps: build, export, bundle.
// Why: Fail fast on the first non-zero exit and propagate its status.
package flatpak

import (
	"context"
	"fmt"
	"strings"

	"github.com/flatforge/flatforge/internal/clierr"
)

const (
	builderBin = "flatpak-builder"
	flatpakBin = "flatpak"

	// BuildDir is the output directory flatpak-builder populates and
	// build-export reads from.
	BuildDir = "build"
)

// Pipeline drives flatpak-builder and flatpak in the working directory.
// Steps are strictly sequential; no retry, no rollback, partial artifacts
// stay on disk when a step fails.
type Pipeline struct {
	Runner CommandRunner
	Dir    string
}

// Build runs flatpak-builder against the rendered manifest with ccache
// enabled. Blocks until the builder exits.
func (p Pipeline) Build(ctx context.Context, manifestPath string) error {
	return p.run(ctx, builderBin, BuildDir, "--ccache", manifestPath)
}

// Export commits the build directory into the local repository under the
// given branch.
func (p Pipeline) Export(ctx context.Context, repo, branch string) error {
	return p.run(ctx, flatpakBin, "build-export", repo, BuildDir, branch)
}

// Bundle produces the single-file bundle for appID from the repository.
func (p Pipeline) Bundle(ctx context.Context, repo, bundlePath, appID string) error {
	return p.run(ctx, flatpakBin, "build-bundle", repo, bundlePath, appID)
}

func (p Pipeline) run(ctx context.Context, name string, args ...string) error {
	if p.Runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if err := p.Runner.Run(ctx, p.Dir, name, args...); err != nil {
		return clierr.Wrapf(exitStatus(err), err, "%s %s failed", name, strings.Join(args, " "))
	}
	return nil
}
