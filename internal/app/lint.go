// Where: internal/app/lint.go
// What: The lint command.
// Why: Validate a rendered manifest before flatpak-builder ever sees it.
package app

import (
	"io"
	"os"

	"github.com/flatforge/flatforge/internal/manifest"
	"github.com/flatforge/flatforge/internal/ui"
)

// runLint validates a rendered manifest (JSON or YAML) against the
// embedded flatpak-builder schema. The build pipeline itself never
// inspects manifest content; lint is the opt-in check.
func runLint(cli CLI, deps Dependencies, out io.Writer) int {
	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	path := cli.Lint.Manifest
	if path == "" {
		path, err = manifest.OutputPath(ctxInfo.TemplatePath)
		if err != nil {
			return exitWithError(out, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return exitWithError(out, err)
	}

	if _, err := manifest.Validate(data); err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success("manifest valid: " + path)
	return 0
}
