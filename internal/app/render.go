// Where: internal/app/render.go
// What: The render command.
// Why: Produce the concrete manifest without running external tools.
package app

import (
	"io"

	"github.com/flatforge/flatforge/internal/manifest"
	"github.com/flatforge/flatforge/internal/ui"
)

func runRender(cli CLI, deps Dependencies, out io.Writer) int {
	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	manifestPath, err := manifest.RenderFile(ctxInfo.TemplatePath, ctxInfo.Config)
	if err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success("manifest written: " + manifestPath)
	return 0
}
