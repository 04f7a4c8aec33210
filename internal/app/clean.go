// Where: internal/app/clean.go
// What: The clean command.
// Why: Remove stale build artifacts on request, with a confirmation gate.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flatforge/flatforge/internal/ui"
	"github.com/flatforge/flatforge/internal/workspace"
)

// runClean removes build artifacts from the working directory. Unlike the
// implicit clean inside 'build', the standalone command confirms first.
func runClean(cli CLI, deps Dependencies, out io.Writer) int {
	fmt.Fprintln(out, "This will remove: "+strings.Join(workspace.Artifacts, ", "))

	if !cli.Clean.Yes {
		if !deps.IsTerminal(os.Stdin) {
			return exitWithError(out, fmt.Errorf("clean requires --yes in non-interactive mode"))
		}
		confirmed, err := deps.Confirm("Are you sure you want to continue?")
		if err != nil {
			return exitWithError(out, err)
		}
		if !confirmed {
			fmt.Fprintln(out, "Aborted.")
			return 1
		}
	}

	if err := deps.Clean(deps.WorkDir); err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success("workspace clean")
	return 0
}
