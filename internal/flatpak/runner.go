// Where: internal/flatpak/runner.go
// What: External command execution for the build pipeline.
// Why: Keep the pipeline testable against a fake runner instead of real tools.
package flatpak

import (
	"context"
	"errors"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// CommandRunner defines the interface for executing external commands.
// The pipeline blocks on each invocation and treats any error as fatal.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner implements CommandRunner using os/exec. The child process
// inherits stdout/stderr so tool output streams through unmodified.
type ExecRunner struct{}

var _ CommandRunner = ExecRunner{}

// Run executes a command with inherited stdout/stderr.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	log.WithField("dir", dir).Debug("running command: ", name, " ", args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// exitStatus maps a runner error to a process exit code: the child's own
// status when it ran and failed, 127 when the binary was not found.
func exitStatus(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if errors.Is(err, exec.ErrNotFound) {
		return 127
	}
	return 1
}
