// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/flatforge/flatforge/internal/clierr"
	"github.com/flatforge/flatforge/internal/config"
	"github.com/flatforge/flatforge/internal/interaction"
	"github.com/flatforge/flatforge/internal/publish"
	"github.com/flatforge/flatforge/internal/version"
	"github.com/flatforge/flatforge/internal/workspace"
)

// BundlePipeline drives the three external build steps in order.
type BundlePipeline interface {
	Build(ctx context.Context, manifestPath string) error
	Export(ctx context.Context, repo, branch string) error
	Bundle(ctx context.Context, repo, bundlePath, appID string) error
}

// Uploader ships a built bundle to object storage.
type Uploader interface {
	Upload(ctx context.Context, req publish.Request) error
}

// UploaderFactory constructs an Uploader from publish options. Kept as a
// factory so commands only pay for client construction when used.
type UploaderFactory func(ctx context.Context, opts publish.Options) (Uploader, error)

// Dependencies holds all injected dependencies required for CLI command
// execution, enabling fakes in tests.
type Dependencies struct {
	WorkDir     string
	Out         io.Writer
	Lookup      config.Lookup
	Pipeline    BundlePipeline
	Clean       func(dir string, paths ...string) error
	NewUploader UploaderFactory
	IsTerminal  func(file *os.File) bool
	Confirm     func(message string) (bool, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Template string `short:"t" help:"Path to the manifest template (.in file)"`
	EnvFile  string `name:"env-file" help:"Path to .env file"`
	Verbose  bool   `short:"v" help:"Trace external commands"`

	Build    BuildCmd    `cmd:"" help:"Clean, render, build, export, and bundle"`
	Render   RenderCmd   `cmd:"" help:"Render the manifest template only"`
	Clean    CleanCmd    `cmd:"" help:"Remove build artifacts"`
	Lint     LintCmd     `cmd:"" help:"Validate a rendered manifest against the schema"`
	Repofile RepoFileCmd `cmd:"" name:"repofile" help:"Write the .flatpakrepo remote description"`
	Publish  PublishCmd  `cmd:"" help:"Upload the bundle to an S3 bucket"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type (
	RenderCmd  struct{}
	VersionCmd struct{}
)

type BuildCmd struct {
	RepoFile bool `name:"repo-file" help:"Also write the .flatpakrepo description after export"`
}

type CleanCmd struct {
	Yes bool `short:"y" help:"Skip confirmation prompt"`
}

type LintCmd struct {
	Manifest string `arg:"" optional:"" help:"Manifest path (default: the rendered manifest)"`
}

type RepoFileCmd struct {
	Title   string `help:"Repository title"`
	URL     string `name:"url" help:"Repository URL"`
	Comment string `help:"Repository comment"`
	GPGKey  string `name:"gpg-key" help:"Base64-encoded GPG key"`
	Output  string `short:"o" help:"Output path (default: <app-id>.flatpakrepo)"`
}

type PublishCmd struct {
	Bucket    string `required:"" help:"Target bucket"`
	Key       string `help:"Object key (default: bundle filename)"`
	Region    string `help:"Bucket region"`
	Endpoint  string `help:"Custom S3 endpoint (enables path-style addressing)"`
	AccessKey string `name:"access-key" help:"Static access key (default: SDK credential chain)"`
	SecretKey string `name:"secret-key" help:"Static secret key"`
	Yes       bool   `short:"y" help:"Skip confirmation prompt"`
}

// Run is the main entry point for CLI command execution. It parses the
// arguments, dispatches to the matching handler, and returns the process
// exit code: zero only when every step of the command succeeded.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	deps.Out = out
	applyDefaults(&deps)

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided or if .env exists in the
	// working directory.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

func applyDefaults(deps *Dependencies) {
	if deps.WorkDir == "" {
		deps.WorkDir = "."
	}
	if deps.Lookup == nil {
		deps.Lookup = os.LookupEnv
	}
	if deps.Clean == nil {
		deps.Clean = workspace.Clean
	}
	if deps.IsTerminal == nil {
		deps.IsTerminal = interaction.IsTerminal
	}
	if deps.Confirm == nil {
		deps.Confirm = interaction.PromptYesNo
	}
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"build":           runBuild,
		"render":          runRender,
		"clean":           runClean,
		"lint":            runLint,
		"lint <manifest>": runLint,
		"repofile":        runRepoFile,
		"publish":         runPublish,
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// exitWithError prints the error and maps it to a process exit code,
// propagating the failing tool's status when the error carries one.
func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return clierr.ExitCodeOf(err)
}
