// Where: internal/app/publish.go
// What: The publish command.
// Why: Upload the built bundle to an S3-compatible object store.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/flatforge/flatforge/internal/publish"
	"github.com/flatforge/flatforge/internal/ui"
)

// runPublish uploads the bundle produced by 'build'. It refuses to run
// non-interactively without --yes: uploads are outward-facing.
func runPublish(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.NewUploader == nil {
		fmt.Fprintln(out, "publish: uploader not configured")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	bundlePath := filepath.Join(deps.WorkDir, ctxInfo.Project.BundleName())
	if _, err := os.Stat(bundlePath); err != nil {
		return exitWithError(out, fmt.Errorf("bundle not found (run 'flatforge build' first): %w", err))
	}

	console := ui.New(out)
	console.Header("🚀", "Publishing "+filepath.Base(bundlePath))
	console.Item("Bucket", cli.Publish.Bucket)

	if !cli.Publish.Yes {
		if !deps.IsTerminal(os.Stdin) {
			return exitWithError(out, fmt.Errorf("publish requires --yes in non-interactive mode"))
		}
		confirmed, err := deps.Confirm("Upload the bundle?")
		if err != nil {
			return exitWithError(out, err)
		}
		if !confirmed {
			fmt.Fprintln(out, "Aborted.")
			return 1
		}
	}

	ctx := context.Background()
	uploader, err := deps.NewUploader(ctx, publish.Options{
		Region:    cli.Publish.Region,
		Endpoint:  cli.Publish.Endpoint,
		AccessKey: cli.Publish.AccessKey,
		SecretKey: cli.Publish.SecretKey,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	if err := uploader.Upload(ctx, publish.Request{
		Bucket:     cli.Publish.Bucket,
		Key:        cli.Publish.Key,
		BundlePath: bundlePath,
	}); err != nil {
		return exitWithError(out, err)
	}

	console.Success("bundle published")
	return 0
}
