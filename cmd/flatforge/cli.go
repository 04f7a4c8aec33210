// Where: cmd/flatforge/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"os"

	"github.com/flatforge/flatforge/internal/app"
	"github.com/flatforge/flatforge/internal/flatpak"
	"github.com/flatforge/flatforge/internal/publish"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the
// CLI: the working directory, the exec-backed pipeline, and the uploader
// factory.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	pipeline := flatpak.Pipeline{
		Runner: flatpak.ExecRunner{},
		Dir:    workDir,
	}

	deps := app.Dependencies{
		WorkDir:  workDir,
		Out:      os.Stdout,
		Lookup:   os.LookupEnv,
		Pipeline: pipeline,
		NewUploader: func(ctx context.Context, opts publish.Options) (app.Uploader, error) {
			client, err := publish.NewS3Client(ctx, opts)
			if err != nil {
				return nil, err
			}
			return publish.NewUploader(client), nil
		},
	}

	return deps, nil
}
