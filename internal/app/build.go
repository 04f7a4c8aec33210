// Where: internal/app/build.go
// What: The build command: clean, render, build, export, bundle.
// Why: Orchestrate the full pipeline with fail-fast semantics.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/flatforge/flatforge/internal/flatpak"
	"github.com/flatforge/flatforge/internal/manifest"
	"github.com/flatforge/flatforge/internal/ui"
)

// runBuild executes the 'build' command. The six steps run to completion
// in order or the command aborts on the first failure, leaving partial
// artifacts on disk.
func runBuild(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Pipeline == nil {
		fmt.Fprintln(out, "build: pipeline not configured")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	appID := ctxInfo.Project.AppIDOrDefault()
	console := ui.New(out)

	console.Header("📦", "Building "+appID)
	console.Item("Branch", ctxInfo.Config.Branch)
	console.Item("Clone branch", ctxInfo.Config.GitCloneBranch)
	console.Item("Run tests", ctxInfo.Config.RunTests)
	console.Item("Repo", ctxInfo.Repo)

	if err := deps.Clean(deps.WorkDir); err != nil {
		return exitWithError(out, err)
	}

	manifestPath, err := manifest.RenderFile(ctxInfo.TemplatePath, ctxInfo.Config)
	if err != nil {
		return exitWithError(out, err)
	}
	console.Item("Manifest", manifestPath)

	ctx := context.Background()
	bundleName := ctxInfo.Project.BundleName()

	console.Step("flatpak-builder", "build", "--ccache", filepath.Base(manifestPath))
	if err := deps.Pipeline.Build(ctx, manifestPath); err != nil {
		return exitWithError(out, err)
	}

	console.Step("flatpak", "build-export", ctxInfo.Repo, "build", ctxInfo.Config.Branch)
	if err := deps.Pipeline.Export(ctx, ctxInfo.Repo, ctxInfo.Config.Branch); err != nil {
		return exitWithError(out, err)
	}

	console.Step("flatpak", "build-bundle", ctxInfo.Repo, bundleName, appID)
	if err := deps.Pipeline.Bundle(ctx, ctxInfo.Repo, bundleName, appID); err != nil {
		return exitWithError(out, err)
	}

	if cli.Build.RepoFile {
		if err := writeProjectRepoFile(ctxInfo, deps, console); err != nil {
			return exitWithError(out, err)
		}
	}

	console.Success("bundle written: " + bundleName)
	return 0
}

func writeProjectRepoFile(ctxInfo commandContext, deps Dependencies, console *ui.Console) error {
	meta := ctxInfo.Project.RepoFile
	if meta.URL == "" {
		return fmt.Errorf("repo-file requested but no repo_file.url configured in %s", "flatforge.yaml")
	}
	path := filepath.Join(deps.WorkDir, ctxInfo.Project.AppIDOrDefault()+".flatpakrepo")
	if err := flatpak.WriteRepoFile(path, flatpak.RepoFileData{
		Title:   meta.Title,
		URL:     meta.URL,
		Comment: meta.Comment,
		GPGKey:  meta.GPGKey,
	}); err != nil {
		return err
	}
	console.Item("Repo file", path)
	return nil
}
