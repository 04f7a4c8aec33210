// Where: internal/app/repofile.go
// What: The repofile command.
// Why: Write the .flatpakrepo remote description for the exported repo.
package app

import (
	"io"
	"path/filepath"

	"github.com/flatforge/flatforge/internal/flatpak"
	"github.com/flatforge/flatforge/internal/ui"
)

// runRepoFile renders the remote description. Flags win over the project
// file's repo_file section.
func runRepoFile(cli CLI, deps Dependencies, out io.Writer) int {
	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	meta := ctxInfo.Project.RepoFile
	data := flatpak.RepoFileData{
		Title:   firstNonEmpty(cli.Repofile.Title, meta.Title),
		URL:     firstNonEmpty(cli.Repofile.URL, meta.URL),
		Comment: firstNonEmpty(cli.Repofile.Comment, meta.Comment),
		GPGKey:  firstNonEmpty(cli.Repofile.GPGKey, meta.GPGKey),
	}

	path := cli.Repofile.Output
	if path == "" {
		path = ctxInfo.Project.AppIDOrDefault() + ".flatpakrepo"
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(deps.WorkDir, path)
	}

	if err := flatpak.WriteRepoFile(path, data); err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success("repo file written: " + path)
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
