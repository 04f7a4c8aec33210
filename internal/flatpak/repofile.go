// Where: internal/flatpak/repofile.go
// What: Render the .flatpakrepo remote-description file.
// Why: Give consumers of the exported repository a one-file remote to add.
package flatpak

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/flatpakrepo.tmpl
var repoFileFS embed.FS

// RepoFileData parameterizes the .flatpakrepo template.
type RepoFileData struct {
	Title   string
	URL     string
	Comment string
	GPGKey  string
}

// RenderRepoFile renders the remote-description stanza for the exported
// repository. URL is required; Title falls back in the template.
func RenderRepoFile(data RepoFileData) (string, error) {
	if strings.TrimSpace(data.URL) == "" {
		return "", fmt.Errorf("repo file url is required")
	}

	raw, err := repoFileFS.ReadFile("templates/flatpakrepo.tmpl")
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("flatpakrepo").Funcs(sprig.FuncMap()).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parse repo file template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render repo file: %w", err)
	}
	return buf.String(), nil
}

// WriteRepoFile renders and writes the remote description to path.
func WriteRepoFile(path string, data RepoFileData) error {
	content, err := RenderRepoFile(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
