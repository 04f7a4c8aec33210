// Where: internal/config/project.go
// What: Optional per-project settings file.
// Why: Let a checkout override the app id, template path, and repo metadata.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProjectFileName is the settings file looked up in the working directory.
const ProjectFileName = "flatforge.yaml"

// RepoFile describes the .flatpakrepo remote-description metadata.
type RepoFile struct {
	Title   string `yaml:"title"`
	URL     string `yaml:"url"`
	Comment string `yaml:"comment"`
	GPGKey  string `yaml:"gpg_key"`
}

// Project holds per-checkout settings loaded from flatforge.yaml.
// All fields are optional; zero values mean "use the built-in default".
type Project struct {
	AppID            string   `yaml:"app_id"`
	ManifestTemplate string   `yaml:"manifest_template"`
	Repo             string   `yaml:"repo"`
	RepoFile         RepoFile `yaml:"repo_file"`
}

// LoadProject reads flatforge.yaml from dir. A missing file is not an
// error and yields the zero Project.
func LoadProject(dir string) (Project, error) {
	var project Project
	data, err := os.ReadFile(filepath.Join(dir, ProjectFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return project, nil
		}
		return project, fmt.Errorf("read %s: %w", ProjectFileName, err)
	}
	if err := yaml.Unmarshal(data, &project); err != nil {
		return project, fmt.Errorf("parse %s: %w", ProjectFileName, err)
	}
	return project, nil
}

// AppIDOrDefault returns the configured app id or the built-in default.
func (p Project) AppIDOrDefault() string {
	if strings.TrimSpace(p.AppID) != "" {
		return p.AppID
	}
	return DefaultAppID
}

// TemplateOrDefault returns the configured manifest template path or the
// conventional <app-id>.json.in next to the working directory root.
func (p Project) TemplateOrDefault() string {
	if strings.TrimSpace(p.ManifestTemplate) != "" {
		return p.ManifestTemplate
	}
	return p.AppIDOrDefault() + ".json" + TemplateSuffix
}

// BundleName returns the bundle artifact filename for the app id.
func (p Project) BundleName() string {
	return p.AppIDOrDefault() + BundleExtension
}
