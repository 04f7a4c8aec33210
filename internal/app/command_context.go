// Where: internal/app/command_context.go
// What: Shared settings resolution for CLI commands.
// Why: Reduce duplicated project/env/template setup across handlers.
package app

import (
	"path/filepath"

	"github.com/flatforge/flatforge/internal/config"
)

// commandContext bundles everything a command needs to know about the
// current checkout: the project file, the resolved environment parameters,
// and derived paths. Precedence is flags > environment > project file >
// built-in defaults.
type commandContext struct {
	Project      config.Project
	Config       config.Config
	TemplatePath string
	Repo         string
}

func resolveCommandContext(cli CLI, deps Dependencies) (commandContext, error) {
	project, err := config.LoadProject(deps.WorkDir)
	if err != nil {
		return commandContext{}, err
	}

	cfg := config.Resolve(deps.Lookup)

	// The project file sits between the environment and the built-in
	// default for the repository path.
	repo := cfg.Repo
	if !envSet(deps.Lookup, config.EnvRepo) && project.Repo != "" {
		repo = project.Repo
	}

	template := cli.Template
	if template == "" {
		template = project.TemplateOrDefault()
	}
	if !filepath.IsAbs(template) {
		template = filepath.Join(deps.WorkDir, template)
	}

	return commandContext{
		Project:      project,
		Config:       cfg,
		TemplatePath: template,
		Repo:         repo,
	}, nil
}

func envSet(lookup config.Lookup, key string) bool {
	if lookup == nil {
		return false
	}
	value, ok := lookup(key)
	return ok && value != ""
}
