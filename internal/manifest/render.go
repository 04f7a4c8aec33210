// Where: internal/manifest/render.go
// What: Placeholder substitution for manifest templates.
// Why: Produce a concrete flatpak-builder manifest from the .in template.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/flatforge/flatforge/internal/config"
)

// Placeholder tokens recognized in manifest templates.
const (
	TokenBranch         = "@BRANCH@"
	TokenGitCloneBranch = "@GIT_CLONE_BRANCH@"
	TokenRunTests       = "@RUN_TESTS@"
)

// Render substitutes every placeholder token in template with the resolved
// configuration values. Branch tokens are replaced bare; the run-tests
// token is replaced only in its quoted form, with the quotes stripped, so
// the value lands as a bare literal in the rendered manifest.
//
// Rendering is a pure function of its inputs. A known token surviving
// substitution (for example an unquoted run-tests token) is an error.
func Render(template string, cfg config.Config) (string, error) {
	replacer := strings.NewReplacer(
		`"`+TokenRunTests+`"`, cfg.RunTests,
		TokenBranch, cfg.Branch,
		TokenGitCloneBranch, cfg.GitCloneBranch,
	)
	rendered := replacer.Replace(template)

	if residual := residualTokens(rendered); len(residual) > 0 {
		return "", fmt.Errorf("unresolved placeholder tokens: %s", strings.Join(residual, ", "))
	}
	return rendered, nil
}

// RenderFile reads the template at path, renders it, and writes the result
// to the template path minus the .in suffix, overwriting any previous
// rendering. It returns the output path.
func RenderFile(path string, cfg config.Config) (string, error) {
	output, err := OutputPath(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}

	rendered, err := Render(string(data), cfg)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return output, nil
}

// OutputPath derives the rendered manifest path from a template path by
// stripping the .in suffix.
func OutputPath(templatePath string) (string, error) {
	if !strings.HasSuffix(templatePath, config.TemplateSuffix) {
		return "", fmt.Errorf("template %s does not end in %s", templatePath, config.TemplateSuffix)
	}
	return strings.TrimSuffix(templatePath, config.TemplateSuffix), nil
}

func residualTokens(rendered string) []string {
	var residual []string
	for _, token := range []string{TokenBranch, TokenGitCloneBranch, TokenRunTests} {
		if strings.Contains(rendered, token) {
			residual = append(residual, token)
		}
	}
	return residual
}
