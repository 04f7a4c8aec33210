// Where: internal/config/config.go
// What: Build parameter resolution from the process environment.
// Why: Declare defaults as constants and resolve through an injected lookup.
package config

// Environment variable names consumed by the build pipeline.
const (
	EnvBranch         = "BRANCH"
	EnvGitCloneBranch = "GIT_CLONE_BRANCH"
	EnvRunTests       = "RUN_TESTS"
	EnvRepo           = "REPO"
)

// Defaults applied when a variable is unset or empty.
const (
	DefaultBranch         = "master"
	DefaultGitCloneBranch = "HEAD"
	DefaultRunTests       = "false"
	DefaultRepo           = "repo"
)

// Fixed application identity and derived artifact names.
const (
	DefaultAppID    = "com.endlessm.Showmehow.Service"
	TemplateSuffix  = ".in"
	BundleExtension = ".flatpak"
)

// Config holds the resolved build parameters. Resolved once per command
// and immutable afterwards.
type Config struct {
	Branch         string
	GitCloneBranch string
	RunTests       string
	Repo           string
}

// Lookup is the environment source shape, matching os.LookupEnv.
type Lookup func(key string) (string, bool)

// Resolve builds a Config from the given environment source. A variable
// that is set but empty falls back to its default; values are taken
// verbatim otherwise, with no content validation.
func Resolve(lookup Lookup) Config {
	return Config{
		Branch:         resolveValue(lookup, EnvBranch, DefaultBranch),
		GitCloneBranch: resolveValue(lookup, EnvGitCloneBranch, DefaultGitCloneBranch),
		RunTests:       resolveValue(lookup, EnvRunTests, DefaultRunTests),
		Repo:           resolveValue(lookup, EnvRepo, DefaultRepo),
	}
}

func resolveValue(lookup Lookup, key, fallback string) string {
	if lookup == nil {
		return fallback
	}
	value, ok := lookup(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}
