// inputs.go reads workflow inputs from the environment and defines the
// built-in defaults used when neither flags, environment, nor a
// requirements file supply a value.
package action

import (
	"os"
	"strings"
)

// DefaultConfigPath is the standard devcontainer.json location checked
// when no path is supplied.
const DefaultConfigPath = ".devcontainer/devcontainer.json"

// DefaultRequiredExtensions is the built-in required extension list used
// when the caller supplies none. It covers the editor tooling every
// repository's dev container is expected to configure.
var DefaultRequiredExtensions = []string{
	"GitHub.copilot",
	"GitHub.copilot-chat",
	"GitHub.vscode-pull-request-github",
	"github.vscode-github-actions",
	"ms-azuretools.vscode-docker",
	"ms-vscode-remote.remote-containers",
	"dbaeumer.vscode-eslint",
	"esbenp.prettier-vscode",
}

// GetInput returns the value of a workflow input, or "" when unset.
//
// The Actions runner passes each input to the step as an environment
// variable named INPUT_<NAME>, uppercased with spaces replaced by
// underscores (hyphens are kept as-is). Values are trimmed the same way
// the runner's own toolkit trims them.
func GetInput(name string) string {
	key := "INPUT_" + strings.ReplaceAll(strings.ToUpper(name), " ", "_")
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

// FirstInput returns the first non-empty value among the given input
// names. Inputs that kept a legacy alias resolve through this, with the
// current name listed first.
func FirstInput(names ...string) string {
	for _, name := range names {
		if value := GetInput(name); value != "" {
			return value
		}
	}
	return ""
}

// SplitList derives a requirement list from a comma-separated string:
// split on commas, trim whitespace from each element, and drop empties.
// Empty input yields an empty list, which the rules treat as a vacuous
// pass.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// InGitHubActions reports whether the process is running inside a GitHub
// Actions step. The runner always sets GITHUB_ACTIONS=true.
func InGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// EscapeData escapes a message for use as workflow-command data
// (e.g. the text after ::error::). Percent signs are escaped first so
// the encoded line breaks survive the runner's own decoding.
func EscapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}
