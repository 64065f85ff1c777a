// requirements.go loads the optional YAML requirements file and resolves
// the effective RequirementSet for a validation run.
package action

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/devcontainer-audit/internal/model"
)

// RequirementsFile is the on-disk YAML form of a requirement set. It lets
// a repository check in its validation policy instead of repeating flag
// or workflow-input values across pipelines.
//
// Example:
//
//	required-extensions:
//	  - GitHub.copilot
//	  - dbaeumer.vscode-eslint
//	devcontainer-path: .devcontainer/devcontainer.json
//	validate-tasks: true
//	required-features:
//	  - ghcr.io/devcontainers/features/node:1
type RequirementsFile struct {
	// RequiredExtensions overrides the default extension list when the
	// key is present. An explicitly empty sequence disables the
	// extension requirement entirely.
	RequiredExtensions []string `yaml:"required-extensions"`

	// DevcontainerPath overrides the default file location when non-empty.
	DevcontainerPath string `yaml:"devcontainer-path"`

	// ValidateTasks enables the task rule. It can only switch the rule
	// on; the built-in default is already off.
	ValidateTasks bool `yaml:"validate-tasks"`

	// RequiredFeatures supplies the required feature list when present.
	RequiredFeatures []string `yaml:"required-features"`
}

// LoadRequirementsFile reads and parses a YAML requirements file.
// The caller decides which exit code a failure maps to.
func LoadRequirementsFile(path string) (*RequirementsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements file: %w", err)
	}

	var file RequirementsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse requirements file at %s: %w", path, err)
	}

	return &file, nil
}

// Resolve builds the effective RequirementSet by layering sources in
// increasing precedence: built-in defaults, the requirements file (when a
// path is given), then INPUT_* workflow environment variables. Flag
// overrides sit above all of these and are applied by the CLI layer,
// where flag presence is known.
func Resolve(requirementsPath string) (*model.RequirementSet, error) {
	// Start from the built-in defaults. The default extension list is
	// copied so later layers never mutate the package-level slice.
	set := &model.RequirementSet{
		Extensions: append([]string(nil), DefaultRequiredExtensions...),
		ConfigPath: DefaultConfigPath,
	}

	if requirementsPath != "" {
		file, err := LoadRequirementsFile(requirementsPath)
		if err != nil {
			return nil, err
		}

		// Distinguish "key absent" (nil) from "explicitly empty" ([]):
		// only an absent key keeps the default list.
		if file.RequiredExtensions != nil {
			set.Extensions = trimAll(file.RequiredExtensions)
		}
		if file.DevcontainerPath != "" {
			set.ConfigPath = file.DevcontainerPath
		}
		if file.ValidateTasks {
			set.ValidateTasks = true
		}
		if file.RequiredFeatures != nil {
			set.Features = trimAll(file.RequiredFeatures)
		}
	}

	// Environment overrides. An input set to the empty string counts as
	// unset; the runner always passes a concrete value for inputs that
	// have defaults.
	if raw := FirstInput("required-extensions", "extensions-list"); raw != "" {
		set.Extensions = SplitList(raw)
	}
	if raw := GetInput("devcontainer-path"); raw != "" {
		set.ConfigPath = raw
	}
	if raw := GetInput("validate-tasks"); raw != "" {
		// Only the exact string "true" enables the rule; anything else
		// (including "True" or "1") leaves it disabled.
		set.ValidateTasks = raw == "true"
	}
	if raw := FirstInput("required-features", "features-list"); raw != "" {
		set.Features = SplitList(raw)
	}

	return set, nil
}

// trimAll trims whitespace from each element and drops empties, giving
// file-sourced lists the same normalization SplitList applies to
// comma-separated input.
func trimAll(items []string) []string {
	trimmed := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		trimmed = append(trimmed, item)
	}
	return trimmed
}
