// validate.go implements the three validation rules (extensions, tasks,
// features) and the pipeline that sequences them.
//
// Each rule is a pure function over a Document plus its requirements; the
// rules share no state and none of them touches the filesystem. Validate
// composes them in a fixed order with fail-fast semantics: the first
// failing step produces the run's single error and nothing after it runs.
package devcontainer

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/devcontainer-audit/internal/model"
)

// RequiredTasks is the fixed set of task names the task rule checks for.
// These are not configurable; the rule is either on or off.
var RequiredTasks = []string{"build", "test", "run"}

// CheckExtensions returns the required extension identifiers that match
// none of the configured extensions. Matching is case-insensitive, but the
// returned identifiers keep the caller's original order and casing so
// error messages echo the input verbatim. An empty result means pass; an
// empty requirement list trivially passes.
func CheckExtensions(doc *Document, required []string) []string {
	var missing []string
	for _, req := range required {
		found := false
		for _, ext := range doc.Extensions {
			if strings.EqualFold(ext, req) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, req)
		}
	}
	return missing
}

// CheckTasks verifies that the fixed build, test, and run tasks are
// configured. It returns the complete error message for the run, or the
// empty string on pass.
//
// An absent tasks property is its own error. Otherwise a task counts as
// missing when its key is absent or its value is not a string; the guard
// already enforces string values, but the rule re-checks so hand-built
// documents behave the same. Missing names are reported in the fixed
// build, test, run order.
func CheckTasks(doc *Document) string {
	if doc.Tasks == nil {
		return "'tasks' property is missing"
	}

	var missing []string
	for _, name := range RequiredTasks {
		value, ok := doc.Tasks[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		if _, ok := value.(string); !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Sprintf("missing required tasks: %s", strings.Join(missing, ", "))
	}
	return ""
}

// CheckFeatures returns the required feature names that are not keys of
// the configured features mapping. Matching is exact and case-sensitive.
// An empty requirement list passes immediately regardless of the document;
// an absent features property leaves every required name missing.
func CheckFeatures(doc *Document, required []string) []string {
	if len(required) == 0 {
		return nil
	}

	var missing []string
	for _, name := range required {
		if _, ok := doc.Features[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Validate runs the full validation pipeline for one requirement set:
// load the file (exists → strip → parse → shape check), then the
// extension rule, then the task rule when enabled, then the feature rule
// when required features were supplied.
//
// The pipeline is fail-fast: the first failing step returns its CLIError
// and no later rule executes, so every run surfaces exactly one error.
func Validate(set *model.RequirementSet) error {
	doc, err := Load(set.ConfigPath)
	if err != nil {
		return err
	}

	if missing := CheckExtensions(doc, set.Extensions); len(missing) > 0 {
		return model.NewCLIError(
			model.ExitMissingExtensions,
			fmt.Sprintf("missing required extensions: %s", strings.Join(missing, ", ")),
		)
	}

	if set.ValidateTasks {
		if msg := CheckTasks(doc); msg != "" {
			return model.NewCLIError(model.ExitMissingTasks, msg)
		}
	}

	if len(set.Features) > 0 {
		if missing := CheckFeatures(doc, set.Features); len(missing) > 0 {
			return model.NewCLIError(
				model.ExitMissingFeatures,
				fmt.Sprintf("missing required features: %s", strings.Join(missing, ", ")),
			)
		}
	}

	return nil
}
