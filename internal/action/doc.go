// Package action resolves the validator's inputs and integrates with the
// GitHub Actions runner environment.
//
// When the binary runs as an Actions step, the runner passes workflow
// inputs as INPUT_* environment variables; this package reads them, layers
// them with an optional YAML requirements file and built-in defaults, and
// produces the RequirementSet driving a validation run. Precedence, lowest
// to highest: built-in defaults → requirements file → INPUT_* environment →
// command-line flags (applied by the CLI layer).
//
// The package also provides the workflow-command escaping needed to emit
// ::error:: annotations on failed runs.
package action
