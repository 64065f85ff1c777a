// Package cli — check.go implements the "devcontainer-audit check" command.
//
// The check command is the primary operation: it resolves the effective
// requirement set and runs the full validation pipeline against one
// devcontainer.json file.
//
// Orchestration steps:
//  1. Resolve requirements (defaults → file → INPUT_* environment)
//  2. Apply explicit command-line flag overrides
//  3. Sanity-check the resolved requirement set
//  4. Run the validation pipeline (load → guard → rules, fail-fast)
//  5. Output the result (text or JSON)
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/devcontainer-audit/internal/action"
	"github.com/shinji-kodama/devcontainer-audit/internal/devcontainer"
	"github.com/shinji-kodama/devcontainer-audit/internal/model"
)

// checkFlags holds the flag values for the check command.
// These are bound to cobra flags in NewCheckCommand.
type checkFlags struct {
	extensions    string // --required-extensions: comma-separated identifiers
	path          string // --devcontainer-path: file location
	validateTasks bool   // --validate-tasks: enable the task rule
	features      string // --required-features: comma-separated names
	requirements  string // --requirements: YAML requirements file
}

// NewCheckCommand creates the "check" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a devcontainer.json against the required properties",
		Long: `Validate a devcontainer.json file against the effective requirement set.

Requirements are layered from built-in defaults, an optional YAML
requirements file, INPUT_* workflow environment variables, and the flags
below, with each layer overriding the previous one. The validation itself
is fail-fast: the first unsatisfied check decides the run's outcome.

Examples:
  devcontainer-audit check
  devcontainer-audit check --required-extensions "GitHub.copilot,dbaeumer.vscode-eslint"
  devcontainer-audit check --devcontainer-path configs/devcontainer.json --validate-tasks
  devcontainer-audit check --requirements .github/devcontainer-requirements.yml`,

		// No positional arguments; the file location is an option with
		// a standard default, matching the workflow input surface.
		Args: cobra.NoArgs,

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags)
		},
	}

	// Register command-specific flags.
	cmd.Flags().StringVar(&flags.extensions, "required-extensions", "",
		"Comma-separated required extension identifiers (default: built-in list)")
	cmd.Flags().StringVar(&flags.path, "devcontainer-path", action.DefaultConfigPath,
		"Path to the devcontainer.json file")
	cmd.Flags().BoolVar(&flags.validateTasks, "validate-tasks", false,
		"Require the build, test, and run tasks")
	cmd.Flags().StringVar(&flags.features, "required-features", "",
		"Comma-separated required feature names")
	cmd.Flags().StringVar(&flags.requirements, "requirements", "",
		"Path to a YAML requirements file")

	return cmd
}

// runCheck is the main orchestration function for the check command.
// It resolves the requirement set and runs the validation pipeline.
func runCheck(cmd *cobra.Command, flags *checkFlags) error {
	// Step 1: Resolve requirements from defaults, the optional file,
	// and the workflow input environment.
	set, err := action.Resolve(flags.requirements)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to resolve requirements", err)
	}

	// Step 2: Apply flag overrides. Only flags the caller actually set
	// participate; Changed distinguishes "set to the default value"
	// from "not given at all".
	if cmd.Flags().Changed("required-extensions") {
		set.Extensions = action.SplitList(flags.extensions)
	}
	if cmd.Flags().Changed("devcontainer-path") {
		set.ConfigPath = flags.path
	}
	if cmd.Flags().Changed("validate-tasks") {
		set.ValidateTasks = flags.validateTasks
	}
	if cmd.Flags().Changed("required-features") {
		set.Features = action.SplitList(flags.features)
	}

	VerboseLog("Devcontainer path: %s", set.ConfigPath)
	VerboseLog("Required extensions: %s", strings.Join(set.Extensions, ", "))
	VerboseLog("Task validation enabled: %t", set.ValidateTasks)
	if len(set.Features) > 0 {
		VerboseLog("Required features: %s", strings.Join(set.Features, ", "))
	}

	// Step 3: Sanity-check the resolved set before touching the file.
	if validateErr := set.Validate(); validateErr != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid requirement set", validateErr)
	}

	// Step 4: Run the pipeline. Validate returns a CLIError carrying the
	// exit code of the first failing step, which flows straight back to
	// the Execute error handler.
	if err := devcontainer.Validate(set); err != nil {
		return err
	}
	VerboseLog("All enabled checks passed")

	// Step 5: Output the result.
	printCheckResult(set)
	return nil
}

// printCheckResult outputs the successful check result in text or JSON
// format. Failures never reach here; they surface through the error path.
func printCheckResult(set *model.RequirementSet) {
	if IsJSONOutput() {
		printCheckResultJSON(set)
	} else {
		printCheckResultText(set)
	}
}

// printCheckResultJSON outputs the check result as structured JSON.
func printCheckResultJSON(set *model.RequirementSet) {
	type resultJSON struct {
		Status             string `json:"status"`
		Path               string `json:"path"`
		RequiredExtensions int    `json:"requiredExtensions"`
		TasksValidated     bool   `json:"tasksValidated"`
		RequiredFeatures   int    `json:"requiredFeatures"`
	}

	result := resultJSON{
		Status:             "passed",
		Path:               set.ConfigPath,
		RequiredExtensions: len(set.Extensions),
		TasksValidated:     set.ValidateTasks,
		RequiredFeatures:   len(set.Features),
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printCheckResultText outputs the check result as human-readable text.
func printCheckResultText(set *model.RequirementSet) {
	fmt.Println("Dev container configuration is valid.")
	fmt.Printf("  Path:        %s\n", set.ConfigPath)
	fmt.Printf("  Extensions:  %d required, all present\n", len(set.Extensions))
	if set.ValidateTasks {
		fmt.Printf("  Tasks:       %s present\n", strings.Join(devcontainer.RequiredTasks, ", "))
	}
	if len(set.Features) > 0 {
		fmt.Printf("  Features:    %d required, all present\n", len(set.Features))
	}
}
