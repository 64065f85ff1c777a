// Package cli — inspect.go implements the "devcontainer-audit inspect" command.
//
// The inspect command loads a devcontainer.json through the same
// strip → parse → guard pipeline as check, but instead of applying rules
// it prints a summary of what the file configures: extension identifiers,
// task names with their commands, and feature keys. It is a read-only aid
// for composing requirement sets and debugging failed checks.
package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/devcontainer-audit/internal/action"
	"github.com/shinji-kodama/devcontainer-audit/internal/devcontainer"
)

// inspectFlags holds the flag values for the inspect command.
// These are bound to cobra flags in NewInspectCommand.
type inspectFlags struct {
	// path is the devcontainer.json location to summarize.
	path string
}

// NewInspectCommand creates the "inspect" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the extensions, tasks, and features a devcontainer.json configures",
		Long: `Load a devcontainer.json file and print what it configures, without
applying any requirements.

The file goes through the same comment stripping, parsing, and structural
checks as "check", so inspect fails on files check would reject.

Examples:
  devcontainer-audit inspect
  devcontainer-audit inspect --devcontainer-path configs/devcontainer.json
  devcontainer-audit inspect --json`,

		// No positional arguments are required for the inspect command.
		Args: cobra.NoArgs,

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(flags)
		},
	}

	cmd.Flags().StringVar(&flags.path, "devcontainer-path", action.DefaultConfigPath,
		"Path to the devcontainer.json file")

	return cmd
}

// runInspect is the main logic function for the inspect command.
// It loads the document and outputs its summary in the appropriate format.
func runInspect(flags *inspectFlags) error {
	// Step 1: Load through the shared pipeline. Load returns CLIErrors
	// with the right exit codes for missing, malformed, and ill-shaped
	// files, so those flow straight back to the error handler.
	VerboseLog("Loading %s", flags.path)
	doc, err := devcontainer.Load(flags.path)
	if err != nil {
		return err
	}

	// Step 2: Output the summary.
	printInspectResult(flags.path, doc)
	return nil
}

// printInspectResult outputs the document summary in text or JSON format,
// depending on the global --json flag.
func printInspectResult(path string, doc *devcontainer.Document) {
	if IsJSONOutput() {
		printInspectResultJSON(path, doc)
	} else {
		printInspectResultText(path, doc)
	}
}

// printInspectResultJSON outputs the document summary as structured JSON.
// Absent properties are reported as empty collections rather than null,
// so consumers can iterate without nil checks.
func printInspectResultJSON(path string, doc *devcontainer.Document) {
	type resultJSON struct {
		Path       string            `json:"path"`
		Extensions []string          `json:"extensions"`
		Tasks      map[string]string `json:"tasks"`
		Features   []string          `json:"features"`
	}

	result := resultJSON{
		Path: path,
		// Use empty collections instead of nil to ensure JSON output
		// shows [] / {} instead of null for absent properties.
		Extensions: make([]string, 0, len(doc.Extensions)),
		Tasks:      make(map[string]string, len(doc.Tasks)),
		Features:   make([]string, 0, len(doc.Features)),
	}

	result.Extensions = append(result.Extensions, doc.Extensions...)

	for name, value := range doc.Tasks {
		// The structural guard guarantees string values.
		if command, ok := value.(string); ok {
			result.Tasks[name] = command
		}
	}

	for name := range doc.Features {
		result.Features = append(result.Features, name)
	}
	// Feature keys come from a map, so sort them for deterministic output.
	sort.Strings(result.Features)

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printInspectResultText outputs the document summary as human-readable
// text. Absent properties ("(not set)") are distinguished from empty ones
// ("(none)") because the validation rules treat them differently.
func printInspectResultText(path string, doc *devcontainer.Document) {
	fmt.Printf("Devcontainer: %s\n", path)

	switch {
	case doc.Extensions == nil:
		fmt.Println("  Extensions:  (not set)")
	case len(doc.Extensions) == 0:
		fmt.Println("  Extensions:  (none)")
	default:
		fmt.Printf("  Extensions (%d):\n", len(doc.Extensions))
		for _, ext := range doc.Extensions {
			fmt.Printf("    %s\n", ext)
		}
	}

	switch {
	case doc.Tasks == nil:
		fmt.Println("  Tasks:       (not set)")
	case len(doc.Tasks) == 0:
		fmt.Println("  Tasks:       (none)")
	default:
		fmt.Printf("  Tasks (%d):\n", len(doc.Tasks))
		for _, name := range sortedKeys(doc.Tasks) {
			command, _ := doc.Tasks[name].(string)
			fmt.Printf("    %-10s %s\n", name, command)
		}
	}

	switch {
	case doc.Features == nil:
		fmt.Println("  Features:    (not set)")
	case len(doc.Features) == 0:
		fmt.Println("  Features:    (none)")
	default:
		fmt.Printf("  Features (%d):\n", len(doc.Features))
		for _, name := range sortedKeys(doc.Features) {
			fmt.Printf("    %s\n", name)
		}
	}
}

// sortedKeys returns the map's keys in sorted order for deterministic
// text output.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
