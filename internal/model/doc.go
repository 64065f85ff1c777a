// Package model defines the domain types and value objects for the
// devcontainer-audit CLI.
//
// This package contains pure data structures with no external dependencies.
// The central entities are RequirementSet (the caller-supplied requirements
// for a validation run) and the exit-code taxonomy used to report outcomes.
// Both are transient values created fresh per invocation with no persistent
// state behind them.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
