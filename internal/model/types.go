// Package model defines the domain types for the devcontainer-audit CLI.
//
// All entities in this package represent the core data structures shared
// across the validation pipeline. These types are used throughout the
// application for passing data between components.
//
// Key design decision: all values here are transient, created fresh per
// validation run; nothing in this package is persisted or mutated after
// construction.
package model

import (
	"fmt"
	"strings"
)

// RequirementSet holds the caller-supplied requirements for one validation
// run. It is resolved from command-line flags, workflow input environment
// variables, an optional requirements file, and built-in defaults before
// any rule executes.
type RequirementSet struct {
	// Extensions is the ordered list of required extension identifiers.
	// Matching against the configured extensions is case-insensitive,
	// but the original casing is preserved for error reporting.
	Extensions []string `json:"extensions"`

	// ConfigPath is the location of the devcontainer.json file to validate.
	ConfigPath string `json:"configPath"`

	// ValidateTasks enables the task rule. The required task names are
	// fixed (build, test, run) and not configurable.
	ValidateTasks bool `json:"validateTasks"`

	// Features is the ordered list of required feature names.
	// Matching is exact and case-sensitive. An empty list disables
	// the feature rule entirely.
	Features []string `json:"features"`
}

// Validate checks whether the RequirementSet is internally consistent.
// Lists are expected to be pre-trimmed with empty elements dropped, so an
// empty identifier here indicates a resolution bug rather than bad input.
func (r *RequirementSet) Validate() error {
	if r.ConfigPath == "" {
		return fmt.Errorf("requirement set: config path must not be empty")
	}
	for _, ext := range r.Extensions {
		if strings.TrimSpace(ext) == "" {
			return fmt.Errorf("requirement set: extension identifiers must not be empty")
		}
	}
	for _, feat := range r.Features {
		if strings.TrimSpace(feat) == "" {
			return fmt.Errorf("requirement set: feature names must not be empty")
		}
	}
	return nil
}

// ExitCode defines standard CLI exit codes for the validation outcomes.
// These codes allow scripts and CI systems to programmatically determine
// which check failed without parsing the error message.
type ExitCode int

const (
	// ExitSuccess indicates the configuration passed all enabled checks.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitDevContainerNotFound indicates devcontainer.json was not found
	// at the expected location.
	ExitDevContainerNotFound ExitCode = 2

	// ExitMalformedJSON indicates the file could not be parsed as JSON
	// after comment stripping.
	ExitMalformedJSON ExitCode = 3

	// ExitInvalidStructure indicates the parsed document does not match
	// the expected devcontainer shape.
	ExitInvalidStructure ExitCode = 4

	// ExitMissingExtensions indicates one or more required extensions
	// are not configured.
	ExitMissingExtensions ExitCode = 5

	// ExitMissingTasks indicates the tasks property is missing or lacks
	// one of the required build/test/run entries.
	ExitMissingTasks ExitCode = 6

	// ExitMissingFeatures indicates one or more required features are
	// not configured.
	ExitMissingFeatures ExitCode = 7
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
