package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRequirementSet_Validate checks the internal consistency rules for
// resolved requirement sets:
// - ConfigPath must not be empty
// - List elements must be non-empty after trimming
func TestRequirementSet_Validate(t *testing.T) {
	tests := []struct {
		name     string
		set      RequirementSet
		hasError bool
	}{
		{
			name: "valid full set",
			set: RequirementSet{
				Extensions:    []string{"GitHub.copilot", "dbaeumer.vscode-eslint"},
				ConfigPath:    ".devcontainer/devcontainer.json",
				ValidateTasks: true,
				Features:      []string{"ghcr.io/devcontainers/features/node:1"},
			},
			hasError: false,
		},
		{
			name: "empty lists are valid",
			set: RequirementSet{
				Extensions: []string{},
				ConfigPath: ".devcontainer/devcontainer.json",
			},
			hasError: false,
		},
		{
			name:     "empty config path",
			set:      RequirementSet{Extensions: []string{"GitHub.copilot"}},
			hasError: true,
		},
		{
			name: "blank extension identifier",
			set: RequirementSet{
				Extensions: []string{"GitHub.copilot", "  "},
				ConfigPath: ".devcontainer/devcontainer.json",
			},
			hasError: true,
		},
		{
			name: "blank feature name",
			set: RequirementSet{
				ConfigPath: ".devcontainer/devcontainer.json",
				Features:   []string{""},
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestExitCodes verifies the stable numeric values of the exit code
// taxonomy. CI scripts depend on these exact numbers, so any change
// here is a breaking change to the CLI contract.
func TestExitCodes(t *testing.T) {
	tests := []struct {
		code     ExitCode
		expected int
	}{
		{ExitSuccess, 0},
		{ExitGeneralError, 1},
		{ExitDevContainerNotFound, 2},
		{ExitMalformedJSON, 3},
		{ExitInvalidStructure, 4},
		{ExitMissingExtensions, 5},
		{ExitMissingTasks, 6},
		{ExitMissingFeatures, 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, int(tt.code))
	}
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitDevContainerNotFound, "devcontainer.json not found")
		assert.Equal(t, ExitDevContainerNotFound, err.Code)
		assert.Equal(t, "devcontainer.json not found", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("unexpected end of JSON input")
		err := WrapCLIError(ExitMalformedJSON, "devcontainer.json is not valid JSON", inner)
		assert.Equal(t, ExitMalformedJSON, err.Code)
		assert.Contains(t, err.Error(), "unexpected end of JSON input")
		assert.Equal(t, inner, err.Unwrap())
	})

	// Verify errors.Is works with unwrapped errors (Go 1.13+ error chain).
	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("unexpected end of JSON input")
		err := WrapCLIError(ExitMalformedJSON, "devcontainer.json is not valid JSON", inner)
		assert.True(t, errors.Is(err, inner))
	})

	// Verify errors.As extracts the CLIError from a plain error value,
	// which is how the root command maps errors to exit codes.
	t.Run("errors.As extraction", func(t *testing.T) {
		var err error = NewCLIError(ExitMissingExtensions, "missing required extensions: GitHub.copilot")

		var cliErr *CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, ExitMissingExtensions, cliErr.Code)
	})
}
