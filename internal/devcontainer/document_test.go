package devcontainer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseTree decodes a JSON literal into the untyped tree form that the
// guard operates on, exactly as the loading pipeline produces it.
func parseTree(t *testing.T, src string) interface{} {
	t.Helper()

	var tree interface{}
	require.NoError(t, json.Unmarshal([]byte(src), &tree), "test fixture must be valid JSON")
	return tree
}

// --- IsValidShape tests ---

// TestIsValidShape_Accepts verifies the shapes the guard must accept,
// including the empty object (all properties absent) and the null
// feature value edge case.
func TestIsValidShape_Accepts(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty object", `{}`},
		{"unrelated properties only", `{"name": "app", "image": "node:20"}`},
		{
			"full well-formed document",
			`{
				"customizations": {"vscode": {"extensions": ["GitHub.copilot"]}},
				"tasks": {"build": "make", "test": "make test", "run": "make run"},
				"features": {"ghcr.io/devcontainers/features/node:1": {}}
			}`,
		},
		{"empty extensions array", `{"customizations": {"vscode": {"extensions": []}}}`},
		{"empty tasks object", `{"tasks": {}}`},
		{"empty features object", `{"features": {}}`},
		// Null is a valid feature value alongside objects.
		{"null feature value", `{"features": {"x": null}}`},
		// The guard does not inspect extension element types.
		{"non-string extension elements", `{"customizations": {"vscode": {"extensions": [1, true, "a"]}}}`},
		{"extra keys under vscode", `{"customizations": {"vscode": {"extensions": [], "settings": {}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsValidShape(parseTree(t, tt.src)))
		})
	}
}

// TestIsValidShape_Rejects verifies the shapes the guard must reject:
// non-object roots, malformed customizations paths, non-string task
// values, and non-object feature values.
func TestIsValidShape_Rejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"array root", `[]`},
		{"string root", `"devcontainer"`},
		{"number root", `42`},
		{"null root", `null`},
		{"customizations not an object", `{"customizations": "yes"}`},
		{"customizations is an array", `{"customizations": []}`},
		{"customizations missing vscode", `{"customizations": {}}`},
		{"vscode not an object", `{"customizations": {"vscode": true}}`},
		{"vscode missing extensions", `{"customizations": {"vscode": {}}}`},
		{"extensions not an array", `{"customizations": {"vscode": {"extensions": "GitHub.copilot"}}}`},
		{"tasks not an object", `{"tasks": ["build"]}`},
		{"tasks is a string", `{"tasks": "make"}`},
		{"numeric task value", `{"tasks": {"build": 123}}`},
		{"null task value", `{"tasks": {"build": null}}`},
		// A bad value outside build/test/run still rejects the document.
		{"non-string value on unrelated task key", `{"tasks": {"build": "make", "lint": 1}}`},
		{"features not an object", `{"features": ["x"]}`},
		{"string feature value", `{"features": {"x": "not-an-object"}}`},
		{"numeric feature value", `{"features": {"x": 3}}`},
		{"array feature value", `{"features": {"x": []}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsValidShape(parseTree(t, tt.src)))
		})
	}
}

// TestIsValidShape_NonTreeInputs verifies the guard tolerates values that
// never came from a JSON parser, returning false instead of panicking.
func TestIsValidShape_NonTreeInputs(t *testing.T) {
	assert.False(t, IsValidShape(nil))
	assert.False(t, IsValidShape(42))
	assert.False(t, IsValidShape([]string{"a"}))
	assert.False(t, IsValidShape(map[int]string{1: "a"}))
}

// --- NewDocument tests ---

// TestNewDocument_Narrowing verifies that an accepted tree is narrowed
// into the typed Document with all three properties populated.
func TestNewDocument_Narrowing(t *testing.T) {
	tree := parseTree(t, `{
		"customizations": {"vscode": {"extensions": ["GitHub.Copilot", "dbaeumer.vscode-eslint"]}},
		"tasks": {"build": "npm run build", "test": "npm test"},
		"features": {"ghcr.io/devcontainers/features/node:1": {"version": "20"}}
	}`)

	doc, ok := NewDocument(tree)
	require.True(t, ok)

	assert.Equal(t, []string{"GitHub.Copilot", "dbaeumer.vscode-eslint"}, doc.Extensions)

	require.Len(t, doc.Tasks, 2)
	assert.Equal(t, "npm run build", doc.Tasks["build"])
	assert.Equal(t, "npm test", doc.Tasks["test"])

	require.Len(t, doc.Features, 1)
	assert.Contains(t, doc.Features, "ghcr.io/devcontainers/features/node:1")
}

// TestNewDocument_AbsentVersusEmpty verifies that absent properties stay
// nil while present-but-empty properties become empty non-nil values.
func TestNewDocument_AbsentVersusEmpty(t *testing.T) {
	t.Run("all absent", func(t *testing.T) {
		doc, ok := NewDocument(parseTree(t, `{}`))
		require.True(t, ok)

		assert.Nil(t, doc.Extensions)
		assert.Nil(t, doc.Tasks)
		assert.Nil(t, doc.Features)
	})

	t.Run("all present but empty", func(t *testing.T) {
		doc, ok := NewDocument(parseTree(t, `{
			"customizations": {"vscode": {"extensions": []}},
			"tasks": {},
			"features": {}
		}`))
		require.True(t, ok)

		assert.NotNil(t, doc.Extensions)
		assert.Empty(t, doc.Extensions)
		assert.NotNil(t, doc.Tasks)
		assert.Empty(t, doc.Tasks)
		assert.NotNil(t, doc.Features)
		assert.Empty(t, doc.Features)
	})
}

// TestNewDocument_DropsNonStringExtensions verifies that non-string
// elements in the extensions array are filtered out during narrowing.
func TestNewDocument_DropsNonStringExtensions(t *testing.T) {
	tree := parseTree(t, `{"customizations": {"vscode": {"extensions": [1, "GitHub.copilot", true, "esbenp.prettier-vscode"]}}}`)

	doc, ok := NewDocument(tree)
	require.True(t, ok)
	assert.Equal(t, []string{"GitHub.copilot", "esbenp.prettier-vscode"}, doc.Extensions)
}

// TestNewDocument_RejectedTree verifies that no Document is constructed
// from a tree the guard rejects.
func TestNewDocument_RejectedTree(t *testing.T) {
	doc, ok := NewDocument(parseTree(t, `{"tasks": {"build": 1}}`))
	assert.False(t, ok)
	assert.Nil(t, doc)
}
