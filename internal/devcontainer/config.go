// Package devcontainer handles loading and validation of devcontainer.json
// files.
//
// devcontainer.json conventionally contains single-line // comments, so
// loading strips comments first (see strip.go) and then parses the result
// with the standard encoding/json library into an untyped tree. The tree is
// narrowed into a typed Document only after the structural guard accepts it.
//
// Key responsibilities:
//   - Strip single-line // comments ahead of JSON parsing (strip.go)
//   - Guard and narrow the parsed tree into a Document (document.go)
//   - Load a file through strip + parse + guard (config.go)
//   - Run the extension, task, and feature rules in a fail-fast
//     pipeline (validate.go)
package devcontainer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shinji-kodama/devcontainer-audit/internal/model"
)

// Load reads a devcontainer.json file, strips // comments, parses the
// remainder as JSON, and narrows the result into a Document.
//
// Each failure mode maps to its own exit code:
//   - missing file → ExitDevContainerNotFound, naming the path
//   - unparseable text → ExitMalformedJSON, carrying the parser's error
//   - shape rejected by the guard → ExitInvalidStructure, with a fixed
//     message and no field-level detail
func Load(path string) (*Document, error) {
	// os.ReadFile is preferred over os.Open+io.ReadAll because it handles
	// the open-read-close lifecycle in a single call.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitDevContainerNotFound,
				fmt.Sprintf("devcontainer.json not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read devcontainer.json: %w", err)
	}

	// Parse into a generic tree rather than a typed struct. The structural
	// guard decides whether the tree is acceptable; encoding/json alone
	// would silently coerce or ignore ill-shaped properties.
	var tree interface{}
	if err := json.Unmarshal(StripComments(data), &tree); err != nil {
		return nil, model.WrapCLIError(
			model.ExitMalformedJSON,
			fmt.Sprintf("devcontainer.json at %s is not valid JSON", path),
			err,
		)
	}

	doc, ok := NewDocument(tree)
	if !ok {
		return nil, model.NewCLIError(
			model.ExitInvalidStructure,
			"devcontainer.json does not match the expected devcontainer structure",
		)
	}

	return doc, nil
}
