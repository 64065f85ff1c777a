// document.go defines the typed Document view of a devcontainer.json file
// and the structural type guard that gates its construction.
//
// Parsing deliberately goes through an untyped interface{} tree first: the guard
// inspects the generic tree and only a tree it accepts is narrowed into a
// Document. An ill-shaped tree never becomes a Document, so every consumer
// of a Document can rely on the shape invariants without re-checking them.
package devcontainer

// Document represents one devcontainer.json file's content after the
// structural guard has accepted it. All three properties are optional in
// the file; a nil field means the property was absent, which is distinct
// from present-but-empty.
type Document struct {
	// Extensions holds customizations.vscode.extensions in file order.
	// Nil when the customizations property is absent. Non-string array
	// elements are dropped during narrowing.
	Extensions []string `json:"extensions"`

	// Tasks maps task names to their commands. Nil when the tasks
	// property is absent. The guard guarantees string values, but the
	// map keeps the untyped value so the task rule can re-check types
	// on hand-built documents.
	Tasks map[string]interface{} `json:"tasks"`

	// Features maps feature names to their configuration objects.
	// Nil when the features property is absent. Values stay untyped;
	// the guard only checks that each is an object or null.
	Features map[string]interface{} `json:"features"`
}

// IsValidShape reports whether an untyped tree produced by generic JSON
// parsing conforms to the Document shape. It never panics on any input.
//
// All of the following must hold:
//   - the root is a non-null JSON object (not an array, not a primitive)
//   - if customizations is present, it is an object containing
//     vscode.extensions as an array; any absence or wrong type along
//     that path rejects the tree (an entirely absent customizations is
//     fine, and extensions are then treated as empty)
//   - if tasks is present, it is an object and every value is a string
//   - if features is present, it is an object and every value is either
//     an object or null
//
// Element types inside the extensions array are not checked here.
func IsValidShape(tree interface{}) bool {
	root, ok := tree.(map[string]interface{})
	if !ok {
		return false
	}

	if raw, present := root["customizations"]; present {
		customizations, ok := raw.(map[string]interface{})
		if !ok {
			return false
		}
		vscode, ok := customizations["vscode"].(map[string]interface{})
		if !ok {
			return false
		}
		if _, ok := vscode["extensions"].([]interface{}); !ok {
			return false
		}
	}

	if raw, present := root["tasks"]; present {
		tasks, ok := raw.(map[string]interface{})
		if !ok {
			return false
		}
		for _, value := range tasks {
			if _, ok := value.(string); !ok {
				return false
			}
		}
	}

	if raw, present := root["features"]; present {
		features, ok := raw.(map[string]interface{})
		if !ok {
			return false
		}
		for _, value := range features {
			if value == nil {
				continue
			}
			if _, ok := value.(map[string]interface{}); !ok {
				return false
			}
		}
	}

	return true
}

// NewDocument narrows an untyped parsed tree into a Document. The guard
// runs first; a rejected tree returns (nil, false) and no Document is
// ever constructed from it.
func NewDocument(tree interface{}) (*Document, bool) {
	if !IsValidShape(tree) {
		return nil, false
	}

	// The assertions below cannot fail: IsValidShape has already verified
	// every type along these paths.
	root := tree.(map[string]interface{})
	doc := &Document{}

	if raw, present := root["customizations"]; present {
		vscode := raw.(map[string]interface{})["vscode"].(map[string]interface{})
		items := vscode["extensions"].([]interface{})
		doc.Extensions = make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				doc.Extensions = append(doc.Extensions, s)
			}
		}
	}

	if raw, present := root["tasks"]; present {
		doc.Tasks = raw.(map[string]interface{})
	}

	if raw, present := root["features"]; present {
		doc.Features = raw.(map[string]interface{})
	}

	return doc, true
}
