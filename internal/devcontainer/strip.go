// strip.go implements the comment-stripping pass that runs before JSON
// parsing. devcontainer.json files conventionally carry single-line //
// comments, which encoding/json rejects, so the raw text is cleaned first.
package devcontainer

import "bytes"

// commentMarker starts a single-line comment. Everything from the marker
// to the end of the line is discarded.
var commentMarker = []byte("//")

// StripComments removes every substring from // to end-of-line, for every
// line of the input, leaving line breaks intact. The returned bytes are a
// fresh buffer; the input is never modified.
//
// The scan is purely line-oriented and has no awareness of JSON string
// literals: a // occurring inside a quoted value is also treated as a
// comment start and stripped. Callers rely on this exact behavior; inputs
// that embed // inside string values are mangled here and then rejected by
// the JSON parser downstream.
//
// Example:
//
//	input:  {"a": 1} // comment\n{"b": 2}
//	output: {"a": 1} \n{"b": 2}
func StripComments(data []byte) []byte {
	lines := bytes.Split(data, []byte("\n"))
	for i, line := range lines {
		if idx := bytes.Index(line, commentMarker); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return bytes.Join(lines, []byte("\n"))
}
