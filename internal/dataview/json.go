package dataview

import "encoding/json"

// jsonKinds matches tree-sitter-json's grammar: document, object, pair,
// array, string (wrapping string_content), number, true, false, null.
var jsonKinds = kindTable{
	// "document" is tree-sitter-json's root rule, wrapping the file's single
	// top-level value; JSON has no multi-document concept (unlike YAML), so
	// it's unwrapped transparently rather than tracked via Document.
	Wrappers: []string{"document"},
	Objects:  []string{"object"},
	Arrays:   []string{"array"},
	Pairs:    []string{"pair"},
	Item: func(cstKind string) bool {
		return cstKind != "[" && cstKind != "]" && cstKind != ","
	},
	String: "string",
	Number: "number",
	True:   "true",
	False:  "false",
	Null:   "null",
}

// decodeJSONString unescapes a JSON string literal's raw source text
// (including its surrounding quotes) using the standard decoder, so
// \uXXXX, \/, and every other JSON escape resolve exactly as the language
// defines them rather than through a hand-rolled unescaper.
func decodeJSONString(raw string) string {
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		if len(raw) >= 2 {
			return raw[1 : len(raw)-1]
		}
		return raw
	}
	return s
}
