package dataview

import (
	"fmt"
	"strings"

	"github.com/oxhq/tractor/internal/xmltree"
	"gopkg.in/yaml.v3"
)

// yamlKinds matches the common tree-sitter-yaml grammar: stream > document,
// block_mapping/flow_mapping with block_mapping_pair/flow_pair members,
// block_sequence/flow_sequence with block_sequence_item/flow elements, and
// several scalar-style nodes instead of JSON's single "string" kind.
var yamlKinds = kindTable{
	Document: "document",
	Objects:  []string{"block_mapping", "flow_mapping"},
	Arrays:   []string{"block_sequence", "flow_sequence"},
	Pairs:    []string{"block_mapping_pair", "flow_pair"},
	// "document" wraps one node value (after an optional "---" marker and
	// before an optional "..." terminator); "block_node"/"flow_node" wrap a
	// mapping/sequence/scalar value under a pair's value: field.
	Wrappers: []string{"document", "block_node", "flow_node"},
	Item: func(cstKind string) bool {
		switch cstKind {
		case "block_sequence_item":
			return true
		case "[", "]", ",", "-":
			return false
		}
		return cstKind != ""
	},
	ItemValue: func(el *xmltree.Element) *xmltree.Element {
		if el.CSTKind != "block_sequence_item" {
			return el
		}
		// block_sequence_item is "-" followed by the value node; the value
		// is its only (or last) element child.
		kids := el.ChildElements()
		if len(kids) == 0 {
			return el
		}
		return kids[len(kids)-1]
	},
	IsScalar: func(cstKind string) (func(string) string, bool) {
		switch cstKind {
		case "plain_scalar":
			return decodeYAMLPlain, true
		case "single_quote_scalar":
			return decodeYAMLSingleQuoted, true
		case "double_quote_scalar":
			return decodeYAMLDoubleQuoted, true
		case "block_scalar":
			return decodeYAMLBlockScalar, true
		}
		return nil, false
	},
}

// decodeYAMLPlain resolves an unquoted scalar's implicit type (true/false,
// null, int, float, or bare string) by handing the raw token to yaml.v3's
// own scalar resolver rather than re-implementing YAML 1.1's core schema
// matching rules, then prints it back in the data branch's literal textual
// form (spec §4.3).
func decodeYAMLPlain(raw string) string {
	trimmed := strings.TrimSpace(raw)
	var v any
	if err := yaml.Unmarshal([]byte(trimmed), &v); err != nil {
		return trimmed
	}
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return fmt.Sprintf("%t", val)
	case string:
		return val
	default:
		return trimmed
	}
}

func decodeYAMLSingleQuoted(raw string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(raw, "'"), "'")
	return strings.ReplaceAll(inner, "''", "'")
}

func decodeYAMLDoubleQuoted(raw string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(raw, "\""), "\"")
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(inner[i])
			}
			continue
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}

// decodeYAMLBlockScalar drops the first line of the raw text (the "|" or ">"
// header) and returns the remaining lines as they appear in the source: the
// block's indentation is not removed and ">" folding is not applied.
func decodeYAMLBlockScalar(raw string) string {
	if idx := strings.IndexByte(raw, '\n'); idx >= 0 {
		return raw[idx+1:]
	}
	return raw
}
