// Package dataview implements the dual-view projector (spec §4.3): for
// data-structure languages (JSON, YAML), it takes the raw CST-shaped
// xmltree.Element the builder produced and emits two sibling branches —
// a lossless <syntax> tree in a shared cross-format vocabulary, and a
// decoded <data> tree with sanitized keys and value-oriented spans.
//
// Grounded on providers/base/provider.go's recursive child-walk idiom,
// generalized from "collect matches" to "rebuild the tree twice".
package dataview

import "github.com/oxhq/tractor/internal/xmltree"

// kindTable names the CST node kinds a single dual-view language uses for
// each shared concept the projector needs to recognize. Slices rather than
// single strings because YAML's flow ({}, []) and block (indentation-based)
// collection styles use distinct grammar node kinds for the same concept.
// Populated per language in json.go and yaml.go.
type kindTable struct {
	Document string // top-level document wrapper, "" if the language has none

	Objects []string
	Arrays  []string
	Pairs   []string

	// Wrappers is the set of CST kinds that carry no meaning of their own
	// and wrap exactly one value child (YAML's block_node/flow_node, which
	// sit between a mapping pair's value slot and the actual scalar or
	// collection node). Transparently unwrapped before dispatch.
	Wrappers []string

	// Item reports whether a child of an array-kind node is itself a value
	// (vs. punctuation like "," "[" "]").
	Item func(cstKind string) bool

	// ItemValue extracts the value child from an array-item wrapper node,
	// for grammars (YAML) where the sequence item is itself a wrapper
	// rather than the value node directly. nil means the item is the value.
	ItemValue func(el *xmltree.Element) *xmltree.Element

	String string
	Number string
	True   string
	False  string
	Null   string

	// IsScalar reports whether a CST kind is some other scalar variant
	// (e.g. YAML's several quoting styles) and, if so, decodes it.
	IsScalar func(cstKind string) (decode func(raw string) string, ok bool)
}

func (t kindTable) isObject(cstKind string) bool  { return contains(t.Objects, cstKind) }
func (t kindTable) isArray(cstKind string) bool   { return contains(t.Arrays, cstKind) }
func (t kindTable) isPair(cstKind string) bool    { return contains(t.Pairs, cstKind) }
func (t kindTable) isWrapper(cstKind string) bool { return contains(t.Wrappers, cstKind) }

// unwrap follows wrapper nodes down to the named element they actually
// wrap, so callers never have to special-case grammar plumbing nodes that
// exist only to attach a value: field. It skips anonymous punctuation
// children (e.g. YAML's leading "---" document marker) rather than always
// taking the first child, since a wrapper's value isn't always its first
// child element.
func (t kindTable) unwrap(el *xmltree.Element) *xmltree.Element {
	for t.isWrapper(el.CSTKind) {
		var next *xmltree.Element
		for _, k := range el.ChildElements() {
			if k.IsNamed {
				next = k
				break
			}
		}
		if next == nil {
			break
		}
		el = next
	}
	return el
}

// pairKeyValue returns a mapping pair's key and value elements, selecting by
// named-child position rather than a fixed child index: the builder turns
// every CST child into an element, named or not, so a pair's ":" separator
// (JSON's `pair`, YAML's `block_mapping_pair`/`flow_pair`) is itself a child
// element sitting between key and value. The key is the first named child,
// the value the last — ok is false if the pair has no value (a YAML key
// with an omitted value).
func pairKeyValue(el *xmltree.Element) (key, value *xmltree.Element, ok bool) {
	var named []*xmltree.Element
	for _, c := range el.ChildElements() {
		if c.IsNamed {
			named = append(named, c)
		}
	}
	if len(named) < 2 {
		return nil, nil, false
	}
	return named[0], named[len(named)-1], true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
