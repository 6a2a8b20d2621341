// Package semantic converts the raw, grammar-shaped XML tree the builder
// produces into the unified, lowercase, developer-facing vocabulary
// (spec §4.2). Rules are pure data, dispatched through a single Transform
// entry point — no dynamic-dispatch hierarchy (spec §9 "Rule tables as
// data"), grounded on providers/golang/config.go's per-kind lookup table
// idiom, generalized from "map query type to node kinds" to "rename every
// node kind".
package semantic

import (
	"strings"

	"github.com/oxhq/tractor/internal/xmltree"
)

// Rules is one language's complete rename/flatten/modifier/wrap table.
type Rules struct {
	// Rename maps a CST kind to its unified element name.
	Rename map[string]string
	// Flatten is the set of CST kinds whose children are promoted into the
	// parent in place (wrapper nodes carrying no semantic weight).
	Flatten map[string]bool
	// Modifiers is the set of CST kinds (usually a literal keyword token)
	// that become empty child elements, e.g. <public/>.
	Modifiers map[string]bool
	// TypeWrap is the set of CST kinds renamed to "type".
	TypeWrap map[string]bool
	// OperatorConstructs is the set of CST kinds (binary/unary expressions
	// and similar) whose operator token is additionally exposed as an
	// @op attribute.
	OperatorConstructs map[string]bool
	// WrapEachChild maps a CST kind (a bare parameter/argument list whose
	// children are plain identifiers rather than their own named node, e.g.
	// Python's "parameters") to the element name each child element should
	// be individually wrapped in — so a bare identifier parameter still
	// becomes <param><name>a</name></param>, not a lone <name>.
	WrapEachChild map[string]string
	// Special is a narrow per-language escape hatch (spec §9: "dispatched
	// through a small interface: transform(element) -> element") for the
	// rare rename that depends on more than the element's own CST kind —
	// e.g. Go's type_spec, whose unified name depends on which kind of type
	// it declares. Returning true means Special fully handled the rename;
	// the generic table lookups below are skipped for this element.
	Special func(el *xmltree.Element) bool
}

// operatorSymbols is the set of token texts recognized as operators across
// every language table, scanned for within an OperatorConstruct's children
// once tree-sitter's own field names aren't uniformly available across
// grammars for "which child is the operator".
var operatorSymbols = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true, "**": true,
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
	"&&": true, "||": true, "!": true, "=": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&": true, "|": true, "^": true, "<<": true, ">>": true, "~": true,
	"??": true, "...": true, "->": true, "=>": true, ":=": true,
	"and": true, "or": true, "not": true, "in": true, "is": true,
}

// Transform rewrites root (and every descendant) in place according to
// rules, bottom-up, and returns root (whose own Name may itself change).
func Transform(rules Rules, root *xmltree.Element) *xmltree.Element {
	out := transformNode(rules, root)
	if len(out) == 0 {
		// A document root should never flatten away entirely; fall back to
		// the (renamed) element itself.
		return root
	}
	if el, ok := out[0].(*xmltree.Element); ok {
		return el
	}
	return root
}

// transformNode transforms el (after recursing into its children) and
// returns the node(s) that should replace it in its parent's child list.
func transformNode(rules Rules, el *xmltree.Element) []xmltree.Node {
	transformChildren(rules, el)

	if rules.Special != nil && rules.Special(el) {
		return []xmltree.Node{el}
	}

	switch {
	case rules.Modifiers[el.CSTKind]:
		// Modifier keywords become empty elements directly under the
		// construct they modify; the keyword text itself is redundant once
		// it's the element name, so it's dropped, not preserved as text —
		// this is the one rule that intentionally sacrifices the string-
		// value invariant's literal text for the token itself, same as the
		// spec's own <public/> example sacrifices it for clarity.
		el.Children = nil
		return []xmltree.Node{el}

	case el.CSTKind == "identifier":
		el.Name = "name"
		return []xmltree.Node{el}

	case rules.TypeWrap[el.CSTKind]:
		el.Name = "type"
		el.Kind = el.CSTKind
		el.HasKind = true
		return []xmltree.Node{el}

	case rules.Rename[el.CSTKind] != "":
		el.Name = rules.Rename[el.CSTKind]
		return []xmltree.Node{el}

	case rules.Flatten[el.CSTKind]:
		return el.Children

	case !el.IsNamed:
		// Anonymous tokens with no claimed role (not a modifier, not an
		// operator-bearing construct's own kind) carry no semantic weight;
		// fold them back into the surrounding text.
		return el.Children

	default:
		return []xmltree.Node{el}
	}
}

func transformChildren(rules Rules, el *xmltree.Element) {
	var newChildren []xmltree.Node
	for _, c := range el.Children {
		switch n := c.(type) {
		case *xmltree.Text:
			newChildren = append(newChildren, n)
		case *xmltree.Element:
			newChildren = append(newChildren, transformNode(rules, n)...)
		}
	}
	if wrapName := rules.WrapEachChild[el.CSTKind]; wrapName != "" {
		for i, c := range newChildren {
			if child, ok := c.(*xmltree.Element); ok {
				wrapper := xmltree.NewElement(wrapName)
				wrapper.Span = child.Span
				wrapper.HasSpan = child.HasSpan
				wrapper.AddChild(child)
				newChildren[i] = wrapper
			}
		}
	}

	for _, c := range newChildren {
		xmltree.Reparent(c, el)
	}
	el.Children = newChildren

	if rules.OperatorConstructs[el.CSTKind] {
		extractOperator(el)
	}
}

// extractOperator scans el's children for a lone operator-symbol text node
// and copies it into the @op attribute, leaving the text in place so the
// string-value invariant (spec invariant 2) still holds over el's span.
func extractOperator(el *xmltree.Element) {
	for _, c := range el.Children {
		t, ok := c.(*xmltree.Text)
		if !ok {
			continue
		}
		sym := strings.TrimSpace(t.Value)
		if sym == "" {
			continue
		}
		if operatorSymbols[sym] {
			el.Op = sym
			el.HasOp = true
			return
		}
	}
}
