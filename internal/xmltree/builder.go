package xmltree

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oxhq/tractor/internal/langs"
)

// Build walks a tree-sitter CST and produces an isomorphic XML element tree
// with byte-accurate spans and source-preserving text (spec §4.1). The
// returned element's Name is the raw (pre-transform) CST node kind; the
// semantic transform (internal/semantic) renames it afterward.
//
// Grounded on providers/base/provider.go's walkTree/checkNode recursive
// descent, generalized from "collect matching nodes" to "build the full
// tree".
func Build(src *langs.Source, root *sitter.Node) *Element {
	return build(src, root)
}

func build(src *langs.Source, n *sitter.Node) *Element {
	el := NewElement(n.Type())
	el.CSTKind = n.Type()
	el.IsNamed = n.IsNamed()
	el.Span = spanOf(src, n)
	el.HasSpan = true

	childCount := int(n.ChildCount())
	if childCount == 0 {
		if text := src.Text(int(n.StartByte()), int(n.EndByte())); text != "" {
			el.AddChild(NewText(text))
		}
		return el
	}

	// Every CST child becomes an XML element, named or not (spec §4.1); the
	// semantic transform's flatten and operator-extraction rules are what
	// later elide punctuation wrappers and fold single-token operators into
	// @op attributes (spec §4.2) — the builder stays a faithful, unopinionated
	// mirror of the CST.
	prevEnd := int(n.StartByte())
	for i := 0; i < childCount; i++ {
		child := n.Child(i)
		start := int(child.StartByte())
		if start > prevEnd {
			el.AddChild(NewText(src.Text(prevEnd, start)))
		}
		el.AddChild(build(src, child))
		prevEnd = int(child.EndByte())
	}
	if end := int(n.EndByte()); end > prevEnd {
		el.AddChild(NewText(src.Text(prevEnd, end)))
	}

	return el
}

func spanOf(src *langs.Source, n *sitter.Node) Span {
	startByte, endByte := int(n.StartByte()), int(n.EndByte())
	sl, sc := src.Position(startByte)
	el, ec := src.Position(endByte)
	return Span{
		StartLine: sl, StartCol: sc,
		EndLine: el, EndCol: ec,
		StartByte: startByte, EndByte: endByte,
	}
}
