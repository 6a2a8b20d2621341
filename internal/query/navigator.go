// Package query is tractor's XPath Engine boundary (spec §4.4, §9): a thin
// github.com/antchfx/xpath.NodeNavigator implementation over internal/xmltree,
// so the whole expression language (axes, predicates, functions) comes from
// the wrapped library rather than being reimplemented.
//
// Grounded on the retrieval pack's antchfx/xpath property-test harness
// (other_examples/e5000299_lambdamechanic-xpath__property_test.go.go), which
// exercises a createNavigator(root)+Compile(expr).Evaluate(nav) call shape
// over a TNode tree; this package is that navigator, written for xmltree
// instead of TNode.
package query

import (
	"github.com/antchfx/xpath"

	"github.com/oxhq/tractor/internal/xmltree"
)

// nav is an antchfx/xpath.NodeNavigator cursor over an xmltree.Element tree.
// A nil cur means the cursor sits at the synthetic document root above the
// navigated element, mirroring how antchfx's own xml/html navigators expose
// a root node distinct from the document element.
type nav struct {
	top     *xmltree.Element
	cur     xmltree.Node
	attrIdx int // -1 unless cur is an *xmltree.Element and we're on Attrs()[attrIdx]
}

// NewNavigator returns a navigator positioned at the document root above
// root; the first MoveToChild call descends into root itself.
func NewNavigator(root *xmltree.Element) xpath.NodeNavigator {
	return &nav{top: root, attrIdx: -1}
}

// NewNavigatorAt returns a navigator already positioned on at, with
// documentRoot still reachable via the ancestor/parent axes above it — used
// to evaluate a relative XPath expression from a specific match node (spec
// §4.7's "{<xpath>}" placeholder, evaluated relative to the match) rather
// than from the whole document's root.
func NewNavigatorAt(documentRoot *xmltree.Element, at xmltree.Node) xpath.NodeNavigator {
	return &nav{top: documentRoot, cur: at, attrIdx: -1}
}

func (n *nav) curElement() (*xmltree.Element, bool) {
	el, ok := n.cur.(*xmltree.Element)
	return el, ok
}

func (n *nav) isTop() bool {
	el, ok := n.curElement()
	return ok && el == n.top
}

func (n *nav) NodeType() xpath.NodeType {
	if n.attrIdx >= 0 {
		return xpath.AttributeNode
	}
	switch n.cur.(type) {
	case nil:
		return xpath.RootNode
	case *xmltree.Element:
		return xpath.ElementNode
	case *xmltree.Text:
		return xpath.TextNode
	}
	return xpath.ElementNode
}

func (n *nav) LocalName() string {
	el, ok := n.curElement()
	if !ok {
		return ""
	}
	if n.attrIdx >= 0 {
		attrs := el.Attrs()
		if n.attrIdx < len(attrs) {
			return attrs[n.attrIdx].Name
		}
		return ""
	}
	return el.Name
}

func (n *nav) Prefix() string { return "" }

func (n *nav) Value() string {
	if n.attrIdx >= 0 {
		el, _ := n.curElement()
		attrs := el.Attrs()
		if n.attrIdx < len(attrs) {
			return attrs[n.attrIdx].Value
		}
		return ""
	}
	switch c := n.cur.(type) {
	case *xmltree.Element:
		return c.StringValue()
	case *xmltree.Text:
		return c.Value
	}
	return ""
}

func (n *nav) Copy() xpath.NodeNavigator {
	cp := *n
	return &cp
}

func (n *nav) MoveToRoot() {
	n.cur = nil
	n.attrIdx = -1
}

func (n *nav) MoveToParent() bool {
	if n.attrIdx >= 0 {
		n.attrIdx = -1
		return true
	}
	if n.cur == nil {
		return false
	}
	if n.isTop() {
		n.cur = nil
		return true
	}
	p := n.cur.Parent()
	if p == nil {
		return false
	}
	n.cur = p
	return true
}

func (n *nav) MoveToNextAttribute() bool {
	el, ok := n.curElement()
	if !ok {
		return false
	}
	if n.attrIdx+1 >= len(el.Attrs()) {
		return false
	}
	n.attrIdx++
	return true
}

func (n *nav) MoveToChild() bool {
	if n.attrIdx >= 0 {
		return false
	}
	if n.cur == nil {
		n.cur = n.top
		return true
	}
	el, ok := n.curElement()
	if !ok || len(el.Children) == 0 {
		return false
	}
	n.cur = el.Children[0]
	return true
}

func (n *nav) siblings() []xmltree.Node {
	if n.cur == nil {
		return nil
	}
	p := n.cur.Parent()
	if p == nil {
		return nil
	}
	return p.Children
}

func (n *nav) indexInSiblings() int {
	sibs := n.siblings()
	for i, s := range sibs {
		if s == n.cur {
			return i
		}
	}
	return -1
}

func (n *nav) MoveToFirst() bool {
	if n.attrIdx >= 0 || n.isTop() {
		return false
	}
	sibs := n.siblings()
	if len(sibs) == 0 {
		return false
	}
	n.cur = sibs[0]
	return true
}

func (n *nav) MoveToNext() bool {
	if n.attrIdx >= 0 || n.isTop() {
		return false
	}
	sibs := n.siblings()
	idx := n.indexInSiblings()
	if idx < 0 || idx+1 >= len(sibs) {
		return false
	}
	n.cur = sibs[idx+1]
	return true
}

func (n *nav) MoveToPrevious() bool {
	if n.attrIdx >= 0 || n.isTop() {
		return false
	}
	sibs := n.siblings()
	idx := n.indexInSiblings()
	if idx <= 0 {
		return false
	}
	n.cur = sibs[idx-1]
	return true
}

func (n *nav) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*nav)
	if !ok {
		return false
	}
	*n = *o
	return true
}
