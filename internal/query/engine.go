package query

import (
	"fmt"

	"github.com/antchfx/xpath"

	"github.com/oxhq/tractor/internal/xmltree"
)

// Compile parses and compiles an XPath 2.0 expression. All expression
// evaluation work — axes, node tests, predicates, the function library —
// belongs to antchfx/xpath; this package only adapts it to xmltree (spec
// §4.4, §9's "XPath Engine" capability boundary).
func Compile(expr string) (*xpath.Expr, error) {
	e, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return e, nil
}

// Match is one selected result: either an element or a bare text node
// (e.g. the result of "//function/name/text()").
type Match struct {
	Element *xmltree.Element
	Text    *xmltree.Text
}

// Node returns the underlying xmltree.Node this match came from.
func (m Match) Node() xmltree.Node {
	if m.Element != nil {
		return m.Element
	}
	return m.Text
}

// Span returns the match's source span and whether it has one; a text
// match inherits its parent element's span, since Text carries none of its
// own (spec §4.1 assigns spans to elements, not text runs).
func (m Match) Span() (xmltree.Span, bool) {
	if m.Element != nil {
		return m.Element.Span, m.Element.HasSpan
	}
	if m.Text != nil && m.Text.Parent() != nil {
		return m.Text.Parent().Span, m.Text.Parent().HasSpan
	}
	return xmltree.Span{}, false
}

// StringValue is the XPath string-value of the match.
func (m Match) StringValue() string {
	if m.Element != nil {
		return m.Element.StringValue()
	}
	if m.Text != nil {
		return m.Text.Value
	}
	return ""
}

// Select runs expr against root and returns its node-set result. Returns an
// error if expr evaluates to a scalar instead — use Eval for expressions
// whose result type isn't known ahead of time (spec §4.5's count()/value
// output modes, spec §4.7's assertion expressions).
func Select(expr *xpath.Expr, root *xmltree.Element) (matches []Match, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("query: %v", r)
		}
	}()
	result := expr.Evaluate(NewNavigator(root))
	iter, ok := result.(*xpath.NodeIterator)
	if !ok {
		return nil, fmt.Errorf("query: expression does not select a node-set (got %T)", result)
	}
	return drain(iter), nil
}

// Eval runs expr against root and returns whatever XPath type the
// expression itself produces: []Match for a node-set, or a string,
// float64, or bool for a scalar-valued expression.
func Eval(expr *xpath.Expr, root *xmltree.Element) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("query: %v", r)
		}
	}()
	raw := expr.Evaluate(NewNavigator(root))
	if iter, ok := raw.(*xpath.NodeIterator); ok {
		return drain(iter), nil
	}
	return raw, nil
}

// EvalFrom evaluates expr with context positioned at node (rather than at
// documentRoot), so relative expressions like "ancestor::class/@name"
// resolve against node's own position in the tree (spec §4.7's "{<xpath>}"
// placeholder).
func EvalFrom(expr *xpath.Expr, documentRoot *xmltree.Element, node xmltree.Node) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("query: %v", r)
		}
	}()
	raw := expr.Evaluate(NewNavigatorAt(documentRoot, node))
	if iter, ok := raw.(*xpath.NodeIterator); ok {
		return drain(iter), nil
	}
	return raw, nil
}

func drain(iter *xpath.NodeIterator) []Match {
	var out []Match
	for iter.MoveNext() {
		c, ok := iter.Current().(*nav)
		if !ok {
			continue
		}
		switch node := c.cur.(type) {
		case *xmltree.Element:
			out = append(out, Match{Element: node})
		case *xmltree.Text:
			out = append(out, Match{Text: node})
		}
	}
	return out
}
