// Package xmltree is tractor's in-memory semantic XML tree: the structure
// produced by the builder (spec §4.1), reshaped by the semantic transform
// (spec §4.2) and the dual-view projector (spec §4.3), and walked by the
// XPath engine (spec §4.4).
//
// The tree is a strict tree — elements exclusively own their children — with
// non-owning parent back-references for axes like ancestor:: (spec §9).
package xmltree

import "fmt"

// Span is a pair of 1-indexed line:column positions over the LF-normalized
// source (spec GLOSSARY).
type Span struct {
	StartLine, StartCol int
	EndLine, EndCol     int
	// StartByte/EndByte are the half-open byte range this span covers in the
	// originating Source. Not part of the rendered XML, but what matches and
	// the rewriter key off of.
	StartByte, EndByte int
}

// startString and endString render "line:col" for the span's start and end,
// matching spec §4.1's start="L:C" attribute format.
func (s Span) startString() string { return fmt.Sprintf("%d:%d", s.StartLine, s.StartCol) }
func (s Span) endString() string   { return fmt.Sprintf("%d:%d", s.EndLine, s.EndCol) }

// Encloses reports whether s fully contains o, per spec invariant 1.
func (s Span) Encloses(o Span) bool {
	return s.StartByte <= o.StartByte && o.EndByte <= s.EndByte
}

// Attr is one ordered, reserved XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is either an *Element or a *Text.
type Node interface {
	Parent() *Element
	setParent(*Element)
}

// Text preserves exact source bytes over a byte range, including
// inter-token whitespace synthesized by the builder (spec §3).
type Text struct {
	Value  string
	parent *Element
}

func NewText(value string) *Text { return &Text{Value: value} }

func (t *Text) Parent() *Element     { return t.parent }
func (t *Text) setParent(e *Element) { t.parent = e }

// Element is a node in the semantic tree (spec §3).
type Element struct {
	Name string

	// CSTKind is the original tree-sitter node kind this element was built
	// from, before the semantic transform renames Name. Not itself an XML
	// attribute; the transform copies it into the Kind debug attribute only
	// for type-wrapped elements and a language's Special cases that set it
	// (e.g. TypeScript signatures). Plain table renames leave Kind unset.
	CSTKind string

	// IsNamed mirrors tree-sitter's notion of a named vs. anonymous node.
	// Anonymous nodes (keywords, punctuation) carry no semantic weight on
	// their own and are, by default, flattened away by the semantic
	// transform unless a modifier-promotion rule claims them first (spec
	// §4.2). Operator tokens are flattened too; their text is then copied
	// into the enclosing construct's @op attribute.
	IsNamed bool

	// Reserved attributes, in the canonical order they're rendered/iterated:
	// path, kind, language, op, key, start, end.
	// Path is the file's display path, set only on the root <File> element
	// (spec §4.1's Contract, §6's XML output format) — distinct from Key,
	// which holds a dataview-sanitized map key and must stay queryable via
	// @key without a <File> colliding into every such match.
	Path    string
	HasPath bool
	Kind    string
	HasKind bool
	// Lang is the fenced-code-block language tag (markdown's info string),
	// exposed as @language so a query can jump straight to an embedded
	// block of a given language (spec §8 scenario 6).
	Lang    string
	HasLang bool
	Op      string
	HasOp   bool
	Key     string
	HasKey  bool

	Span    Span
	HasSpan bool // false only for the synthesized <Files> root

	Children []Node
	parent   *Element
}

// NewElement creates a detached element with no span (callers set Span and
// HasSpan explicitly once known).
func NewElement(name string) *Element {
	return &Element{Name: name}
}

func (e *Element) Parent() *Element     { return e.parent }
func (e *Element) setParent(p *Element) { e.parent = p }

// AddChild appends a child and sets its parent back-reference.
func (e *Element) AddChild(n Node) {
	n.setParent(e)
	e.Children = append(e.Children, n)
}

// Reparent sets n's parent back-reference without touching any child list.
// Exported for internal/semantic's tree rewrites, which rebuild an
// element's Children slice directly (promoting grandchildren up during
// flatten) rather than going through AddChild one at a time.
func Reparent(n Node, parent *Element) { n.setParent(parent) }

// Attrs returns the element's attributes in canonical order.
func (e *Element) Attrs() []Attr {
	var attrs []Attr
	if e.HasPath {
		attrs = append(attrs, Attr{"path", e.Path})
	}
	if e.HasKind {
		attrs = append(attrs, Attr{"kind", e.Kind})
	}
	if e.HasLang {
		attrs = append(attrs, Attr{"language", e.Lang})
	}
	if e.HasOp {
		attrs = append(attrs, Attr{"op", e.Op})
	}
	if e.HasKey {
		attrs = append(attrs, Attr{"key", e.Key})
	}
	if e.HasSpan {
		attrs = append(attrs, Attr{"start", e.Span.startString()})
		attrs = append(attrs, Attr{"end", e.Span.endString()})
	}
	return attrs
}

// Attr looks up a single attribute by name.
func (e *Element) Attr(name string) (string, bool) {
	switch name {
	case "path":
		return e.Path, e.HasPath
	case "kind":
		return e.Kind, e.HasKind
	case "language":
		return e.Lang, e.HasLang
	case "op":
		return e.Op, e.HasOp
	case "key":
		return e.Key, e.HasKey
	case "start":
		return e.Span.startString(), e.HasSpan
	case "end":
		return e.Span.endString(), e.HasSpan
	default:
		return "", false
	}
}

// ChildElements returns only the element children, in document order.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// StringValue is the XPath string-value of the element: the concatenation
// of all descendant text, including synthesized inter-token whitespace
// (spec §4.4, invariant 2).
func (e *Element) StringValue() string {
	var b []byte
	e.collectText(&b)
	return string(b)
}

func (e *Element) collectText(b *[]byte) {
	for _, c := range e.Children {
		switch n := c.(type) {
		case *Text:
			*b = append(*b, n.Value...)
		case *Element:
			n.collectText(b)
		}
	}
}

// Walk visits e and every descendant element in document (pre-)order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.ChildElements() {
		c.Walk(fn)
	}
}
