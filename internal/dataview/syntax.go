package dataview

import "github.com/oxhq/tractor/internal/xmltree"

// buildSyntax produces the lossless <syntax> branch: every key/value is an
// explicit node in the shared cross-format vocabulary (object, array,
// property, key, value, item, document, string, number, bool, null), spans
// preserved unchanged, escape sequences left encoded (spec §4.3).
func buildSyntax(t kindTable, raw *xmltree.Element) *xmltree.Element {
	// A document node is kept (and named "document" by syntaxName) even when
	// the language also lists it as a wrapper for the data branch.
	if t.Document == "" || raw.CSTKind != t.Document {
		raw = t.unwrap(raw)
	}
	switch {
	case t.isPair(raw.CSTKind):
		if keyEl, valEl, ok := pairKeyValue(raw); ok {
			key := xmltree.NewElement("key")
			key.Span, key.HasSpan = keyEl.Span, keyEl.HasSpan
			key.AddChild(buildSyntax(t, keyEl))

			val := xmltree.NewElement("value")
			val.Span, val.HasSpan = valEl.Span, valEl.HasSpan
			val.AddChild(buildSyntax(t, valEl))

			prop := xmltree.NewElement("property")
			prop.CSTKind = raw.CSTKind
			prop.Span, prop.HasSpan = raw.Span, raw.HasSpan
			prop.AddChild(key)
			prop.AddChild(val)
			return prop
		}

	case t.isArray(raw.CSTKind):
		out := xmltree.NewElement("array")
		out.CSTKind = raw.CSTKind
		out.Span, out.HasSpan = raw.Span, raw.HasSpan
		for _, c := range raw.ChildElements() {
			if t.Item == nil || !t.Item(c.CSTKind) {
				continue
			}
			item := xmltree.NewElement("item")
			item.Span, item.HasSpan = c.Span, c.HasSpan
			item.AddChild(buildSyntax(t, c))
			out.AddChild(item)
		}
		return out
	}

	out := xmltree.NewElement(syntaxName(t, raw.CSTKind))
	out.CSTKind = raw.CSTKind
	out.Span, out.HasSpan = raw.Span, raw.HasSpan
	for _, c := range raw.Children {
		switch n := c.(type) {
		case *xmltree.Text:
			out.AddChild(xmltree.NewText(n.Value))
		case *xmltree.Element:
			out.AddChild(buildSyntax(t, n))
		}
	}
	return out
}

// syntaxName maps a raw CST kind to the shared syntax-branch vocabulary;
// kinds outside that vocabulary (punctuation, format-specific wrappers
// like YAML's document markers) keep their own CST kind as the element
// name, same as a non-dual-view language's untransformed passthrough.
func syntaxName(t kindTable, cstKind string) string {
	switch {
	case cstKind == t.Document:
		return "document"
	case t.isObject(cstKind):
		return "object"
	case cstKind == t.String:
		return "string"
	case cstKind == t.Number:
		return "number"
	case cstKind == t.True || cstKind == t.False:
		return "bool"
	case cstKind == t.Null:
		return "null"
	}
	if t.IsScalar != nil {
		if _, ok := t.IsScalar(cstKind); ok {
			return "string"
		}
	}
	return cstKind
}
