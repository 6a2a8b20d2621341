// Package render formats query results and the full semantic tree for
// output (spec §4.5). One function per output mode, kept separate from
// domain computation, the same split the teacher keeps between
// internal/cli's presentation layer and model.Result's computed data.
package render

import (
	"strings"

	"github.com/oxhq/tractor/internal/xmltree"
)

// XML pretty-prints the full tree rooted at root (spec §4.5 "xml" mode,
// the default when no -x is given). Attributes render in Element.Attrs'
// canonical order; text needing CDATA protection (containing "<", "&", or
// "]]>") is wrapped rather than entity-escaped, matching spec §6's "CDATA
// is used for text containing <, &, or ]]>".
func XML(root *xmltree.Element) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	writeElement(&b, root, 0)
	b.WriteString("\n")
	return b.String()
}

func writeElement(b *strings.Builder, el *xmltree.Element, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(el.Name)
	for _, a := range el.Attrs() {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString("=\"")
		b.WriteString(escapeAttr(a.Value))
		b.WriteString("\"")
	}

	if len(el.Children) == 0 {
		b.WriteString("/>")
		return
	}

	// A leaf-text-only element (the common case for tokens) renders inline
	// to keep the tree readable; anything with element children breaks
	// onto its own lines.
	if onlyText, text := soleText(el); onlyText {
		b.WriteString(">")
		writeText(b, text)
		b.WriteString("</")
		b.WriteString(el.Name)
		b.WriteString(">")
		return
	}

	b.WriteString(">\n")
	for _, c := range el.Children {
		switch n := c.(type) {
		case *xmltree.Text:
			if strings.TrimSpace(n.Value) == "" {
				continue
			}
			b.WriteString(strings.Repeat("  ", depth+1))
			writeText(b, n.Value)
			b.WriteString("\n")
		case *xmltree.Element:
			writeElement(b, n, depth+1)
			b.WriteString("\n")
		}
	}
	b.WriteString(indent)
	b.WriteString("</")
	b.WriteString(el.Name)
	b.WriteString(">")
}

func soleText(el *xmltree.Element) (bool, string) {
	if len(el.Children) != 1 {
		return false, ""
	}
	t, ok := el.Children[0].(*xmltree.Text)
	if !ok {
		return false, ""
	}
	return true, t.Value
}

func writeText(b *strings.Builder, text string) {
	if strings.ContainsAny(text, "<&") || strings.Contains(text, "]]>") {
		b.WriteString("<![CDATA[")
		b.WriteString(strings.ReplaceAll(text, "]]>", "]]]]><![CDATA[>"))
		b.WriteString("]]>")
		return
	}
	b.WriteString(text)
}

func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return s
}
