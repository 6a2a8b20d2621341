package dataview

import "github.com/oxhq/tractor/internal/xmltree"

// buildData produces the decoded <data> branch (spec §4.3): object keys
// become element names (sanitized), arrays become repeated <item> siblings,
// scalars are fully decoded text, and every element's span covers only its
// own value, not its enclosing property's key/colon/comma.
func buildData(t kindTable, raw *xmltree.Element, elementName string) *xmltree.Element {
	raw = t.unwrap(raw)
	switch {
	case t.isObject(raw.CSTKind):
		out := xmltree.NewElement(elementName)
		out.Span, out.HasSpan = raw.Span, raw.HasSpan
		for _, c := range raw.ChildElements() {
			if !t.isPair(c.CSTKind) {
				continue
			}
			keyEl, valEl, ok := pairKeyValue(c)
			if !ok {
				continue
			}
			key := scalarText(t, keyEl)
			name, changed := sanitizeKey(key)
			child := buildData(t, valEl, name)
			if changed {
				child.Key = key
				child.HasKey = true
			}
			out.AddChild(child)
		}
		return out

	case t.isArray(raw.CSTKind):
		out := xmltree.NewElement(elementName)
		out.Span, out.HasSpan = raw.Span, raw.HasSpan
		for _, c := range raw.ChildElements() {
			if t.Item == nil || !t.Item(c.CSTKind) {
				continue
			}
			value := c
			if t.ItemValue != nil {
				value = t.ItemValue(c)
			}
			out.AddChild(buildData(t, value, "item"))
		}
		return out

	default:
		out := xmltree.NewElement(elementName)
		out.Span, out.HasSpan = raw.Span, raw.HasSpan
		out.AddChild(xmltree.NewText(scalarText(t, raw)))
		return out
	}
}

// scalarText decodes a scalar node's raw source text into its content
// (quotes stripped, escapes resolved), or returns the literal text for
// numbers/bool/null, which need no decoding beyond their own spelling.
func scalarText(t kindTable, el *xmltree.Element) string {
	raw := el.StringValue()
	switch el.CSTKind {
	case t.String:
		if t.String != "" {
			return decodeJSONString(raw)
		}
	case t.True, t.False, t.Number, t.Null:
		return raw
	}
	if t.IsScalar != nil {
		if decode, ok := t.IsScalar(el.CSTKind); ok {
			return decode(raw)
		}
	}
	return raw
}
