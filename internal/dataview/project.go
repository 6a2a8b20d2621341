package dataview

import "github.com/oxhq/tractor/internal/xmltree"

// Supported reports whether a language name has a dual-view projection
// (spec §4.3's "JSON, YAML; extensible" dual-view set).
func Supported(languageName string) bool {
	_, ok := tableFor(languageName)
	return ok
}

func tableFor(languageName string) (kindTable, bool) {
	switch languageName {
	case "json":
		return jsonKinds, true
	case "yaml":
		return yamlKinds, true
	}
	return kindTable{}, false
}

// Project builds the sibling <syntax> and <data> branches for one parsed
// file's raw CST-shaped tree (the builder's direct output, before any
// per-language semantic transform runs) and attaches them to parent.
//
// YAML's stream node may contain more than one document; each becomes its
// own <document> wrapper under <data>, per spec §4.3's "Multi-document YAML
// wraps each document in <document>."
func Project(languageName string, raw *xmltree.Element, parent *xmltree.Element) bool {
	t, ok := tableFor(languageName)
	if !ok {
		return false
	}

	syntax := xmltree.NewElement("syntax")
	syntax.Span, syntax.HasSpan = raw.Span, raw.HasSpan
	syntax.AddChild(buildSyntax(t, raw))

	var data *xmltree.Element
	docs := documentsOf(t, raw)
	switch {
	case len(docs) > 1:
		data = xmltree.NewElement("data")
		data.Span, data.HasSpan = raw.Span, raw.HasSpan
		for _, d := range docs {
			data.AddChild(buildData(t, d, "document"))
		}
	case len(docs) == 1:
		data = buildData(t, docs[0], "data")
	default:
		data = buildData(t, raw, "data")
	}

	parent.AddChild(syntax)
	parent.AddChild(data)
	return true
}

// documentsOf finds document-kind children when the language's grammar
// wraps multiple top-level documents in a stream (YAML); languages without
// a Document kind (JSON) return nil, meaning the root itself is the sole
// document.
func documentsOf(t kindTable, raw *xmltree.Element) []*xmltree.Element {
	if t.Document == "" {
		return nil
	}
	var docs []*xmltree.Element
	raw.Walk(func(el *xmltree.Element) {
		if el.CSTKind == t.Document {
			docs = append(docs, el)
		}
	})
	return docs
}
