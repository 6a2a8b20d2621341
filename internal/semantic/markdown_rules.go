package semantic

import "github.com/oxhq/tractor/internal/xmltree"

// Markdown is simpler than the code grammars: most of its CST is prose text,
// and the one construct tractor's domain actually cares about is the fenced
// code block, whose info string becomes a <language> child and a @language
// attribute, which drive the embedded-code-block scenario (spec §8).
var Markdown = Rules{
	Rename: map[string]string{
		"document":             "module",
		"atx_heading":          "heading",
		"setext_heading":       "heading",
		"paragraph":            "paragraph",
		"list":                 "list",
		"list_item":            "item",
		"link":                 "link",
		"image":                "image",
		"block_quote":          "quote",
		"html_block":           "html",
		"info_string":          "language",
		"code_fence_content":   "code",
		"indented_code_block":  "code_block",
	},
	Flatten: map[string]bool{
		"inline": true,
	},
	Modifiers: map[string]bool{},
	TypeWrap:  map[string]bool{},
	Special: func(el *xmltree.Element) bool {
		if el.CSTKind != "fenced_code_block" {
			return false
		}
		el.Name = "code_block"
		lang := ""
		for _, c := range el.ChildElements() {
			if c.CSTKind == "info_string" {
				lang = c.StringValue()
			}
		}
		if lang != "" {
			el.Lang = lang
			el.HasLang = true
		}
		return true
	},
}
