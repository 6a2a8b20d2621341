package semantic

// byLanguage maps a language name (internal/langs.Language.Name) to its rule
// table. Kept here rather than on langs.Language itself so internal/langs
// stays free of a dependency on internal/xmltree.
var byLanguage = map[string]Rules{
	"go":         Go,
	"python":     Python,
	"javascript": JavaScript,
	"typescript": TypeScript,
	"rust":       Rust,
	"markdown":   Markdown,
}

// RulesFor looks up the rule table for a language name. JSON and YAML are
// not registered here: their data-structure-aware transform lives in
// internal/dataview instead (spec §4.3).
func RulesFor(name string) (Rules, bool) {
	r, ok := byLanguage[name]
	return r, ok
}
