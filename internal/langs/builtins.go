package langs

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/json"
	"github.com/smacker/go-tree-sitter/markdown"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/smacker/go-tree-sitter/yaml"
)

// builtins lists every language tractor ships grammars for. Each entry's
// Sitter field is filled in when builtins runs, by calling that grammar's
// GetLanguage through lang.
func builtins() []*Language {
	return []*Language{
		{
			Name:    "go",
			Aliases: []string{"golang"},
			Exts:    []string{".go"},
			Sitter:  lang(golang.GetLanguage),
		},
		{
			Name:    "python",
			Aliases: []string{"py"},
			Exts:    []string{".py"},
			Sitter:  lang(python.GetLanguage),
		},
		{
			Name:    "javascript",
			Aliases: []string{"js"},
			Exts:    []string{".js", ".jsx", ".mjs"},
			Sitter:  lang(javascript.GetLanguage),
		},
		{
			Name:    "typescript",
			Aliases: []string{"ts"},
			Exts:    []string{".ts"},
			Sitter:  lang(typescript.GetLanguage),
		},
		{
			Name:    "rust",
			Aliases: []string{"rs"},
			Exts:    []string{".rs"},
			Sitter:  lang(rust.GetLanguage),
		},
		{
			Name:     "json",
			Exts:     []string{".json"},
			Sitter:   lang(json.GetLanguage),
			DualView: true,
		},
		{
			Name:     "yaml",
			Exts:     []string{".yaml", ".yml"},
			Sitter:   lang(yaml.GetLanguage),
			DualView: true,
		},
		{
			Name:    "markdown",
			Aliases: []string{"md"},
			Exts:    []string{".md", ".markdown"},
			Sitter:  lang(markdown.GetLanguage),
		},
	}
}

// lang recovers a *sitter.Language from a grammar package's GetLanguage
// function, evaluated immediately since every builtin grammar is linked
// statically into the binary (no plugin loading, unlike the registry this
// package's design is adapted from).
func lang(get func() *sitter.Language) *sitter.Language {
	return get()
}
