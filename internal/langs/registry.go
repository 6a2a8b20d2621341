// Package langs maps a user-facing language name or file extension to the
// tree-sitter grammar tractor parses it with.
package langs

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
)

// Language describes one supported source language.
type Language struct {
	// Name is the canonical, lowercase identifier (e.g. "go", "json").
	Name string
	// Aliases are additional names accepted on --lang.
	Aliases []string
	// Exts are file extensions (with leading dot) routed to this language.
	Exts []string
	// Sitter is the tree-sitter grammar used to parse source of this language.
	Sitter *sitter.Language
	// DualView marks data-structure languages that get a <syntax>/<data>
	// split (spec §4.3) instead of a single semantic tree.
	DualView bool
}

// Registry resolves a language name/alias/extension to its Language.
type Registry struct {
	mu         sync.RWMutex
	byName     map[string]*Language
	aliases    map[string]string
	extensions map[string]string
}

// NewRegistry builds a registry pre-populated with every language tractor
// ships support for.
func NewRegistry() *Registry {
	r := &Registry{
		byName:     make(map[string]*Language),
		aliases:    make(map[string]string),
		extensions: make(map[string]string),
	}
	for _, l := range builtins() {
		if err := r.register(l); err != nil {
			panic(err) // programmer error: duplicate builtin registration
		}
	}
	return r
}

func (r *Registry) register(l *Language) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.Name == "" {
		return fmt.Errorf("language must have a non-empty name")
	}
	if _, exists := r.byName[l.Name]; exists {
		return fmt.Errorf("language %q already registered", l.Name)
	}
	r.byName[l.Name] = l

	for _, alias := range l.Aliases {
		if existing, exists := r.aliases[alias]; exists {
			return fmt.Errorf("alias %q conflicts with existing mapping to %q", alias, existing)
		}
		r.aliases[alias] = l.Name
	}

	for _, ext := range l.Exts {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if existing, exists := r.extensions[ext]; exists {
			return fmt.Errorf("extension %q conflicts with existing mapping to %q", ext, existing)
		}
		r.extensions[ext] = l.Name
	}
	return nil
}

// ByName resolves a language name or alias.
func (r *Registry) ByName(name string) (*Language, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.ToLower(strings.TrimSpace(name))
	if l, ok := r.byName[name]; ok {
		return l, nil
	}
	if canonical, ok := r.aliases[name]; ok {
		return r.byName[canonical], nil
	}
	return nil, fmt.Errorf("unknown language: %s", name)
}

// ByPath resolves a language from a file's extension.
func (r *Registry) ByPath(path string) (*Language, error) {
	ext := strings.ToLower(filepath.Ext(path))

	r.mu.RLock()
	defer r.mu.RUnlock()

	canonical, ok := r.extensions[ext]
	if !ok {
		return nil, fmt.Errorf("no language registered for extension %q", ext)
	}
	return r.byName[canonical], nil
}
