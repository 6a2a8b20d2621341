package pipeline

import (
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oxhq/tractor/internal/assert"
	"github.com/oxhq/tractor/internal/dataview"
	"github.com/oxhq/tractor/internal/langs"
	"github.com/oxhq/tractor/internal/query"
	"github.com/oxhq/tractor/internal/render"
	"github.com/oxhq/tractor/internal/rewrite"
	"github.com/oxhq/tractor/internal/semantic"
	"github.com/oxhq/tractor/internal/xmltree"
)

// Exit codes per spec §6.
const (
	ExitOK           = 0
	ExitExpectFailed = 1
	ExitParseOrXPath = 2
)

// Result is one file's pipeline output, ready to print.
type Result struct {
	Path   string
	Output string
	Exit   int
	Err    error
}

// RunFile reads path and runs the full pipeline against it.
func RunFile(reg *langs.Registry, path string, opts Options) Result {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Exit: ExitExpectFailed, Err: fmt.Errorf("read %s: %w", path, err)}
	}
	lang := opts.Lang
	if lang == "" {
		l, err := reg.ByPath(path)
		if err != nil {
			return Result{Path: path, Exit: ExitParseOrXPath, Err: err}
		}
		lang = l.Name
	}
	return run(reg, lang, raw, path, opts)
}

// RunSource runs the pipeline against source already in memory (stdin or
// --string input, spec §6), which always requires --lang.
func RunSource(reg *langs.Registry, lang string, raw []byte, displayPath string, opts Options) Result {
	if lang == "" {
		return Result{Path: displayPath, Exit: ExitParseOrXPath,
			Err: fmt.Errorf("pipeline: --lang is required when reading from stdin or --string")}
	}
	return run(reg, lang, raw, displayPath, opts)
}

func run(reg *langs.Registry, langName string, raw []byte, displayPath string, opts Options) Result {
	language, err := reg.ByName(langName)
	if err != nil {
		return Result{Path: displayPath, Exit: ExitParseOrXPath, Err: err}
	}

	src, err := langs.NewSource(displayPath, raw)
	if err != nil {
		return Result{Path: displayPath, Exit: ExitParseOrXPath, Err: err}
	}

	parser := sitter.NewParser()
	parser.SetLanguage(language.Sitter)
	tree, err := parser.ParseCtx(nil, nil, src.Bytes)
	if err != nil || tree == nil {
		return Result{Path: displayPath, Exit: ExitParseOrXPath,
			Err: fmt.Errorf("pipeline: parse %s: %w", displayPath, err)}
	}

	rawTree := xmltree.Build(src, tree.RootNode())

	files := xmltree.NewElement("Files")
	files.HasSpan = false
	fileEl := xmltree.NewElement("File")
	fileEl.Path = displayPath
	fileEl.HasPath = true
	fileEl.Span, fileEl.HasSpan = rawTree.Span, rawTree.HasSpan
	files.AddChild(fileEl)

	if dataview.Supported(language.Name) {
		dataview.Project(language.Name, rawTree, fileEl)
	} else {
		rules, ok := semantic.RulesFor(language.Name)
		var root *xmltree.Element
		if ok {
			root = semantic.Transform(rules, rawTree)
		} else {
			root = rawTree
		}
		fileEl.AddChild(root)
	}

	if opts.XPath == "" {
		return Result{Path: displayPath, Exit: ExitOK, Output: render.XML(files)}
	}

	expr, err := query.Compile(opts.XPath)
	if err != nil {
		return Result{Path: displayPath, Exit: ExitParseOrXPath,
			Err: fmt.Errorf("pipeline: compile xpath %q: %w", opts.XPath, err)}
	}

	matches, err := query.Select(expr, files)
	if err != nil {
		return Result{Path: displayPath, Exit: ExitParseOrXPath, Err: err}
	}
	matches = render.Limit(matches, opts.Limit)

	if opts.HasReplace {
		return doReplace(src, matches, opts, displayPath)
	}

	out, exit, err := renderMatches(displayPath, src, matches, opts)
	if err != nil {
		return Result{Path: displayPath, Exit: ExitParseOrXPath, Err: err, Output: out}
	}

	if opts.Expect != nil {
		ok := opts.Expect.Evaluate(len(matches))
		if !ok {
			diag := expectationDiagnostics(files, displayPath, matches, opts)
			return Result{Path: displayPath, Exit: ExitExpectFailed, Output: diag}
		}
		return Result{Path: displayPath, Exit: ExitOK, Output: out}
	}

	return Result{Path: displayPath, Exit: exit, Output: out}
}

func renderMatches(path string, src *langs.Source, matches []query.Match, opts Options) (string, int, error) {
	mode := opts.Output
	if mode == "" {
		mode = OutputMatch
	}
	switch mode {
	case OutputMatch:
		return render.Match(path, matches), ExitOK, nil
	case OutputValue:
		return render.Value(matches), ExitOK, nil
	case OutputCount:
		return render.Count(matches), ExitOK, nil
	case OutputGCC:
		return render.GCC(path, matches, nil), ExitOK, nil
	case OutputSource:
		return render.Source(src, matches), ExitOK, nil
	case OutputXML:
		// -x with an explicit -o xml still means "the matched values", same
		// as match mode; the whole-tree xml rendering only applies when no
		// -x was given at all (handled earlier in run, before matching).
		return render.Match(path, matches), ExitOK, nil
	}
	return "", ExitParseOrXPath, fmt.Errorf("pipeline: unknown output mode %q", mode)
}

func doReplace(src *langs.Source, matches []query.Match, opts Options, path string) Result {
	newBytes, err := rewrite.Splice(src.Bytes, matches, opts.Replace)
	if err != nil {
		return Result{Path: path, Exit: ExitExpectFailed, Err: err}
	}
	if err := rewrite.AtomicWrite(path, newBytes); err != nil {
		return Result{Path: path, Exit: ExitExpectFailed, Err: err}
	}
	return Result{Path: path, Exit: ExitOK, Output: fmt.Sprintf("%s: replaced %d match(es)\n", path, len(matches))}
}

func expectationDiagnostics(documentRoot *xmltree.Element, path string, matches []query.Match, opts Options) string {
	if opts.Message == "" {
		return render.GCC(path, matches, nil)
	}
	var out string
	for _, m := range matches {
		out += assert.RenderTemplate(opts.Message, path, documentRoot, m) + "\n"
	}
	return out
}
