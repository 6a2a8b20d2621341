// Command tractor treats source code as a queryable, rewritable XML
// document: parse to a concrete syntax tree, project it into a
// language-neutral semantic tree (or a syntax/data dual view for
// data-structure formats), run an XPath 2.0 query against it, and either
// print, rewrite, or assert on the result.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxhq/tractor/internal/assert"
	"github.com/oxhq/tractor/internal/langs"
	"github.com/oxhq/tractor/internal/pipeline"
)

// flags mirrors buildConfigFromFlags's one-struct-of-parsed-values shape,
// bound directly onto cobra's flag set instead of pflag's bare FlagSet.
type flags struct {
	lang    string
	xpath   string
	expect  string
	message string
	output  string
	limit   int
	replace string
	hasRepl bool
	str     string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var f flags

	root := &cobra.Command{
		Use:           "tractor [files...]",
		Short:         "Query and rewrite source code as XML",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	fl := root.Flags()
	fl.StringVarP(&f.lang, "lang", "l", "", "source language (required for stdin or --string)")
	fl.StringVarP(&f.xpath, "xpath", "x", "", "XPath 2.0 expression to select nodes")
	fl.StringVarP(&f.expect, "expect", "e", "", "expected match count: none, some, or an integer")
	fl.StringVarP(&f.message, "message", "m", "", "diagnostic template for --expect mismatches")
	fl.StringVarP(&f.output, "output", "o", "", "output mode: xml, match, value, count, gcc, source")
	fl.IntVarP(&f.limit, "limit", "n", 0, "truncate matches to the first N in document order")
	fl.StringVar(&f.replace, "replace", "", "replacement text, requires --xpath")
	fl.StringVarP(&f.str, "string", "s", "", "source text given inline, requires --lang")

	exitCode := pipeline.ExitOK
	root.RunE = func(cmd *cobra.Command, args []string) error {
		f.hasRepl = fl.Changed("replace")
		code, err := execute(f, args, stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		exitCode = code
		return err
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "tractor: %v\n", err)
		if exitCode == pipeline.ExitOK {
			exitCode = pipeline.ExitParseOrXPath
		}
	}
	return exitCode
}

func execute(f flags, paths []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	if f.hasRepl && f.xpath == "" {
		return pipeline.ExitExpectFailed, fmt.Errorf("--replace requires --xpath")
	}

	opts, err := buildOptions(f)
	if err != nil {
		return pipeline.ExitExpectFailed, err
	}

	reg := langs.NewRegistry()

	var results []pipeline.Result
	switch {
	case f.str != "":
		if f.lang == "" {
			return pipeline.ExitExpectFailed, fmt.Errorf("--string requires --lang")
		}
		results = []pipeline.Result{pipeline.RunSource(reg, f.lang, []byte(f.str), "<string>", opts)}
	case len(paths) == 0:
		if f.hasRepl {
			return pipeline.ExitExpectFailed, fmt.Errorf("--replace cannot be used when reading from stdin")
		}
		if f.lang == "" {
			return pipeline.ExitExpectFailed, fmt.Errorf("--lang is required when reading from stdin")
		}
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return pipeline.ExitParseOrXPath, fmt.Errorf("read stdin: %w", err)
		}
		results = []pipeline.Result{pipeline.RunSource(reg, f.lang, raw, "<stdin>", opts)}
	case len(paths) == 1:
		results = []pipeline.Result{pipeline.RunFile(reg, paths[0], opts)}
	default:
		results = pipeline.RunFiles(reg, paths, opts)
	}

	for _, r := range results {
		if r.Output != "" {
			fmt.Fprint(stdout, r.Output)
		}
		if r.Err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", r.Path, r.Err)
		}
	}
	return pipeline.ExitCode(results), nil
}

func buildOptions(f flags) (pipeline.Options, error) {
	opts := pipeline.Options{
		Lang:       f.lang,
		XPath:      f.xpath,
		Output:     pipeline.OutputMode(f.output),
		Limit:      f.limit,
		Replace:    f.replace,
		HasReplace: f.hasRepl,
		Message:    f.message,
	}
	if f.expect != "" {
		exp, err := assert.ParseExpectation(f.expect)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Expect = &exp
	}
	return opts, nil
}
