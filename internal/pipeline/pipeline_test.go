package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oxhq/tractor/internal/assert"
	"github.com/oxhq/tractor/internal/langs"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestRunFileFullTreeWhenNoXPath(t *testing.T) {
	reg := langs.NewRegistry()
	path := writeTemp(t, "a.go", "package main\nfunc Foo() {}\n")

	r := RunFile(reg, path, Options{})
	if r.Err != nil {
		t.Fatalf("RunFile: %v", r.Err)
	}
	if r.Exit != ExitOK {
		t.Errorf("Exit = %d, want %d", r.Exit, ExitOK)
	}
	if !strings.Contains(r.Output, "<function") {
		t.Errorf("Output missing <function>: %s", r.Output)
	}
}

func TestRunFileXPathMatchMode(t *testing.T) {
	reg := langs.NewRegistry()
	path := writeTemp(t, "a.go", "package main\nfunc Foo() {}\n")

	r := RunFile(reg, path, Options{XPath: "//function/name"})
	if r.Err != nil {
		t.Fatalf("RunFile: %v", r.Err)
	}
	if !strings.Contains(r.Output, "Foo") {
		t.Errorf("Output = %q, want it to contain Foo", r.Output)
	}
}

func TestRunFileDataViewProjectsJSON(t *testing.T) {
	reg := langs.NewRegistry()
	path := writeTemp(t, "a.json", `{"name":"John","age":30}`)

	r := RunFile(reg, path, Options{XPath: "//data/name", Output: OutputValue})
	if r.Err != nil {
		t.Fatalf("RunFile: %v", r.Err)
	}
	if r.Output != "John\n" {
		t.Errorf("Output = %q, want John\\n", r.Output)
	}
}

func TestRunFileReplaceWritesFileAtomically(t *testing.T) {
	reg := langs.NewRegistry()
	path := writeTemp(t, "a.go", "package main\nvar x = 1\n")

	r := RunFile(reg, path, Options{XPath: "//int_literal", HasReplace: true, Replace: "2"})
	if r.Err != nil {
		t.Fatalf("RunFile: %v", r.Err)
	}
	if r.Exit != ExitOK {
		t.Errorf("Exit = %d, want %d", r.Exit, ExitOK)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(got), "var x = 2") {
		t.Errorf("file content = %q, want it to contain var x = 2", got)
	}
}

func TestRunFileExpectMismatchReturnsExpectExitCode(t *testing.T) {
	reg := langs.NewRegistry()
	path := writeTemp(t, "a.go", "package main\nfunc Foo() {}\n")

	exp, err := assert.ParseExpectation("none")
	if err != nil {
		t.Fatalf("parse expectation: %v", err)
	}
	r := RunFile(reg, path, Options{XPath: "//function", Expect: &exp})
	if r.Exit != ExitExpectFailed {
		t.Errorf("Exit = %d, want %d", r.Exit, ExitExpectFailed)
	}
}

func TestRunFileReadErrorOnUnreadableFile(t *testing.T) {
	reg := langs.NewRegistry()
	r := RunFile(reg, filepath.Join(t.TempDir(), "missing.go"), Options{})
	if r.Err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestRunSourceRequiresLang(t *testing.T) {
	reg := langs.NewRegistry()
	r := RunSource(reg, "", []byte("package main\n"), "<stdin>", Options{})
	if r.Err == nil {
		t.Fatal("RunSource without --lang should error")
	}
}

func TestRunFilesComputesMaxExitCode(t *testing.T) {
	reg := langs.NewRegistry()
	good := writeTemp(t, "good.go", "package main\nfunc Foo() {}\n")
	bad := filepath.Join(filepath.Dir(good), "missing.go")

	results := RunFiles(reg, []string{good, bad}, Options{})
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if ExitCode(results) != ExitExpectFailed {
		t.Errorf("ExitCode = %d, want %d", ExitCode(results), ExitExpectFailed)
	}
}

func TestRunFilesPreservesInputOrder(t *testing.T) {
	reg := langs.NewRegistry()
	a := writeTemp(t, "a.go", "package main\nfunc A() {}\n")
	b := writeTemp(t, "b.go", "package main\nfunc B() {}\n")

	results := RunFiles(reg, []string{a, b}, Options{})
	if results[0].Path != a || results[1].Path != b {
		t.Errorf("results out of order: %v", results)
	}
}
