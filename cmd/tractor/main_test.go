package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args []string, stdin string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errBuf)
	return out.String(), errBuf.String(), code
}

func TestFullXMLWhenNoXPath(t *testing.T) {
	path := writeTemp(t, "a.go", "package main\nfunc main() {}\n")
	stdout, _, code := runCLI(t, []string{path}, "")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "<File")
	assert.Contains(t, stdout, "<function")
}

func TestXPathMatchMode(t *testing.T) {
	path := writeTemp(t, "a.go", "package main\nfunc Foo() {}\n")
	stdout, _, code := runCLI(t, []string{path, "-x", "//function/name"}, "")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Foo")
}

func TestJSONDataView(t *testing.T) {
	path := writeTemp(t, "a.json", `{"name":"John","age":30}`)
	stdout, _, code := runCLI(t, []string{path, "-x", "//data/name", "-o", "value"}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "John\n", stdout)
}

func TestReplaceRequiresXPath(t *testing.T) {
	path := writeTemp(t, "a.go", "package main\nfunc Foo() {}\n")
	_, stderr, code := runCLI(t, []string{path, "--replace", "x"}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--xpath")
}

func TestReplaceFromStdinFails(t *testing.T) {
	_, stderr, code := runCLI(t, []string{"-l", "go", "-x", "//function", "--replace", "x"}, "package main\n")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "stdin")
}

func TestExpectNoneMismatch(t *testing.T) {
	path := writeTemp(t, "a.go", "package main\nfunc Foo() {}\n")
	stdout, _, code := runCLI(t, []string{path, "-x", "//function", "-e", "none"}, "")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stdout)
}

func TestExpectExactSatisfied(t *testing.T) {
	path := writeTemp(t, "a.go", "package main\nfunc Foo() {}\nfunc Bar() {}\n")
	_, _, code := runCLI(t, []string{path, "-x", "//function", "-e", "2"}, "")
	assert.Equal(t, 0, code)
}

func TestStdinRequiresLang(t *testing.T) {
	_, stderr, code := runCLI(t, []string{}, "package main\n")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--lang")
}

func TestStringRequiresLang(t *testing.T) {
	_, stderr, code := runCLI(t, []string{"-s", "package main\nfunc Foo() {}\n", "-x", "//function"}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--lang")
}

func TestMultiFileMaxExitCode(t *testing.T) {
	good := writeTemp(t, "good.go", "package main\nfunc Foo() {}\n")
	bad := filepath.Join(filepath.Dir(good), "missing.go")
	_, _, code := runCLI(t, []string{good, bad}, "")
	assert.Equal(t, 1, code)
}
