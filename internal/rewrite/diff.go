package rewrite

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff between original and modified, or "" if they
// are identical. Grounded on providers/base/provider.go's generateDiff,
// used by tests verifying rewrite idempotence (spec §8 invariant 6) rather
// than wired to a CLI flag the spec doesn't define.
func Diff(original, modified []byte) (string, error) {
	if string(original) == string(modified) {
		return "", nil
	}
	ud := difflib.UnifiedDiff{
		A:        strings.Split(string(original), "\n"),
		B:        strings.Split(string(modified), "\n"),
		FromFile: "original",
		ToFile:   "modified",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}
