// Package rewrite applies textual replacements to the original file at the
// byte ranges covered by match spans (spec §4.6).
package rewrite

import (
	"errors"
	"fmt"
	"sort"

	"github.com/oxhq/tractor/internal/query"
)

// ErrOverlap is returned by Splice when two match spans overlap — possible
// when both an ancestor and its descendant match the same expression
// (spec §4.6 "Overlapping match spans ... are rejected with an error").
var ErrOverlap = errors.New("rewrite: overlapping match spans")

// Splice replaces each match's [start, end) byte range in source with
// replacement, processing matches from last to first so earlier offsets
// stay valid (spec §4.6). Grounded on providers/base/provider.go's
// sortTargetsDescending + doReplace, extended with overlap rejection.
func Splice(source []byte, matches []query.Match, replacement string) ([]byte, error) {
	if len(matches) == 0 {
		return source, nil
	}

	type target struct {
		start, end int
	}
	targets := make([]target, 0, len(matches))
	for _, m := range matches {
		span, ok := m.Span()
		if !ok {
			continue
		}
		targets = append(targets, target{span.StartByte, span.EndByte})
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].start < targets[j].start })
	for i := 1; i < len(targets); i++ {
		if targets[i].start < targets[i-1].end {
			return nil, fmt.Errorf("%w: [%d,%d) and [%d,%d)",
				ErrOverlap, targets[i-1].start, targets[i-1].end, targets[i].start, targets[i].end)
		}
	}

	// Apply from last to first so already-applied replacements don't shift
	// the byte offsets of targets still pending.
	result := append([]byte(nil), source...)
	for i := len(targets) - 1; i >= 0; i-- {
		t := targets[i]
		if t.start < 0 || t.end > len(result) || t.start > t.end {
			continue
		}
		tail := append([]byte(nil), result[t.end:]...)
		result = append(result[:t.start], append([]byte(replacement), tail...)...)
	}
	return result, nil
}
