package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oxhq/tractor/internal/langs"
	"github.com/oxhq/tractor/internal/query"
)

// Limit truncates matches to the first n (document order), before any
// rendering or rewriting (spec §4.5 "--limit N / -n N").
func Limit(matches []query.Match, n int) []query.Match {
	if n <= 0 || n >= len(matches) {
		return matches
	}
	return matches[:n]
}

// Match renders "path:line:col: matched-value", one line per match (spec
// §4.5, default output mode once -x is given).
func Match(path string, matches []query.Match) string {
	var b strings.Builder
	for _, m := range matches {
		line, col := position(m)
		fmt.Fprintf(&b, "%s:%d:%d: %s\n", path, line, col, oneLine(m.StringValue()))
	}
	return b.String()
}

// Value renders the text value of each match, newline-separated.
func Value(matches []query.Match) string {
	var b strings.Builder
	for _, m := range matches {
		b.WriteString(m.StringValue())
		b.WriteString("\n")
	}
	return b.String()
}

// Count renders the integer match count.
func Count(matches []query.Match) string {
	return strconv.Itoa(len(matches))
}

// GCC renders "path:line:col: message", suitable for IDE error navigation
// (spec §4.5 "gcc" mode). message defaults to the match's own string-value
// when the caller has no more specific diagnostic (e.g. an --expect
// failure's own message).
func GCC(path string, matches []query.Match, message func(query.Match) string) string {
	if message == nil {
		message = func(m query.Match) string { return oneLine(m.StringValue()) }
	}
	var b strings.Builder
	for _, m := range matches {
		line, col := position(m)
		fmt.Fprintf(&b, "%s:%d:%d: %s\n", path, line, col, message(m))
	}
	return b.String()
}

// Source renders the original source bytes of each match's span, not the
// XML rendering — the spec §4.5 "source" mode, enabling extract/re-parse
// round-tripping.
func Source(src *langs.Source, matches []query.Match) string {
	var b strings.Builder
	for _, m := range matches {
		span, ok := m.Span()
		if !ok {
			continue
		}
		b.WriteString(src.Text(span.StartByte, span.EndByte))
		b.WriteString("\n")
	}
	return b.String()
}

func position(m query.Match) (line, col int) {
	span, ok := m.Span()
	if !ok {
		return 0, 0
	}
	return span.StartLine, span.StartCol
}

// oneLine collapses a multi-line match value onto a single output line so
// match/gcc mode stays one-result-per-line.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
