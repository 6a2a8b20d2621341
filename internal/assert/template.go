package assert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/oxhq/tractor/internal/query"
	"github.com/oxhq/tractor/internal/xmltree"
)

var placeholderRE = regexp.MustCompile(`\{([^}]*)\}`)

// RenderTemplate substitutes a -m template's placeholders for one match
// (spec §4.7): {value}, {line}, {col}, {file}, and {<xpath>} for any other
// relative XPath expression evaluated from the match node. Unrecognized
// placeholders pass through literally; a failing XPath placeholder renders
// as "" rather than aborting the whole message.
func RenderTemplate(tmpl, file string, documentRoot *xmltree.Element, m query.Match) string {
	return placeholderRE.ReplaceAllStringFunc(tmpl, func(token string) string {
		name := token[1 : len(token)-1]
		switch name {
		case "value":
			return truncate(m.StringValue(), 50)
		case "line":
			line, _ := position(m)
			return fmt.Sprintf("%d", line)
		case "col":
			_, col := position(m)
			return fmt.Sprintf("%d", col)
		case "file":
			return file
		case "":
			return token
		}
		return evalPlaceholder(name, documentRoot, m, token)
	})
}

func evalPlaceholder(exprStr string, documentRoot *xmltree.Element, m query.Match, fallback string) string {
	expr, err := query.Compile(exprStr)
	if err != nil {
		return fallback
	}
	result, err := query.EvalFrom(expr, documentRoot, m.Node())
	if err != nil {
		return ""
	}
	switch v := result.(type) {
	case []query.Match:
		if len(v) == 0 {
			return ""
		}
		return v[0].StringValue()
	case string:
		return v
	case float64:
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	}
	return ""
}

func position(m query.Match) (line, col int) {
	span, ok := m.Span()
	if !ok {
		return 0, 0
	}
	return span.StartLine, span.StartCol
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
