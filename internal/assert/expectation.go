// Package assert turns a query result into a pass/fail CI check with
// templated diagnostics (spec §4.7, "--expect").
package assert

import (
	"fmt"
	"strconv"
)

// Expectation is a parsed --expect value: "none", "some", or an exact count.
type Expectation struct {
	raw   string
	exact int
	kind  expectKind
}

type expectKind int

const (
	expectNone expectKind = iota
	expectSome
	expectExact
)

// ParseExpectation parses "none", "some", or an integer (spec §4.7).
func ParseExpectation(s string) (Expectation, error) {
	switch s {
	case "none":
		return Expectation{raw: s, kind: expectNone}, nil
	case "some":
		return Expectation{raw: s, kind: expectSome}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Expectation{}, fmt.Errorf("assert: invalid --expect value %q: want none, some, or an integer", s)
	}
	return Expectation{raw: s, kind: expectExact, exact: n}, nil
}

func (e Expectation) String() string { return e.raw }

// Evaluate compares the post-limit match count m against e and reports
// whether the expectation is satisfied.
func (e Expectation) Evaluate(m int) bool {
	switch e.kind {
	case expectNone:
		return m == 0
	case expectSome:
		return m >= 1
	case expectExact:
		return m == e.exact
	}
	return false
}
