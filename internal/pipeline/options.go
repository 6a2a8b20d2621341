// Package pipeline composes one file's parse -> build -> transform -> query
// -> render -> rewrite stages (spec §2) and fans a file list out across a
// worker pool for multi-file runs (spec §5).
package pipeline

import "github.com/oxhq/tractor/internal/assert"

// OutputMode selects one of the six rendering modes (spec §4.5).
type OutputMode string

const (
	OutputXML   OutputMode = "xml"
	OutputMatch OutputMode = "match"
	OutputValue OutputMode = "value"
	OutputCount OutputMode = "count"
	OutputGCC   OutputMode = "gcc"
	OutputSource OutputMode = "source"
)

// Options is one invocation's resolved configuration (spec §6), assembled
// directly from cobra flags by cmd/tractor — grounded on
// internal/config/config.go's single flat Config struct, no layering.
type Options struct {
	Lang     string
	XPath    string
	Output   OutputMode
	Limit    int
	Replace  string
	HasReplace bool
	Expect   *assert.Expectation
	Message  string
}
