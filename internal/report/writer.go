package report

import (
	"io"

	"github.com/nao1215/devcheck/internal/model"
)

// Writer defines the interface for report output.
// Implementations write check results in various formats.
type Writer interface {
	// WriteSchema outputs a schema check report.
	// Returns the number of bytes written and any error encountered.
	WriteSchema(report *model.SchemaReport) (int, error)

	// WriteA11y outputs an accessibility report for one file.
	// Returns the number of bytes written and any error encountered.
	WriteA11y(report *model.A11yReport) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// Format selects a Writer implementation.
type Format int

const (
	// FormatText is plain text output (default).
	FormatText Format = iota
	// FormatJSON is pretty-printed JSON output.
	FormatJSON
	// FormatMarkdown is GitHub Flavored Markdown output.
	FormatMarkdown
)

// New returns the Writer for format writing to output.
func New(format Format, output io.Writer, verbose bool) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint())
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewSimpleWriter(output, WithVerbose(verbose))
	}
}
