package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/devcheck/internal/model"
)

// SimpleWriter outputs plain text reports.
//
// The schema report is printed exactly as the project's check scripts always
// printed it: a "--- Analyzing Prisma Schema: <path> ---" header followed by
// one "<Name>: <Status>" line per check. Accessibility reports use the same
// header style and print one message per line.
type SimpleWriter struct {
	baseWriter

	// verbose adds line numbers and recommendations to accessibility output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteSchema outputs the schema report.
func (w *SimpleWriter) WriteSchema(report *model.SchemaReport) (int, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("--- Analyzing Prisma Schema: %s ---\n", report.SchemaPath))
	for _, check := range report.Checks {
		sb.WriteString(fmt.Sprintf("%s: %s\n", check.Name, check.Status))
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteA11y outputs the accessibility report.
func (w *SimpleWriter) WriteA11y(report *model.A11yReport) (int, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("--- Checking Accessibility: %s ---\n", report.File))
	for _, issue := range report.Issues {
		sb.WriteString(issue.Message)
		sb.WriteString("\n")
		if w.verbose {
			w.writeDetails(&sb, issue)
		}
	}

	if w.verbose {
		sb.WriteString(fmt.Sprintf("%d error(s), %d warning(s), %d tip(s)\n",
			report.ErrorCount, report.WarningCount, report.TipCount))
	}

	return w.output.Write([]byte(sb.String()))
}

// writeDetails writes the location and remediation of an issue.
func (w *SimpleWriter) writeDetails(sb *strings.Builder, issue model.Issue) {
	sb.WriteString(fmt.Sprintf("    [%s] %s", issue.SeverityText, issue.RuleID))
	if issue.Line > 0 {
		sb.WriteString(fmt.Sprintf(" (line %d)", issue.Line))
	}
	sb.WriteString("\n")
	if issue.Recommendation != "" {
		sb.WriteString(fmt.Sprintf("    Fix: %s\n", issue.Recommendation))
	}
}
