package report

import (
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/devcheck/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown, suitable for
// posting as a pull request comment.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteSchema outputs the schema report in Markdown format.
func (w *MarkdownWriter) WriteSchema(report *model.SchemaReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Prisma Schema Check")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Schema", codeSpan(report.SchemaPath)},
			{"Check Date", report.DateChecked.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")

	rows := make([][]string, len(report.Checks))
	for i, check := range report.Checks {
		rows[i] = []string{escapeCell(check.Name), escapeCell(check.Status)}
	}
	md.H2("Checks")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Check", "Status"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteA11y outputs the accessibility report in Markdown format.
func (w *MarkdownWriter) WriteA11y(report *model.A11yReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeA11yHeader(md, report)
	w.writeA11ySummary(md, report)
	w.writeIssues(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeA11yHeader writes the report header with scan information.
func (w *MarkdownWriter) writeA11yHeader(md *markdown.Markdown, report *model.A11yReport) {
	md.H1("Accessibility Report")
	md.PlainText("")

	rows := [][]string{
		{"File", codeSpan(report.File)},
		{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
	}
	if report.Digest != "" {
		rows = append(rows, []string{"SHA3-256", codeSpan(report.Digest)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeA11ySummary writes the severity summary section.
func (w *MarkdownWriter) writeA11ySummary(md *markdown.Markdown, report *model.A11yReport) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows: [][]string{
			{"🔴 Error", strconv.Itoa(report.ErrorCount)},
			{"🟡 Warning", strconv.Itoa(report.WarningCount)},
			{"🔵 Tip", strconv.Itoa(report.TipCount)},
			{"**Total**", "**" + strconv.Itoa(report.TotalIssues()) + "**"},
		},
	})
	md.PlainText("")

	if report.HasIssues() {
		w.writePieChart(md, report)
	}

	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart for severity distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.A11yReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Issue Severity Distribution"),
		piechart.WithShowData(true),
	)

	if report.ErrorCount > 0 {
		chart.LabelAndIntValue("Error", uint64(report.ErrorCount))
	}
	if report.WarningCount > 0 {
		chart.LabelAndIntValue("Warning", uint64(report.WarningCount))
	}
	if report.TipCount > 0 {
		chart.LabelAndIntValue("Tip", uint64(report.TipCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert matching the most severe issue.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.A11yReport) {
	switch {
	case report.ErrorCount > 0:
		md.Cautionf("%d accessibility error(s) must be fixed.", report.ErrorCount)
	case report.WarningCount > 0:
		md.Warningf("%d accessibility warning(s) should be reviewed.", report.WarningCount)
	case report.TipCount > 0:
		md.Note("Only tips were reported.")
	default:
		md.Tip("No accessibility issues detected.")
	}
	md.PlainText("")
}

// writeIssues writes the issue table followed by impact details.
func (w *MarkdownWriter) writeIssues(md *markdown.Markdown, report *model.A11yReport) {
	md.H2("Issues")
	md.PlainText("")

	if !report.HasIssues() {
		md.PlainText("No accessibility issues detected.")
		md.PlainText("")
		return
	}

	// Most severe first; rule order is kept within a severity.
	rows := make([][]string, 0, len(report.Issues))
	for _, severity := range []model.Severity{model.SeverityError, model.SeverityWarning, model.SeverityTip} {
		for _, issue := range report.GetIssuesBySeverity(severity) {
			line := "-"
			if issue.Line > 0 {
				line = strconv.Itoa(issue.Line)
			}
			rows = append(rows, []string{
				issue.SeverityText,
				line,
				escapeCell(issue.Message),
				escapeCell(truncateString(issue.Recommendation, 80)),
			})
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Line", "Message", "Recommendation"},
		Rows:   rows,
	})
	md.PlainText("")

	for _, issue := range report.Issues {
		if issue.Impact != "" {
			md.Details(issue.RuleID, html.EscapeString(issue.Impact))
		}
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [devcheck](https://github.com/nao1215/devcheck)*")
}

// truncateString truncates a string to maxLen runes with ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// escapeCell makes s safe inside a GFM table cell: HTML is shown as text
// and pipes do not end the cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "|", `\|`)
}

// codeSpan wraps s in a code span whose fence is longer than any backtick
// run in s.
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}

	fence := strings.Repeat("`", longest+1)
	if longest > 0 {
		s = " " + s + " "
	}
	return strings.ReplaceAll(fence+s+fence, "|", `\|`)
}
