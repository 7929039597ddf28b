// Package report renders check results.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Plain text, the default terminal output
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for pull request comments
//
// Report data structures live in the model package; this package only
// decides how they look. Writers implement the Writer interface, so they can
// be used interchangeably; New picks one from a Format.
package report
