package model

import "time"

// A11yReport is the result of scanning one source file for accessibility
// anti-patterns.
type A11yReport struct {
	// File is the scanned file path as given by the caller.
	File string `json:"file"`

	// Digest is the hex SHA3-256 of the scanned bytes.
	Digest string `json:"digest,omitempty"`

	// DateScanned is when the scan was performed.
	DateScanned time.Time `json:"date_scanned"`

	// === Severity Summary ===

	// ErrorCount is the number of ERROR issues.
	ErrorCount int `json:"error_count"`

	// WarningCount is the number of WARNING issues.
	WarningCount int `json:"warning_count"`

	// TipCount is the number of TIP issues.
	TipCount int `json:"tip_count"`

	// Issues contains the issues in rule evaluation order.
	Issues []Issue `json:"issues"`
}

// NewA11yReport creates a report for the given file and issues.
// Issues keep the order they are given in.
func NewA11yReport(file, digest string, issues []Issue) *A11yReport {
	if issues == nil {
		issues = []Issue{}
	}
	report := &A11yReport{
		File:        file,
		Digest:      digest,
		DateScanned: time.Now(),
		Issues:      issues,
	}
	report.countBySeverity()
	return report
}

// countBySeverity counts issues by severity level.
func (r *A11yReport) countBySeverity() {
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityError:
			r.ErrorCount++
		case SeverityWarning:
			r.WarningCount++
		case SeverityTip:
			r.TipCount++
		}
	}
}

// Messages returns the issue messages in order.
func (r *A11yReport) Messages() []string {
	messages := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		messages = append(messages, issue.Message)
	}
	return messages
}

// TotalIssues returns the total number of issues.
func (r *A11yReport) TotalIssues() int {
	return len(r.Issues)
}

// HasIssues returns true if there are any issues.
func (r *A11yReport) HasIssues() bool {
	return len(r.Issues) > 0
}

// GetIssuesBySeverity returns issues filtered by severity.
func (r *A11yReport) GetIssuesBySeverity(severity Severity) []Issue {
	var result []Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			result = append(result, issue)
		}
	}
	return result
}
