package model

// Issue is a single accessibility rule hit.
type Issue struct {
	// RuleID identifies the rule that produced the issue.
	// This maps to the ruleInfoMapping in severity.go.
	RuleID string `json:"rule_id"`

	// Severity is the issue level.
	Severity Severity `json:"severity"`

	// SeverityText is the human-readable severity.
	SeverityText string `json:"severity_text"`

	// Message is the localized message shown to the user.
	Message string `json:"message"`

	// Line is the 1-based line where the first match starts.
	// Zero means the position is unknown.
	Line int `json:"line,omitempty"`

	// Impact explains why the issue matters.
	Impact string `json:"impact,omitempty"`

	// Recommendation tells the user how to fix the issue.
	Recommendation string `json:"recommendation,omitempty"`
}

// NewIssue creates an Issue for the given rule, filling severity, impact
// and recommendation from the rule table.
func NewIssue(ruleID, message string, line int) Issue {
	info := GetRuleInfo(ruleID)
	return Issue{
		RuleID:         ruleID,
		Severity:       info.Severity,
		SeverityText:   info.Severity.String(),
		Message:        message,
		Line:           line,
		Impact:         info.Impact,
		Recommendation: info.Recommendation,
	}
}
