package model

// Severity represents how strongly an accessibility issue should be acted on.
//
// Severities are ordered: a larger value is more severe. The String() method
// returns the label used in text and JSON output.
type Severity int

const (
	// SeverityTip marks advice that improves the experience but is not a
	// defect. Example: hover-only interactions without a tooltip.
	SeverityTip Severity = iota

	// SeverityWarning marks markup that is likely unusable with assistive
	// technology. Example: an icon-only button without aria-label.
	SeverityWarning

	// SeverityError marks markup that is always wrong.
	// Example: an image without an alt attribute.
	SeverityError
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityTip:
		return "TIP"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Rule identifiers for the built-in accessibility rules.
const (
	// RuleImgMissingAlt flags <img> tags without an alt attribute.
	RuleImgMissingAlt = "img_missing_alt"

	// RuleIconButtonMissingLabel flags icon-only <Button> elements without aria-label.
	RuleIconButtonMissingLabel = "icon_button_missing_label"

	// RuleHoverWithoutTooltip flags hover: styles in a file that never uses Tooltip.
	RuleHoverWithoutTooltip = "hover_without_tooltip"
)

// RuleInfo contains metadata about a rule: its severity, why it matters and
// how to fix it.
type RuleInfo struct {
	Severity       Severity
	Impact         string
	Recommendation string
}

// ruleInfoMapping maps rule IDs to their metadata.
// Severity lives here rather than on the rule so that the report writers and
// the scanner agree on a single table.
var ruleInfoMapping = map[string]RuleInfo{
	RuleImgMissingAlt: {
		Severity:       SeverityError,
		Impact:         "Screen readers announce the image file name or nothing at all, so the image content is lost.",
		Recommendation: `Add an alt attribute describing the image, or alt="" for purely decorative images.`,
	},
	RuleIconButtonMissingLabel: {
		Severity:       SeverityWarning,
		Impact:         "A button that only contains an icon has no accessible name and is announced as \"button\".",
		Recommendation: "Add an aria-label that describes the action performed by the button.",
	},
	RuleHoverWithoutTooltip: {
		Severity:       SeverityTip,
		Impact:         "Hover-only affordances are invisible to keyboard and touch users.",
		Recommendation: "Wrap hover actions in a Tooltip so their purpose is also exposed on focus.",
	},
}

// GetRuleInfo returns the full metadata for a rule ID.
// Returns a default RuleInfo with SeverityTip if the rule is not in the mapping.
func GetRuleInfo(ruleID string) RuleInfo {
	if info, ok := ruleInfoMapping[ruleID]; ok {
		return info
	}
	return RuleInfo{
		Severity:       SeverityTip,
		Impact:         "Unknown rule. Review manually.",
		Recommendation: "Investigate the issue and assess its impact.",
	}
}

// RuleIDs returns the IDs of all known rules in evaluation order.
func RuleIDs() []string {
	return []string{
		RuleImgMissingAlt,
		RuleIconButtonMissingLabel,
		RuleHoverWithoutTooltip,
	}
}
