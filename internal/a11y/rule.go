package a11y

import (
	"regexp"
	"strings"

	"github.com/nao1215/devcheck/internal/i18n"
	"github.com/nao1215/devcheck/internal/model"
)

// Rule is a single accessibility check over raw file content.
type Rule interface {
	// ID returns the rule identifier used in reports and configuration.
	ID() string

	// MessageKey returns the i18n key of the message reported on a match.
	MessageKey() string

	// Match reports whether the rule fires on content and the 1-based line
	// of the first match.
	Match(content string) (line int, ok bool)
}

// space matches any Unicode whitespace rune, not only RE2's ASCII \s.
const space = `[\s\v\x1c-\x1f\x{85}\p{Z}]`

// missingAttributeRule fires when an opening tag appears without a required
// attribute on the rest of its line, and the text after the tag name matches
// tail.
type missingAttributeRule struct {
	id   string
	key  string
	open *regexp.Regexp
	attr string
	tail *regexp.Regexp
}

// ID returns the rule identifier.
func (r *missingAttributeRule) ID() string {
	return r.id
}

// MessageKey returns the i18n key of the rule message.
func (r *missingAttributeRule) MessageKey() string {
	return r.key
}

// Match tries every occurrence of the opening tag until one qualifies.
func (r *missingAttributeRule) Match(content string) (int, bool) {
	for _, loc := range r.open.FindAllStringIndex(content, -1) {
		rest := content[loc[1]:]
		if strings.Contains(firstLine(rest), r.attr) {
			continue
		}
		if r.tail.MatchString(rest) {
			return lineAt(content, loc[0]), true
		}
	}
	return 0, false
}

// NewImgMissingAltRule returns the rule for <img> tags without alt=.
func NewImgMissingAltRule() Rule {
	return &missingAttributeRule{
		id:   model.RuleImgMissingAlt,
		key:  i18n.KeyImgMissingAlt,
		open: regexp.MustCompile(`<img`),
		attr: "alt=",
		tail: regexp.MustCompile(`\A.*?>`),
	}
}

// NewIconButtonMissingLabelRule returns the rule for <Button> elements whose
// only child is a self-closing component (an icon) and that carry no
// aria-label=.
func NewIconButtonMissingLabelRule() Rule {
	return &missingAttributeRule{
		id:   model.RuleIconButtonMissingLabel,
		key:  i18n.KeyIconButtonMissingLabel,
		open: regexp.MustCompile(`<Button`),
		attr: "aria-label=",
		tail: regexp.MustCompile(`\A.*?>` + space + `*<[A-Z].*?/>` + space + `*</Button>`),
	}
}

// hoverWithoutTooltipRule fires when the content uses hover: styles and
// never mentions Tooltip.
type hoverWithoutTooltipRule struct{}

// NewHoverWithoutTooltipRule returns the rule for hover: without Tooltip.
func NewHoverWithoutTooltipRule() Rule {
	return hoverWithoutTooltipRule{}
}

// ID returns the rule identifier.
func (hoverWithoutTooltipRule) ID() string {
	return model.RuleHoverWithoutTooltip
}

// MessageKey returns the i18n key of the rule message.
func (hoverWithoutTooltipRule) MessageKey() string {
	return i18n.KeyHoverWithoutTooltip
}

// Match checks for hover: and the absence of Tooltip anywhere in content.
func (hoverWithoutTooltipRule) Match(content string) (int, bool) {
	if strings.Contains(content, "Tooltip") {
		return 0, false
	}
	idx := strings.Index(content, "hover:")
	if idx < 0 {
		return 0, false
	}
	return lineAt(content, idx), true
}

// DefaultRules returns the built-in rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		NewImgMissingAltRule(),
		NewIconButtonMissingLabelRule(),
		NewHoverWithoutTooltipRule(),
	}
}

// firstLine returns s up to, not including, the first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// lineAt returns the 1-based line number of byte offset in content.
func lineAt(content string, offset int) int {
	return strings.Count(content[:offset], "\n") + 1
}
