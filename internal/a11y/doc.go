// Package a11y scans source text for accessibility anti-patterns.
//
// The scanner works on raw text with regular expressions; it does not parse
// HTML or JSX. Three rules are built in and always evaluated in this order:
//
//   - img_missing_alt: an <img> tag without an alt= attribute
//   - icon_button_missing_label: an icon-only <Button> without aria-label=
//   - hover_without_tooltip: hover: styles in a file that never uses Tooltip
//
// Each rule reports at most one issue per file. Patterns never look past the
// end of the line a tag starts on, except for the whitespace between an icon
// button's tags, so an attribute written on a following line is not seen.
//
// # Usage
//
//	engine := a11y.NewEngine(a11y.WithDisabledRules("hover_without_tooltip"))
//	report, err := engine.CheckFile("src/pages/LoginPage.tsx")
//	if err != nil {
//	    return err
//	}
//	for _, msg := range report.Messages() {
//	    fmt.Println(msg)
//	}
package a11y
