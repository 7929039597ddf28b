package config

import (
	"errors"

	"github.com/nao1215/devcheck/internal/i18n"
)

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use
// errors.Is() for programmatic error handling.
var (
	// ErrNoTarget is returned when the accessibility check has no file to scan.
	ErrNoTarget = errors.New("no target specified: provide at least one file to check")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnsupportedLanguage is returned when --lang or the lang key names a
	// language without a message catalog.
	ErrUnsupportedLanguage = i18n.ErrUnsupportedLanguage

	// ErrUnknownRule is returned when a disabled rule ID does not name a
	// built-in accessibility rule.
	ErrUnknownRule = errors.New("unknown accessibility rule")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
