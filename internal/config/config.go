package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"github.com/nao1215/devcheck/internal/i18n"
	"github.com/nao1215/devcheck/internal/model"
	"github.com/nao1215/devcheck/internal/schema"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "devcheck"

	// DefaultSchemaPath is the Prisma schema checked when no path is given.
	DefaultSchemaPath = schema.DefaultSchemaPath
)

// Check identifies which check a Config drives.
type Check int

const (
	// CheckSchema runs the Prisma schema check.
	CheckSchema Check = iota
	// CheckA11y runs the accessibility scanner.
	CheckA11y
)

// Config holds all configuration options for devcheck.
// It is populated from CLI flags and the optional config file, then passed
// to the checks by value of its fields rather than through global state.
type Config struct {
	// Check selects the check being configured.
	Check Check

	// SchemaPath is the Prisma schema path reported by the schema check.
	// The file itself is never read.
	SchemaPath string

	// Targets is the list of source files to scan for accessibility issues.
	Targets []string

	// Lang selects the message language. Empty means French.
	Lang string

	// DisabledRules lists accessibility rule IDs to skip.
	DisabledRules []string

	// Verbose enables detailed log output using slog.LevelDebug and
	// line-level details in text reports.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the current directory, the home directory
	// and the XDG config directory for .devcheck.
	ConfigFilePath string

	// JSONReport enables JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables GitHub Flavored Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Check:      CheckSchema,
		SchemaPath: DefaultSchemaPath,
		Lang:       i18n.DefaultLanguage.String(),
	}
}

// XDGConfigDir returns the XDG config directory for devcheck.
// On Linux: ~/.config/devcheck
// On macOS: ~/Library/Application Support/devcheck
// On Windows: %APPDATA%\devcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ApplyFile fills the fields the user left unset from a loaded config file.
// Flags always win: an explicit --lang or schema argument is kept, and
// disabled rules from both sources are combined.
func (c *Config) ApplyFile(f *File, langSet, schemaSet bool) {
	if f == nil {
		return
	}
	if !langSet && f.Lang != "" {
		c.Lang = f.Lang
	}
	if !schemaSet && f.Schema != "" {
		c.SchemaPath = f.Schema
	}
	for _, id := range f.A11y.DisabledRules {
		if !slices.Contains(c.DisabledRules, id) {
			c.DisabledRules = append(c.DisabledRules, id)
		}
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Check == CheckA11y && len(c.Targets) == 0 {
		return ErrNoTarget
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if _, err := i18n.ParseLanguage(c.Lang); err != nil {
		return err
	}

	known := model.RuleIDs()
	for _, id := range c.DisabledRules {
		if !slices.Contains(known, id) {
			return fmt.Errorf("%w: %q", ErrUnknownRule, id)
		}
	}

	return nil
}
