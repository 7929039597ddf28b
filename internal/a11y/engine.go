package a11y

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nao1215/devcheck/internal/i18n"
	"github.com/nao1215/devcheck/internal/model"
	"golang.org/x/crypto/sha3"
	"golang.org/x/text/message"
)

// Engine runs the registered rules over file content.
type Engine struct {
	// rules contains the enabled rules in evaluation order.
	rules []Rule

	// printer localizes rule messages.
	printer *message.Printer

	// logger is used for debug output during scans.
	logger *slog.Logger

	// disabled holds rule IDs that must not run.
	disabled map[string]bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithPrinter sets the printer used to localize messages.
func WithPrinter(p *message.Printer) Option {
	return func(e *Engine) {
		e.printer = p
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithDisabledRules turns off the rules with the given IDs.
// Unknown IDs are ignored; config.Validate rejects them before we get here.
func WithDisabledRules(ids ...string) Option {
	return func(e *Engine) {
		for _, id := range ids {
			e.disabled[id] = true
		}
	}
}

// WithRules replaces the default rule set.
func WithRules(rules ...Rule) Option {
	return func(e *Engine) {
		e.rules = rules
	}
}

// NewEngine creates an Engine with the default rules.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rules:    DefaultRules(),
		disabled: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.printer == nil {
		e.printer = i18n.DefaultPrinter()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	enabled := make([]Rule, 0, len(e.rules))
	for _, r := range e.rules {
		if !e.disabled[r.ID()] {
			enabled = append(enabled, r)
		}
	}
	e.rules = enabled

	return e
}

// RuleIDs returns the IDs of the enabled rules in evaluation order.
func (e *Engine) RuleIDs() []string {
	ids := make([]string, len(e.rules))
	for i, r := range e.rules {
		ids[i] = r.ID()
	}
	return ids
}

// Check runs every enabled rule against content.
// The result is empty, not nil, when nothing matches.
func (e *Engine) Check(content string) []model.Issue {
	issues := make([]model.Issue, 0)
	for _, r := range e.rules {
		line, ok := r.Match(content)
		if !ok {
			e.logger.Debug("rule passed", "rule", r.ID())
			continue
		}
		e.logger.Debug("rule matched", "rule", r.ID(), "line", line)
		issues = append(issues, model.NewIssue(r.ID(), e.printer.Sprintf(r.MessageKey()), line))
	}
	return issues
}

// CheckFile reads path and checks its content.
// Read errors wrap the underlying error, so errors.Is(err, fs.ErrNotExist)
// works for missing files.
func (e *Engine) CheckFile(path string) (*model.A11yReport, error) {
	data, err := os.ReadFile(path) //nolint:gosec // scanning user-supplied paths is the point
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	e.logger.Debug("scanning file", "path", path, "bytes", len(data))

	return model.NewA11yReport(path, Digest(data), e.Check(normalizeNewlines(string(data)))), nil
}

// normalizeNewlines turns CRLF and lone CR line endings into LF, so "."
// and line numbers treat every line ending alike.
func normalizeNewlines(s string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)
}

// Digest returns the hex SHA3-256 of data.
func Digest(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// CheckAccessibility scans path with the default rules and French messages
// and returns the messages in rule order.
func CheckAccessibility(path string) ([]string, error) {
	report, err := NewEngine().CheckFile(path)
	if err != nil {
		return nil, err
	}
	return report.Messages(), nil
}
