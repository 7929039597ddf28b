package schema

import (
	"log/slog"

	"github.com/nao1215/devcheck/internal/i18n"
	"github.com/nao1215/devcheck/internal/model"
	"golang.org/x/text/message"
)

// DefaultSchemaPath is the schema location used when none is given.
const DefaultSchemaPath = "server/prisma/schema.prisma"

// definition ties a check label to its status message key.
type definition struct {
	name string
	key  string
}

// definitions lists the checks in print order.
var definitions = []definition{
	{name: "Relations", key: i18n.KeySchemaRelations},
	{name: "Enums", key: i18n.KeySchemaEnums},
	{name: "Constraints", key: i18n.KeySchemaConstraints},
}

// Checker produces schema reports.
type Checker struct {
	printer *message.Printer
	logger  *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithPrinter sets the printer used to localize status lines.
func WithPrinter(p *message.Printer) Option {
	return func(c *Checker) {
		c.printer = p
	}
}

// WithLogger sets a custom logger for the checker.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// NewChecker creates a Checker. Without options it prints French status
// lines and logs to slog.Default().
func NewChecker(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	if c.printer == nil {
		c.printer = i18n.DefaultPrinter()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Checks returns the fixed check results in print order.
func (c *Checker) Checks() []model.SchemaCheck {
	checks := make([]model.SchemaCheck, 0, len(definitions))
	for _, d := range definitions {
		checks = append(checks, model.SchemaCheck{
			Name:   d.name,
			Status: c.printer.Sprintf(d.key),
		})
	}
	return checks
}

// CheckIntegrity builds the report for schemaPath.
// An empty path is replaced by DefaultSchemaPath. The file is not opened,
// so the result is the same whether or not it exists.
func (c *Checker) CheckIntegrity(schemaPath string) *model.SchemaReport {
	if schemaPath == "" {
		schemaPath = DefaultSchemaPath
	}

	c.logger.Debug("checking schema integrity", "path", schemaPath)

	return model.NewSchemaReport(schemaPath, c.Checks())
}

// CheckIntegrity runs the check with default settings.
func CheckIntegrity(schemaPath string) *model.SchemaReport {
	return NewChecker().CheckIntegrity(schemaPath)
}
