package main

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/devcheck/internal/config"
	"github.com/nao1215/devcheck/internal/i18n"
	"github.com/nao1215/devcheck/internal/report"
	"github.com/nao1215/devcheck/internal/schema"
	"github.com/spf13/cobra"
)

// NewSchemaCmd creates the schema command.
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [schema-path]",
		Short: "Check the integrity of a Prisma schema",
		Long: `Schema reports the integrity of a Prisma schema: 1:n relations,
enum states and price constraints.

When no path is given, server/prisma/schema.prisma is used (or the "schema"
key of the configuration file).

Examples:
  # Check the default schema
  devcheck schema

  # Check a specific schema
  devcheck schema db/schema.prisma

  # English output as Markdown
  devcheck schema --lang en --markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSchemaCmd,
	}

	addReportFlags(cmd)

	return cmd
}

// runSchemaCmd executes the schema command.
func runSchemaCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, config.CheckSchema, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	printer, err := i18n.NewPrinter(cfg.Lang)
	if err != nil {
		return err
	}

	checker := schema.NewChecker(
		schema.WithPrinter(printer),
		schema.WithLogger(logger),
	)
	schemaReport := checker.CheckIntegrity(cfg.SchemaPath)

	return withReportWriter(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteSchema(schemaReport)
		return err
	})
}
