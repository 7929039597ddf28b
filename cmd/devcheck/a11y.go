package main

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/devcheck/internal/a11y"
	"github.com/nao1215/devcheck/internal/config"
	"github.com/nao1215/devcheck/internal/i18n"
	"github.com/nao1215/devcheck/internal/report"
	"github.com/spf13/cobra"
)

// NewA11yCmd creates the a11y command.
func NewA11yCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "a11y <file>...",
		Short: "Scan component files for accessibility issues",
		Long: `A11y scans React/TSX source files for common accessibility problems:

- img_missing_alt            <img> tag without an alt attribute (error)
- icon_button_missing_label  icon-only <Button> without aria-label (warning)
- hover_without_tooltip      hover: styles without a Tooltip (tip)

The scan works on raw text with regular expressions, one line at a time for
attributes. Files are checked in the order given.

Examples:
  # Check one component
  devcheck a11y src/pages/ExpenseListPage.tsx

  # Check several components and show line numbers
  devcheck -v a11y src/components/*.tsx

  # Skip the tooltip hint
  devcheck a11y --disable hover_without_tooltip src/App.tsx

  # Write a Markdown report for a pull request comment
  devcheck a11y -m -o a11y.md src/App.tsx`,
		Args: cobra.ArbitraryArgs,
		RunE: runA11yCmd,
	}

	addReportFlags(cmd)
	cmd.Flags().StringSliceP("disable", "d", nil,
		"Rule IDs to skip (repeatable or comma separated)")

	return cmd
}

// runA11yCmd executes the a11y command.
func runA11yCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, config.CheckA11y, args)
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

	engine := a11y.NewEngine(
		a11y.WithPrinter(printer),
		a11y.WithLogger(logger),
		a11y.WithDisabledRules(cfg.DisabledRules...),
	)
	logger.Debug("accessibility rules enabled", "rules", engine.RuleIDs())

	return withReportWriter(cmd, cfg, func(w report.Writer) error {
		for _, target := range cfg.Targets {
			a11yReport, err := engine.CheckFile(target)
			if err != nil {
				return err
			}
			if _, err := w.WriteA11y(a11yReport); err != nil {
				return err
			}
		}
		return nil
	})
}
