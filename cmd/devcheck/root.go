package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for devcheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devcheck",
		Short: "Code-quality checks for Prisma schemas and React components",
		Long: `devcheck runs the project's code-quality checks.

The schema command reports the integrity of a Prisma schema.
The a11y command scans component source files for common accessibility
problems: images without alt text, icon-only buttons without aria-label
and hover interactions without a Tooltip.

Messages are printed in French by default. Use --lang en for English.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewA11yCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
