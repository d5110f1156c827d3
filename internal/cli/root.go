package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/bigo/internal/config"
	"github.com/wesleyorama2/bigo/internal/output"
)

var version = "0.1.0"

// NewRootCmd builds the command tree. Without a subcommand it runs the
// classic demonstration with built-in defaults.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "bigo",
		Short:   "Measure complexity classes with instrumented algorithms",
		Version: version,
		Long: `bigo runs small instrumented algorithms (factorial, Fibonacci, linear
scans and a quadratic pair count) over growing inputs and prints one row
per run with elapsed time, comparisons, operations, recursive calls and
an estimate of extra stack space.

Run with no arguments for the classic demonstration, or use "bigo run"
with a suite file to change sizes, patterns and repetitions.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runSuite(cmd, config.Default(), "", noColor)
		},
	}

	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "Log format (console, json)")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")

	root.AddCommand(newRunCmd())
	root.AddCommand(newPlanCmd())
	root.AddCommand(newInspectCmd())

	return root
}

// Execute runs the command tree until it finishes or the process is
// interrupted. This is called by main.main().
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		errColor := output.SchemeFor(os.Stderr, false).Error
		fmt.Fprintln(os.Stderr, errColor.Sprintf("Error: %v", err))
		return err
	}
	return nil
}
