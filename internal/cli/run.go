package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/bigo/internal/config"
	"github.com/wesleyorama2/bigo/internal/output"
	"github.com/wesleyorama2/bigo/internal/report"
	"github.com/wesleyorama2/bigo/internal/suite"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demonstration suite",
		Long: `Run the demonstration suite, optionally from a configuration file.

Examples:
  bigo run
  bigo run --config suite.yaml
  bigo run --sizes 1000,10000 --patterns best,worst --repeat 5
  bigo run --output report.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSuiteConfig(cmd)
			if err != nil {
				return err
			}
			outputPath, _ := cmd.Flags().GetString("output")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runSuite(cmd, cfg, outputPath, noColor)
		},
	}

	addSuiteFlags(cmd)
	cmd.Flags().Int("repeat", 0, "Timed samples per row (overrides options.repeat)")
	cmd.Flags().Duration("slow-warning", 0, "Warn about rows slower than this (overrides options.slowWarning)")
	cmd.Flags().StringP("output", "o", "", "Write a report (.json or .html)")

	return cmd
}

// addSuiteFlags registers the flags shared by run and plan.
func addSuiteFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Suite configuration file (YAML or JSON)")
	cmd.Flags().IntSlice("sizes", nil, "Array sizes, e.g. 1000,10000 (overrides arrays.sizes)")
	cmd.Flags().StringSlice("patterns", nil, "Input patterns: best, average, worst (overrides arrays.patterns)")
	cmd.Flags().Int64("seed", 0, "Seed for AVERAGE arrays (overrides arrays.seed)")
}

// loadSuiteConfig loads --config (or the defaults) and applies flag
// overrides. The result is validated.
func loadSuiteConfig(cmd *cobra.Command) (*config.SuiteConfig, error) {
	configFile, _ := cmd.Flags().GetString("config")

	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		cfg = loaded
		log.Info().Str("config", configFile).Msg("configuration loaded")
	} else {
		log.Debug().Msg("using built-in configuration")
	}

	flags := cmd.Flags()
	if flags.Changed("sizes") {
		cfg.Arrays.Sizes, _ = flags.GetIntSlice("sizes")
	}
	if flags.Changed("patterns") {
		cfg.Arrays.Patterns, _ = flags.GetStringSlice("patterns")
	}
	if flags.Changed("seed") {
		cfg.Arrays.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("repeat") {
		cfg.Options.Repeat, _ = flags.GetInt("repeat")
	}
	if flags.Changed("slow-warning") {
		d, _ := flags.GetDuration("slow-warning")
		cfg.Options.SlowWarning = config.Duration(d)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runSuite runs cfg, printing rows to the command's stdout, and saves a
// report when outputPath is set.
func runSuite(cmd *cobra.Command, cfg *config.SuiteConfig, outputPath string, noColor bool) error {
	if outputPath != "" {
		if _, err := report.FormatFor(outputPath); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	s, err := suite.New(cfg, suite.Options{
		Writer: out,
		Colors: output.SchemeFor(out, noColor),
		Logger: &log.Logger,
	})
	if err != nil {
		return err
	}

	if err := s.Run(cmd.Context()); err != nil {
		return err
	}

	if outputPath == "" {
		return nil
	}

	r := report.Build(cfg.Name, cfg, s.StartTime(), s.Results())
	if err := report.Write(r, outputPath); err != nil {
		return err
	}
	log.Info().Str("path", outputPath).Int("rows", len(r.Results)).Msg("report written")
	return nil
}
