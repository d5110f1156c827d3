package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/bigo/internal/output"
)

// setupLogging points the global logger at the command's stderr using the
// --log-level and --log-format flags.
func setupLogging(cmd *cobra.Command) error {
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")

	logger, err := newLogger(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return err
	}
	if strings.EqualFold(format, "json") {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	}
	log.Logger = logger
	return nil
}

// newLogger builds a zerolog logger writing to w. Console output uses a
// short clock. It does not touch zerolog's package-level settings.
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	switch strings.ToLower(format) {
	case "json":
		logger = zerolog.New(w)
	case "", "console":
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    !output.IsTerminal(w),
		})
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q (want console or json)", format)
	}

	return logger.Level(lvl).With().Timestamp().Logger(), nil
}
