// Package suite drives the complexity demonstration: factorial, Fibonacci,
// and the array utility sweep, followed by the closing submission notes.
package suite

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wesleyorama2/bigo/internal/algo"
	"github.com/wesleyorama2/bigo/internal/bench"
	"github.com/wesleyorama2/bigo/internal/config"
	"github.com/wesleyorama2/bigo/internal/input"
	"github.com/wesleyorama2/bigo/internal/metrics"
	"github.com/wesleyorama2/bigo/internal/output"
)

// PairSkipReason is printed instead of the quadratic row for large arrays.
const PairSkipReason = "n too large for O(n^2) demo"

// Submission lists what students hand in after running the demonstration.
var Submission = []string{
	"1) For each utility: identify BEST/AVG/WORST input patterns.",
	"2) Classify time complexity (O(1), O(n), O(n^2), etc.) and space complexity.",
	"3) Provide evidence tables: comparisons/time vs n.",
	"4) Explain whether early-break changes Big-O or only constants.",
}

// Options configures a Suite.
type Options struct {
	// Writer receives the console table (default: os.Stdout).
	Writer io.Writer

	// Colors is the color scheme (default: no colors).
	Colors *output.ColorScheme

	// Logger receives lifecycle events (default: the global zerolog logger).
	Logger *zerolog.Logger
}

// Suite runs one demonstration described by a SuiteConfig.
//
// Example usage:
//
//	s, _ := suite.New(config.Default(), suite.Options{})
//	_ = s.Run(context.Background())
//	results := s.Results()
type Suite struct {
	config   *config.SuiteConfig
	patterns []input.Pattern
	gen      input.Generator
	runner   *bench.Runner
	logger   *zerolog.Logger

	startTime time.Time
	endTime   time.Time
}

// New validates cfg and creates a Suite.
func New(cfg *config.SuiteConfig, opts Options) (*Suite, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	patterns, err := cfg.PatternList()
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = &log.Logger
	}

	runner := bench.NewRunner(bench.Options{
		Writer:      opts.Writer,
		Colors:      opts.Colors,
		Repeat:      cfg.Options.Repeat,
		SlowWarning: cfg.Options.SlowWarning.GetDuration(0),
		Logger:      opts.Logger,
	})

	return &Suite{
		config:   cfg,
		patterns: patterns,
		gen:      cfg.Generator(),
		runner:   runner,
		logger:   opts.Logger,
	}, nil
}

// Run executes every part in order. The context is checked between rows;
// a running computation is never interrupted.
func (s *Suite) Run(ctx context.Context) error {
	s.startTime = time.Now()
	defer func() { s.endTime = time.Now() }()

	s.logger.Info().
		Str("suite", s.config.Name).
		Int("repeat", s.config.Options.Repeat).
		Msg("suite started")

	parts := []func(context.Context) error{
		s.runFactorial,
		s.runFibonacci,
		s.runArrays,
	}
	for _, part := range parts {
		if err := part(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("suite stopped")
			return err
		}
	}

	s.runner.Section("What students should submit")
	for _, line := range Submission {
		s.runner.Note(line)
	}

	s.logger.Info().
		Str("suite", s.config.Name).
		Int("rows", len(s.runner.Results())).
		Dur("duration", time.Since(s.startTime)).
		Msg("suite finished")
	return nil
}

// runFactorial is Part A.
func (s *Suite) runFactorial(ctx context.Context) error {
	n := s.config.Factorial.N
	s.runner.Section(fmt.Sprintf("Part A: Factorial (n=%d)", n))

	if err := checkContext(ctx); err != nil {
		return err
	}
	bench.Run(s.runner, bench.Spec{Part: "A", Label: algo.LabelFactorialIterative, N: n},
		func() (uint64, metrics.Stats) { return algo.FactorialIterative(n) })

	if err := checkContext(ctx); err != nil {
		return err
	}
	bench.Run(s.runner, bench.Spec{Part: "A", Label: algo.LabelFactorialRecursive, N: n},
		func() (uint64, metrics.Stats) { return algo.FactorialRecursive(n) })
	return nil
}

// runFibonacci is Part B.
func (s *Suite) runFibonacci(ctx context.Context) error {
	small := s.config.Fibonacci.RecursiveN
	large := s.config.Fibonacci.IterativeN
	s.runner.Section("Part B: Fibonacci")

	if err := checkContext(ctx); err != nil {
		return err
	}
	s.runner.Note(fmt.Sprintf("(1) Recursive naive (n=%d)  [Exponential time]", small))
	bench.Run(s.runner, bench.Spec{Part: "B", Label: algo.LabelFibonacciRecursive, N: small},
		func() (uint64, metrics.Stats) { return algo.FibonacciRecursive(small) })

	if err := checkContext(ctx); err != nil {
		return err
	}
	s.runner.Note(fmt.Sprintf("(2) Iterative (n=%d)  [Linear time]", small))
	bench.Run(s.runner, bench.Spec{Part: "B", Label: algo.LabelFibonacciIterSmall, N: small},
		func() (uint64, metrics.Stats) { return algo.FibonacciIterative(small) })

	if err := checkContext(ctx); err != nil {
		return err
	}
	s.runner.Note(fmt.Sprintf("(3) Iterative (n=%d)  [Linear time]", large))
	bench.Run(s.runner, bench.Spec{Part: "B", Label: algo.LabelFibonacciIterLarge, N: large},
		func() (uint64, metrics.Stats) { return algo.FibonacciIterative(large) })

	s.runner.Blank()
	s.runner.Note("Note: fib_iter can run for much larger n, but unsigned long long overflows.")
	s.runner.Note("      For performance-only tests, you can compute mod M instead.")
	return nil
}

// runArrays is Part C: one section per pattern, one array per size.
func (s *Suite) runArrays(ctx context.Context) error {
	arrays := s.config.Arrays

	for _, pattern := range s.patterns {
		s.runner.Section(fmt.Sprintf("Part C: Array Utilities (%s cases)", pattern))

		for _, n := range arrays.Sizes {
			if err := checkContext(ctx); err != nil {
				return err
			}
			a := s.gen.Generate(n, pattern, arrays.Target, arrays.Threshold)
			group := pattern.String()

			s.runner.Subsection(fmt.Sprintf("n=%d", n))
			s.logger.Debug().
				Str("pattern", group).
				Int("n", n).
				Msg("array generated")

			bench.Run(s.runner, bench.Spec{Part: "C", Group: group, Label: algo.LabelExistsLinear, N: n},
				func() (bool, metrics.Stats) { return algo.ExistsLinear(a, arrays.Target) })

			if err := checkContext(ctx); err != nil {
				return err
			}
			bench.Run(s.runner, bench.Spec{Part: "C", Group: group, Label: algo.LabelFirstAboveLinear, N: n},
				func() (int, metrics.Stats) { return algo.FirstAboveLinear(a, arrays.Threshold) })

			if err := checkContext(ctx); err != nil {
				return err
			}
			bench.Run(s.runner, bench.Spec{Part: "C", Group: group, Label: algo.LabelMaxLinear, N: n},
				func() (int, metrics.Stats) { return algo.MaxLinear(a) })

			if err := checkContext(ctx); err != nil {
				return err
			}
			pairs := bench.Spec{Part: "C", Group: group, Label: algo.LabelCountIncreasingPairs, N: n}
			if n <= arrays.PairSkipAbove {
				bench.Run(s.runner, pairs,
					func() (uint64, metrics.Stats) { return algo.CountIncreasingPairs(a) })
			} else {
				s.runner.Skip(pairs, PairSkipReason)
			}
		}
	}
	return nil
}

// Results returns every row run or skipped so far, in order.
func (s *Suite) Results() []bench.Result {
	return s.runner.Results()
}

// Config returns the effective configuration.
func (s *Suite) Config() *config.SuiteConfig {
	return s.config
}

// StartTime returns when Run began.
func (s *Suite) StartTime() time.Time {
	return s.startTime
}

// Duration returns how long the last Run took.
func (s *Suite) Duration() time.Duration {
	if s.endTime.IsZero() {
		return 0
	}
	return s.endTime.Sub(s.startTime)
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("suite interrupted: %w", err)
	}
	return nil
}
