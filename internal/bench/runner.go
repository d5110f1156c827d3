// Package bench times instrumented algorithm calls and renders one console
// row per call.
package bench

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wesleyorama2/bigo/internal/metrics"
	"github.com/wesleyorama2/bigo/internal/output"
)

// Spec identifies a benchmark row.
type Spec struct {
	// Part is the demonstration sweep ("A", "B" or "C").
	Part string

	// Group is an optional grouping within the part, e.g. the input pattern.
	Group string

	// Label is printed in the left column.
	Label string

	// N is the input size or numeric argument.
	N int
}

// Result is the outcome of one Run or Skip.
type Result struct {
	Part    string                 `json:"part"`
	Group   string                 `json:"group,omitempty"`
	Label   string                 `json:"label"`
	N       int                    `json:"n"`
	Elapsed time.Duration          `json:"elapsedNs"`
	Millis  float64                `json:"elapsedMs"`
	Stats   metrics.Stats          `json:"stats"`
	Timing  *metrics.TimingSummary `json:"timing,omitempty"`
	Skipped bool                   `json:"skipped,omitempty"`
	Reason  string                 `json:"reason,omitempty"`
}

// Options configures a Runner.
type Options struct {
	// Writer receives rows and headers (default: os.Stdout).
	Writer io.Writer

	// Colors is the color scheme (default: no colors).
	Colors *output.ColorScheme

	// Repeat is the number of timed samples per row (default: 1).
	Repeat int

	// SlowWarning logs a warning for rows slower than this (0 disables).
	SlowWarning time.Duration

	// Logger receives per-row debug events (default: the global zerolog logger).
	Logger *zerolog.Logger
}

// Runner times computations and writes their rows.
//
// The Runner never resets metrics: every algorithm returns the Stats of its
// own call. A Runner is not safe for concurrent use.
type Runner struct {
	w           io.Writer
	colors      *output.ColorScheme
	repeat      int
	slowWarning time.Duration
	logger      *zerolog.Logger
	results     []Result
	lines       int
}

// NewRunner creates a Runner.
func NewRunner(opts Options) *Runner {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Colors == nil {
		opts.Colors = output.NoColorScheme()
	}
	if opts.Repeat < 1 {
		opts.Repeat = 1
	}
	if opts.Logger == nil {
		opts.Logger = &log.Logger
	}

	return &Runner{
		w:           opts.Writer,
		colors:      opts.Colors,
		repeat:      opts.Repeat,
		slowWarning: opts.SlowWarning,
		logger:      opts.Logger,
	}
}

// Run times fn, writes its row, and records the Result.
//
// With Repeat > 1 fn is invoked Repeat times; the row shows the median and
// the p99 sample, and the Stats of the last invocation.
func Run[T any](r *Runner, spec Spec, fn func() (T, metrics.Stats)) Result {
	res := Result{Part: spec.Part, Group: spec.Group, Label: spec.Label, N: spec.N}

	if r.repeat == 1 {
		res.Elapsed, res.Stats = measure(fn)
	} else {
		timing := metrics.NewTiming()
		for i := 0; i < r.repeat; i++ {
			var d time.Duration
			d, res.Stats = measure(fn)
			timing.Record(d)
		}
		summary := timing.Summary()
		res.Timing = &summary
		res.Elapsed = summary.P50
	}
	res.Millis = output.Millis(res.Elapsed)

	row := output.Row{
		Label:           spec.Label,
		Elapsed:         res.Elapsed,
		Comparisons:     res.Stats.Comparisons,
		Ops:             res.Stats.Ops,
		Calls:           res.Stats.Calls,
		ExtraSpaceBytes: res.Stats.ExtraSpaceBytes,
	}
	if res.Timing != nil {
		row.Suffix = fmt.Sprintf("p99=%s samples=%d",
			output.FormatDurationShort(res.Timing.P99), res.Timing.Samples)
	}
	r.writeln(output.FormatRow(r.colors, row))

	r.logger.Debug().
		Str("part", spec.Part).
		Str("group", spec.Group).
		Str("label", spec.Label).
		Int("n", spec.N).
		Dur("elapsed", res.Elapsed).
		Uint64("comparisons", res.Stats.Comparisons).
		Uint64("ops", res.Stats.Ops).
		Uint64("calls", res.Stats.Calls).
		Msg("benchmark finished")

	if r.slowWarning > 0 && res.Elapsed > r.slowWarning {
		r.logger.Warn().
			Str("label", spec.Label).
			Int("n", spec.N).
			Dur("elapsed", res.Elapsed).
			Dur("limit", r.slowWarning).
			Msg("slow benchmark row")
	}

	r.results = append(r.results, res)
	return res
}

// measure times one invocation and keeps its value alive so the call
// cannot be optimized away.
func measure[T any](fn func() (T, metrics.Stats)) (time.Duration, metrics.Stats) {
	start := time.Now()
	value, stats := fn()
	elapsed := time.Since(start)
	runtime.KeepAlive(value)
	return elapsed, stats
}

// Skip writes a skip notice instead of a row. Nothing is invoked.
func (r *Runner) Skip(spec Spec, reason string) Result {
	res := Result{
		Part:    spec.Part,
		Group:   spec.Group,
		Label:   spec.Label,
		N:       spec.N,
		Skipped: true,
		Reason:  reason,
	}
	r.writeln(output.FormatSkip(r.colors, spec.Label, reason))

	r.logger.Debug().
		Str("label", spec.Label).
		Int("n", spec.N).
		Str("reason", reason).
		Msg("benchmark skipped")

	r.results = append(r.results, res)
	return res
}

// Section writes a top-level header preceded by a blank line unless it is
// the first output.
func (r *Runner) Section(title string) {
	if r.lines > 0 {
		r.writeln("")
	}
	r.writeln(output.FormatSection(r.colors, title))
}

// Subsection writes a group header preceded by a blank line.
func (r *Runner) Subsection(title string) {
	r.writeln("")
	r.writeln(output.FormatSubsection(r.colors, title))
}

// Note writes free text.
func (r *Runner) Note(text string) {
	r.writeln(output.FormatNote(r.colors, text))
}

// Blank writes an empty line.
func (r *Runner) Blank() {
	r.writeln("")
}

// Results returns every result recorded so far, in order.
func (r *Runner) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

func (r *Runner) writeln(s string) {
	fmt.Fprintln(r.w, s)
	r.lines++
}
