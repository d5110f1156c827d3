// Package output renders benchmark rows, section headers and notes for the
// console.
package output

import (
	"fmt"
	"strings"
	"time"
)

// LabelWidth is the width of the left-aligned label column.
const LabelWidth = 28

// Row is one rendered benchmark result.
type Row struct {
	Label           string
	Elapsed         time.Duration
	Comparisons     uint64
	Ops             uint64
	Calls           uint64
	ExtraSpaceBytes uint64

	// Suffix is appended after the counters (e.g. a tail latency).
	Suffix string
}

// Millis converts a duration to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// FormatRow renders a result row:
//
//	exists_linear                time(ms)=0.0012     comps=1            ops=0            calls=0            extra_space(B)~0
func FormatRow(s *ColorScheme, r Row) string {
	var b strings.Builder

	b.WriteString(s.Label.Sprint(pad(r.Label, LabelWidth)))
	b.WriteString(" time(ms)=")
	b.WriteString(s.Time.Sprint(pad(fmt.Sprintf("%.4f", Millis(r.Elapsed)), 10)))
	b.WriteString(" comps=")
	b.WriteString(s.Counter.Sprint(pad(fmt.Sprintf("%d", r.Comparisons), 12)))
	b.WriteString(" ops=")
	b.WriteString(s.Counter.Sprint(pad(fmt.Sprintf("%d", r.Ops), 12)))
	b.WriteString(" calls=")
	b.WriteString(s.Counter.Sprint(pad(fmt.Sprintf("%d", r.Calls), 12)))
	b.WriteString(" extra_space(B)~")
	b.WriteString(s.Space.Sprint(fmt.Sprintf("%d", r.ExtraSpaceBytes)))

	if r.Suffix != "" {
		b.WriteString(" ")
		b.WriteString(r.Suffix)
	}

	return b.String()
}

// FormatSkip renders the notice printed instead of a row.
func FormatSkip(s *ColorScheme, label, reason string) string {
	return s.Label.Sprint(pad(label, LabelWidth)) + " " + s.Skip.Sprintf("skipped (%s)", reason)
}

// FormatSection renders a top-level header such as "==== Part A ... ====".
func FormatSection(s *ColorScheme, title string) string {
	return s.Section.Sprintf("==== %s ====", title)
}

// FormatSubsection renders a group header such as "-- n=1000 --".
func FormatSubsection(s *ColorScheme, title string) string {
	return s.Subsection.Sprintf("-- %s --", title)
}

// FormatNote renders free text printed between rows.
func FormatNote(s *ColorScheme, text string) string {
	return s.Note.Sprint(text)
}

// FormatDurationShort formats a duration in a short format.
func FormatDurationShort(d time.Duration) string {
	if d <= 0 {
		return "0ns"
	}
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1e3)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", Millis(d))
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm", d.Minutes())
}

// pad left-aligns s in a field of width runes.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
