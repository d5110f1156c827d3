package metrics

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// TimingConfig contains configuration for a Timing histogram.
type TimingConfig struct {
	// Min is the minimum recordable value in nanoseconds (default: 1)
	Min int64

	// Max is the maximum recordable value in nanoseconds (default: 10 minutes)
	Max int64

	// SigFigs is the number of significant figures (default: 3)
	SigFigs int
}

// DefaultTimingConfig returns the default configuration.
func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		Min:     1,
		Max:     int64(10 * time.Minute),
		SigFigs: 3,
	}
}

// Timing collects elapsed-time samples of one benchmark row.
//
// Timing is not safe for concurrent use; the runner records samples
// sequentially.
type Timing struct {
	hist   *hdrhistogram.Histogram
	config TimingConfig
}

// TimingSummary is a snapshot of a Timing histogram.
type TimingSummary struct {
	Samples int64         `json:"samples"`
	Min     time.Duration `json:"min"`
	Mean    time.Duration `json:"mean"`
	P50     time.Duration `json:"p50"`
	P99     time.Duration `json:"p99"`
	Max     time.Duration `json:"max"`
}

// NewTiming creates a Timing with the default configuration.
func NewTiming() *Timing {
	return NewTimingWithConfig(DefaultTimingConfig())
}

// NewTimingWithConfig creates a Timing with a custom configuration.
func NewTimingWithConfig(config TimingConfig) *Timing {
	return &Timing{
		hist:   hdrhistogram.New(config.Min, config.Max, config.SigFigs),
		config: config,
	}
}

// Record adds one elapsed-time sample, clamped to the configured range.
func (t *Timing) Record(d time.Duration) {
	ns := d.Nanoseconds()
	if ns < t.config.Min {
		ns = t.config.Min
	}
	if ns > t.config.Max {
		ns = t.config.Max
	}
	// RecordValue only fails for out-of-range values, which were clamped above.
	_ = t.hist.RecordValue(ns)
}

// Count returns the number of recorded samples.
func (t *Timing) Count() int64 {
	return t.hist.TotalCount()
}

// Summary returns the current distribution.
func (t *Timing) Summary() TimingSummary {
	if t.hist.TotalCount() == 0 {
		return TimingSummary{}
	}
	return TimingSummary{
		Samples: t.hist.TotalCount(),
		Min:     time.Duration(t.hist.Min()),
		Mean:    time.Duration(t.hist.Mean()),
		P50:     time.Duration(t.hist.ValueAtQuantile(50)),
		P99:     time.Duration(t.hist.ValueAtQuantile(99)),
		Max:     time.Duration(t.hist.Max()),
	}
}

// Reset discards all samples.
func (t *Timing) Reset() {
	t.hist.Reset()
}
