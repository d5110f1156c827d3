package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiming_Empty(t *testing.T) {
	timing := NewTiming()

	assert.Equal(t, int64(0), timing.Count())
	assert.Equal(t, TimingSummary{}, timing.Summary())
}

func TestTiming_Summary(t *testing.T) {
	timing := NewTiming()

	for i := 1; i <= 100; i++ {
		timing.Record(time.Duration(i) * time.Millisecond)
	}

	s := timing.Summary()
	require.Equal(t, int64(100), s.Samples)

	// HDR histogram buckets values to 3 significant figures.
	assert.InDelta(t, float64(time.Millisecond), float64(s.Min), float64(10*time.Microsecond))
	assert.InDelta(t, float64(100*time.Millisecond), float64(s.Max), float64(200*time.Microsecond))
	assert.InDelta(t, float64(50*time.Millisecond), float64(s.P50), float64(time.Millisecond))
	assert.InDelta(t, float64(99*time.Millisecond), float64(s.P99), float64(time.Millisecond))
	assert.InDelta(t, float64(50500*time.Microsecond), float64(s.Mean), float64(time.Millisecond))
}

func TestTiming_ClampsOutOfRange(t *testing.T) {
	timing := NewTimingWithConfig(TimingConfig{Min: 1, Max: int64(time.Second), SigFigs: 3})

	timing.Record(0)
	timing.Record(time.Hour)

	s := timing.Summary()
	assert.Equal(t, int64(2), s.Samples)
	assert.LessOrEqual(t, s.Max, time.Second+time.Second/100)
}

func TestTiming_Reset(t *testing.T) {
	timing := NewTiming()
	timing.Record(time.Millisecond)

	timing.Reset()

	assert.Equal(t, int64(0), timing.Count())
}
