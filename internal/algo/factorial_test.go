package algo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/bigo/internal/metrics"
)

func TestFactorial_IterativeMatchesRecursive(t *testing.T) {
	for n := 0; n <= 20; n++ {
		iter, _ := FactorialIterative(n)
		rec, _ := FactorialRecursive(n)
		assert.Equal(t, iter, rec, "n=%d", n)
	}
}

func TestFactorial_KnownValues(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			got, _ := FactorialIterative(tt.n)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFactorialIterative_Stats(t *testing.T) {
	tests := []struct {
		n    int
		want metrics.Stats
	}{
		{0, metrics.Stats{}},
		{1, metrics.Stats{}},
		{2, metrics.Stats{Comparisons: 1, Ops: 1}},
		{20, metrics.Stats{Comparisons: 19, Ops: 19}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			_, stats := FactorialIterative(tt.n)
			assert.Equal(t, tt.want, stats)
		})
	}
}

func TestFactorialRecursive_Stats(t *testing.T) {
	_, stats := FactorialRecursive(20)

	assert.Equal(t, uint64(20), stats.Calls)
	assert.Equal(t, uint64(20), stats.Comparisons)
	assert.Equal(t, uint64(19), stats.Ops)
	assert.Equal(t, uint64(20*metrics.FrameBytes), stats.ExtraSpaceBytes)

	_, base := FactorialRecursive(0)
	assert.Equal(t, metrics.Stats{Comparisons: 1, Calls: 1, ExtraSpaceBytes: metrics.FrameBytes}, base)
}

func TestFactorial_StatsAreCallScoped(t *testing.T) {
	_, first := FactorialRecursive(10)
	_, second := FactorialRecursive(10)

	require.Equal(t, first, second)
	assert.Equal(t, uint64(10), second.Calls)
}

func TestFactorial_OverflowWraps(t *testing.T) {
	// 21! does not fit in 64 bits; the result wraps instead of failing.
	iter, _ := FactorialIterative(21)
	rec, _ := FactorialRecursive(21)

	f20 := uint64(2432902008176640000)
	assert.Equal(t, iter, rec)
	assert.Equal(t, f20*21, iter)
}
