package input

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/bigo/internal/algo"
)

const (
	testTarget    = 777
	testThreshold = 500
)

var testSizes = []int{1, 2, 10, 1000}

func TestGenerate_Sizes(t *testing.T) {
	gen := NewGenerator()
	for _, p := range AllPatterns() {
		for _, size := range []int{0, 1, 5, 100} {
			a := gen.Generate(size, p, testTarget, testThreshold)
			assert.Len(t, a, size, "%s n=%d", p, size)
			assert.NotNil(t, a)
		}
		assert.Empty(t, gen.Generate(-4, p, testTarget, testThreshold))
	}
}

func TestGenerate_Best(t *testing.T) {
	a := NewGenerator().Generate(5, Best, testTarget, testThreshold)
	assert.Equal(t, []int{testTarget, testThreshold + 1, 0, 0, 0}, a)

	assert.Equal(t, []int{testTarget}, NewGenerator().Generate(1, Best, testTarget, testThreshold))
}

func TestGenerate_Worst(t *testing.T) {
	a := NewGenerator().Generate(4, Worst, testTarget, testThreshold)
	assert.Equal(t, []int{500, 500, 500, 500}, a)

	bumped := NewGenerator().Generate(3, Worst, 42, 42)
	assert.Equal(t, []int{43, 43, 43}, bumped)
}

func TestGenerate_AverageDeterministic(t *testing.T) {
	gen := NewGenerator()

	first := gen.Generate(1000, Average, testTarget, testThreshold)
	second := gen.Generate(1000, Average, testTarget, testThreshold)
	require.Equal(t, first, second)

	for _, v := range first {
		assert.GreaterOrEqual(t, v, DefaultMin)
		assert.LessOrEqual(t, v, DefaultMax)
	}

	// A shorter array is a prefix of the longer one with the same seed.
	assert.Equal(t, first[:10], gen.Generate(10, Average, testTarget, testThreshold))

	other := Generator{Seed: 99, Min: DefaultMin, Max: DefaultMax}
	assert.NotEqual(t, first, other.Generate(1000, Average, testTarget, testThreshold))
}

func TestGenerate_AverageSwappedRange(t *testing.T) {
	gen := Generator{Seed: 1, Min: 10, Max: -10}
	for _, v := range gen.Generate(200, Average, 0, 0) {
		assert.GreaterOrEqual(t, v, -10)
		assert.LessOrEqual(t, v, 10)
	}
}

func TestGenerate_AverageWideRange(t *testing.T) {
	tests := []struct {
		name string
		min  int
		max  int
	}{
		{"wider than int64", -6000000000000000000, 6000000000000000000},
		{"full int range", math.MinInt, math.MaxInt},
		{"widest int63n span", 0, math.MaxInt64 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := Generator{Seed: DefaultSeed, Min: tt.min, Max: tt.max}

			var a []int
			require.NotPanics(t, func() {
				a = gen.Generate(500, Average, testTarget, testThreshold)
			})
			require.Len(t, a, 500)
			for _, v := range a {
				assert.GreaterOrEqual(t, v, tt.min)
				assert.LessOrEqual(t, v, tt.max)
			}
			assert.Equal(t, a, gen.Generate(500, Average, testTarget, testThreshold))
		})
	}
}

func TestExistsLinear_PatternBounds(t *testing.T) {
	gen := NewGenerator()
	for _, size := range testSizes {
		t.Run(fmt.Sprintf("n=%d", size), func(t *testing.T) {
			found, best := algo.ExistsLinear(gen.Generate(size, Best, testTarget, testThreshold), testTarget)
			assert.True(t, found)
			assert.Equal(t, uint64(1), best.Comparisons)

			found, worst := algo.ExistsLinear(gen.Generate(size, Worst, testTarget, testThreshold), testTarget)
			assert.False(t, found)
			assert.Equal(t, uint64(size), worst.Comparisons)
		})
	}
}

func TestFirstAboveLinear_PatternBounds(t *testing.T) {
	gen := NewGenerator()
	for _, size := range testSizes {
		t.Run(fmt.Sprintf("n=%d", size), func(t *testing.T) {
			idx, _ := algo.FirstAboveLinear(gen.Generate(size, Best, testTarget, testThreshold), testThreshold)
			assert.GreaterOrEqual(t, idx, 0)
			assert.LessOrEqual(t, idx, 1)

			idx, worst := algo.FirstAboveLinear(gen.Generate(size, Worst, testTarget, testThreshold), testThreshold)
			assert.Equal(t, -1, idx)
			assert.Equal(t, uint64(size), worst.Comparisons)
		})
	}
}

func TestMaxLinear_ComparisonsIgnorePattern(t *testing.T) {
	gen := NewGenerator()
	for _, p := range AllPatterns() {
		for _, size := range []int{0, 1, 2, 100} {
			_, stats := algo.MaxLinear(gen.Generate(size, p, testTarget, testThreshold))
			want := uint64(0)
			if size > 1 {
				want = uint64(size - 1)
			}
			assert.Equal(t, want, stats.Comparisons, "%s n=%d", p, size)
		}
	}
}
