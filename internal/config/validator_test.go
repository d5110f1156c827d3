package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SuiteConfig)
		path   string
	}{
		{"negative factorial", func(c *SuiteConfig) { c.Factorial.N = -1 }, "factorial.n"},
		{"negative recursive fibonacci", func(c *SuiteConfig) { c.Fibonacci.RecursiveN = -2 }, "fibonacci.recursiveN"},
		{"recursive fibonacci too large", func(c *SuiteConfig) { c.Fibonacci.RecursiveN = MaxFibonacciRecursiveN + 1 }, "fibonacci.recursiveN"},
		{"negative iterative fibonacci", func(c *SuiteConfig) { c.Fibonacci.IterativeN = -1 }, "fibonacci.iterativeN"},
		{"no sizes", func(c *SuiteConfig) { c.Arrays.Sizes = nil }, "arrays.sizes"},
		{"negative size", func(c *SuiteConfig) { c.Arrays.Sizes = []int{10, -5} }, "arrays.sizes[1]"},
		{"no patterns", func(c *SuiteConfig) { c.Arrays.Patterns = []string{} }, "arrays.patterns"},
		{"bad pattern", func(c *SuiteConfig) { c.Arrays.Patterns = []string{"best", "sorted"} }, "arrays.patterns"},
		{"negative pair limit", func(c *SuiteConfig) { c.Arrays.PairSkipAbove = -1 }, "arrays.pairSkipAbove"},
		{"inverted value range", func(c *SuiteConfig) { c.Arrays.ValueMin, c.Arrays.ValueMax = 10, 1 }, "arrays.valueMin"},
		{"value range too wide", func(c *SuiteConfig) { c.Arrays.ValueMin, c.Arrays.ValueMax = -6000000000000000000, 6000000000000000000 }, "arrays.valueMax"},
		{"zero repeat", func(c *SuiteConfig) { c.Options.Repeat = 0 }, "options.repeat"},
		{"negative slow warning", func(c *SuiteConfig) { c.Options.SlowWarning = -1 }, "options.slowWarning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var errs ValidationErrors
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.path, errs[0].Path)
			assert.Contains(t, err.Error(), "invalid configuration: ")
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Factorial.N = -1
	cfg.Options.Repeat = 0
	cfg.Arrays.Sizes = nil

	err := cfg.Validate()
	require.Error(t, err)

	errs, ok := err.(ValidationErrors)
	require.True(t, ok)
	assert.Len(t, errs, 3)
}

func TestPatternList(t *testing.T) {
	cfg := Default()
	cfg.Arrays.Patterns = []string{"worst", "avg"}

	patterns, err := cfg.PatternList()
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, "WORST", patterns[0].String())
	assert.Equal(t, "AVERAGE", patterns[1].String())
}

func TestValidateWidestAcceptedRange(t *testing.T) {
	cfg := Default()
	cfg.Arrays.ValueMin = 0
	cfg.Arrays.ValueMax = math.MaxInt64 - 1
	assert.NoError(t, cfg.Validate())

	cfg.Arrays.ValueMin = -1
	assert.Error(t, cfg.Validate())
}
