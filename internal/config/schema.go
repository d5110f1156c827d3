// Package config provides loading and validation of suite configuration.
package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/bigo/internal/input"
)

// MaxFibonacciRecursiveN bounds the naive recursive Fibonacci argument.
// F(50) already needs about 4e10 calls.
const MaxFibonacciRecursiveN = 50

// SuiteConfig is the root configuration of a demonstration run.
//
// Example YAML:
//
//	name: "Week 1 lab"
//	factorial:
//	  n: 20
//	fibonacci:
//	  recursiveN: 35
//	  iterativeN: 100000
//	arrays:
//	  sizes: [1000, 10000]
//	  patterns: [best, worst]
//	  target: 777
//	  threshold: 500
//	  pairSkipAbove: 10000
//	options:
//	  repeat: 5
//	  slowWarning: 2s
type SuiteConfig struct {
	// Name of the run (for reports)
	Name string `json:"name" yaml:"name"`

	// Factorial configures Part A
	Factorial FactorialConfig `json:"factorial" yaml:"factorial"`

	// Fibonacci configures Part B
	Fibonacci FibonacciConfig `json:"fibonacci" yaml:"fibonacci"`

	// Arrays configures Part C
	Arrays ArraysConfig `json:"arrays" yaml:"arrays"`

	// Options for execution
	Options Options `json:"options" yaml:"options"`
}

// FactorialConfig configures the factorial comparison.
type FactorialConfig struct {
	// N is the factorial argument; values above 20 overflow uint64
	N int `json:"n" yaml:"n"`
}

// FibonacciConfig configures the Fibonacci comparison.
type FibonacciConfig struct {
	// RecursiveN is used for the naive recursion and the matching iterative run
	RecursiveN int `json:"recursiveN" yaml:"recursiveN"`

	// IterativeN is the larger argument for the iterative-only run
	IterativeN int `json:"iterativeN" yaml:"iterativeN"`
}

// ArraysConfig configures the array utility sweep.
type ArraysConfig struct {
	// Sizes are the array lengths, in sweep order
	Sizes []int `json:"sizes" yaml:"sizes"`

	// Patterns are the input shapes, in sweep order ("best", "average", "worst")
	Patterns []string `json:"patterns" yaml:"patterns"`

	// Target is the value searched for by exists_linear
	Target int `json:"target" yaml:"target"`

	// Threshold is the bound used by firstAbove_linear
	Threshold int `json:"threshold" yaml:"threshold"`

	// PairSkipAbove skips the quadratic pair count for larger sizes
	PairSkipAbove int `json:"pairSkipAbove" yaml:"pairSkipAbove"`

	// Seed seeds AVERAGE arrays
	Seed int64 `json:"seed" yaml:"seed"`

	// ValueMin and ValueMax bound AVERAGE values (inclusive)
	ValueMin int `json:"valueMin" yaml:"valueMin"`
	ValueMax int `json:"valueMax" yaml:"valueMax"`
}

// Options controls execution behavior.
type Options struct {
	// Repeat is the number of timed samples per row
	Repeat int `json:"repeat" yaml:"repeat"`

	// SlowWarning logs a warning for rows slower than this (0 disables)
	SlowWarning Duration `json:"slowWarning,omitempty" yaml:"slowWarning,omitempty"`
}

// Default returns the configuration of the classic demonstration.
func Default() *SuiteConfig {
	return &SuiteConfig{
		Name:      "Complexity classes",
		Factorial: FactorialConfig{N: 20},
		Fibonacci: FibonacciConfig{
			RecursiveN: 40,
			IterativeN: 100000,
		},
		Arrays: ArraysConfig{
			Sizes:         []int{1000, 10000, 100000},
			Patterns:      []string{"best", "average", "worst"},
			Target:        777,
			Threshold:     500,
			PairSkipAbove: 10000,
			Seed:          input.DefaultSeed,
			ValueMin:      input.DefaultMin,
			ValueMax:      input.DefaultMax,
		},
		Options: Options{Repeat: 1},
	}
}

// PatternList parses Arrays.Patterns.
func (c *SuiteConfig) PatternList() ([]input.Pattern, error) {
	patterns := make([]input.Pattern, 0, len(c.Arrays.Patterns))
	for i, s := range c.Arrays.Patterns {
		p, err := input.ParsePattern(s)
		if err != nil {
			return nil, fmt.Errorf("arrays.patterns[%d]: %w", i, err)
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// Generator returns the input generator described by Arrays.
func (c *SuiteConfig) Generator() input.Generator {
	return input.Generator{
		Seed: c.Arrays.Seed,
		Min:  c.Arrays.ValueMin,
		Max:  c.Arrays.ValueMax,
	}
}

// Duration is the row-time limit of options.slowWarning. It is written as
// a Go duration ("2s", "750ms") or as whole seconds (30 or "30").
type Duration time.Duration

// GetDuration returns d, or fallback when no limit is set.
func (d Duration) GetDuration(fallback time.Duration) time.Duration {
	if d == 0 {
		return fallback
	}
	return time.Duration(d)
}

// MarshalJSON writes the limit in Go duration syntax.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON accepts a quoted duration or a bare number of seconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		s = ""
	}
	return d.set(s)
}

// MarshalYAML writes the limit in Go duration syntax.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML accepts any scalar; integers are read as seconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: slowWarning must be a duration", value.Line)
	}
	if value.Tag == "!!null" {
		return d.set("")
	}
	return d.set(value.Value)
}

func (d *Duration) set(s string) error {
	dur, err := ParseDurationString(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}
