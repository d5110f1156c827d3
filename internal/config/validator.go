package config

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors collects every problem found by Validate.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("invalid configuration: ")
	for i, err := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate checks the configuration and returns ValidationErrors, or nil
// when it is usable.
func (c *SuiteConfig) Validate() error {
	var errors ValidationErrors

	if c.Factorial.N < 0 {
		errors = append(errors, ValidationError{
			Path:    "factorial.n",
			Message: fmt.Sprintf("must be non-negative, got %d", c.Factorial.N),
		})
	}

	if c.Fibonacci.RecursiveN < 0 {
		errors = append(errors, ValidationError{
			Path:    "fibonacci.recursiveN",
			Message: fmt.Sprintf("must be non-negative, got %d", c.Fibonacci.RecursiveN),
		})
	} else if c.Fibonacci.RecursiveN > MaxFibonacciRecursiveN {
		errors = append(errors, ValidationError{
			Path:    "fibonacci.recursiveN",
			Message: fmt.Sprintf("must be at most %d, got %d", MaxFibonacciRecursiveN, c.Fibonacci.RecursiveN),
		})
	}

	if c.Fibonacci.IterativeN < 0 {
		errors = append(errors, ValidationError{
			Path:    "fibonacci.iterativeN",
			Message: fmt.Sprintf("must be non-negative, got %d", c.Fibonacci.IterativeN),
		})
	}

	if len(c.Arrays.Sizes) == 0 {
		errors = append(errors, ValidationError{
			Path:    "arrays.sizes",
			Message: "at least one size is required",
		})
	}
	for i, size := range c.Arrays.Sizes {
		if size < 0 {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("arrays.sizes[%d]", i),
				Message: fmt.Sprintf("must be non-negative, got %d", size),
			})
		}
	}

	if len(c.Arrays.Patterns) == 0 {
		errors = append(errors, ValidationError{
			Path:    "arrays.patterns",
			Message: "at least one pattern is required",
		})
	}
	if _, err := c.PatternList(); err != nil {
		errors = append(errors, ValidationError{
			Path:    "arrays.patterns",
			Message: err.Error(),
		})
	}

	if c.Arrays.PairSkipAbove < 0 {
		errors = append(errors, ValidationError{
			Path:    "arrays.pairSkipAbove",
			Message: fmt.Sprintf("must be non-negative, got %d", c.Arrays.PairSkipAbove),
		})
	}

	if c.Arrays.ValueMin > c.Arrays.ValueMax {
		errors = append(errors, ValidationError{
			Path:    "arrays.valueMin",
			Message: fmt.Sprintf("must not exceed valueMax (%d > %d)", c.Arrays.ValueMin, c.Arrays.ValueMax),
		})
	} else if uint64(c.Arrays.ValueMax)-uint64(c.Arrays.ValueMin) >= math.MaxInt64 {
		errors = append(errors, ValidationError{
			Path:    "arrays.valueMax",
			Message: fmt.Sprintf("range [%d, %d] is too wide", c.Arrays.ValueMin, c.Arrays.ValueMax),
		})
	}

	if c.Options.Repeat < 1 {
		errors = append(errors, ValidationError{
			Path:    "options.repeat",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Options.Repeat),
		})
	}

	if c.Options.SlowWarning < 0 {
		errors = append(errors, ValidationError{
			Path:    "options.slowWarning",
			Message: "must not be negative",
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
