// Package input generates the arrays used by the array-utility sweeps.
package input

import (
	"fmt"
	"strings"
)

// Pattern selects the shape of a generated array.
type Pattern int

const (
	// Best puts the search target at index 0 and a value above the
	// threshold at index 1.
	Best Pattern = iota

	// Average fills the array with seeded uniform random values.
	Average

	// Worst guarantees the target is absent and nothing exceeds the threshold.
	Worst
)

// AllPatterns returns every pattern in sweep order.
func AllPatterns() []Pattern {
	return []Pattern{Best, Average, Worst}
}

// String returns the upper-case pattern name used in section headers.
func (p Pattern) String() string {
	switch p {
	case Best:
		return "BEST"
	case Average:
		return "AVERAGE"
	case Worst:
		return "WORST"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// ParsePattern parses a case-insensitive pattern name. "avg" is accepted
// as an alias for AVERAGE.
func ParsePattern(s string) (Pattern, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BEST":
		return Best, nil
	case "AVERAGE", "AVG":
		return Average, nil
	case "WORST":
		return Worst, nil
	default:
		return 0, fmt.Errorf("unknown pattern: %q (want best, average or worst)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(b []byte) error {
	parsed, err := ParsePattern(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
