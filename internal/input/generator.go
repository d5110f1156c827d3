package input

import (
	"math"
	"math/rand"
)

const (
	// DefaultSeed is the seed used for AVERAGE arrays.
	DefaultSeed int64 = 12345

	// DefaultMin and DefaultMax bound AVERAGE values (inclusive).
	DefaultMin = -1000000
	DefaultMax = 1000000
)

// Generator builds arrays for a given pattern.
//
// The zero value is not useful; use NewGenerator or fill every field.
type Generator struct {
	Seed int64
	Min  int
	Max  int
}

// NewGenerator returns a Generator with the default seed and value range.
func NewGenerator() Generator {
	return Generator{Seed: DefaultSeed, Min: DefaultMin, Max: DefaultMax}
}

// Generate returns an array of the given size shaped by pattern.
//
//   - Average: uniform over [Min, Max] from a source freshly seeded with Seed,
//     so the same seed and size always produce the same sequence.
//   - Best: zeros, with target at index 0 and threshold+1 at index 1.
//   - Worst: every element is threshold, so nothing is above it. When target
//     equals threshold the fill becomes threshold+1 to keep target absent.
//
// A non-positive size yields an empty slice.
func (g Generator) Generate(size int, pattern Pattern, target, threshold int) []int {
	if size < 0 {
		size = 0
	}
	a := make([]int, size)

	switch pattern {
	case Average:
		g.fillRandom(a)
	case Best:
		if size > 0 {
			a[0] = target
		}
		if size > 1 {
			a[1] = threshold + 1
		}
	default:
		fill := threshold
		if target == threshold {
			fill = threshold + 1
		}
		for i := range a {
			a[i] = fill
		}
	}
	return a
}

func (g Generator) fillRandom(a []int) {
	lo, hi := g.Min, g.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	// hi-lo as unsigned never overflows; the wrap back into int is exact.
	width := uint64(hi) - uint64(lo)

	rng := rand.New(rand.NewSource(g.Seed))
	if width < math.MaxInt64 {
		span := int64(width) + 1
		for i := range a {
			a[i] = lo + int(rng.Int63n(span))
		}
		return
	}

	for i := range a {
		v := rng.Uint64()
		if width != math.MaxUint64 {
			v %= width + 1
		}
		a[i] = lo + int(v)
	}
}
