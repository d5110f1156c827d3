package algo

import (
	"math"

	"github.com/wesleyorama2/bigo/internal/metrics"
)

// ExistsLinear reports whether target occurs in a, stopping at the first
// match. One comparison per inspected element.
func ExistsLinear(a []int, target int) (bool, metrics.Stats) {
	var rec metrics.Recorder
	rec.Reset()

	for _, v := range a {
		rec.Compare()
		if v == target {
			return true, rec.Snapshot()
		}
	}
	return false, rec.Snapshot()
}

// FirstAboveLinear returns the index of the first element greater than
// threshold, or -1. One comparison per inspected element.
func FirstAboveLinear(a []int, threshold int) (int, metrics.Stats) {
	var rec metrics.Recorder
	rec.Reset()

	for i, v := range a {
		rec.Compare()
		if v > threshold {
			return i, rec.Snapshot()
		}
	}
	return -1, rec.Snapshot()
}

// MaxLinear returns the largest element of a. Every element after the first
// costs one comparison; there is no early exit. An empty slice returns
// math.MinInt.
func MaxLinear(a []int) (int, metrics.Stats) {
	var rec metrics.Recorder
	rec.Reset()

	if len(a) == 0 {
		return math.MinInt, rec.Snapshot()
	}

	mx := a[0]
	for _, v := range a[1:] {
		rec.Compare()
		if v > mx {
			mx = v
		}
	}
	return mx, rec.Snapshot()
}

// CountIncreasingPairs counts index pairs i < j with a[i] < a[j].
//
// Every pair costs one comparison; only satisfied pairs count as ops, so
// ops equals the returned count.
func CountIncreasingPairs(a []int) (uint64, metrics.Stats) {
	var rec metrics.Recorder
	rec.Reset()

	var cnt uint64
	n := len(a)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			rec.Compare()
			if a[i] < a[j] {
				cnt++
				rec.Op()
			}
		}
	}
	return cnt, rec.Snapshot()
}
