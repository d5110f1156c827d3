package algo

import "github.com/wesleyorama2/bigo/internal/metrics"

// FibonacciRecursive computes F(n) with the naive double recursion.
// Calls grow as O(phi^n); keep n small.
func FibonacciRecursive(n int) (uint64, metrics.Stats) {
	var rec metrics.Recorder
	rec.Reset()
	return fibonacciRec(n, &rec, 1), rec.Snapshot()
}

func fibonacciRec(n int, rec *metrics.Recorder, depth int) uint64 {
	rec.Call()
	rec.TrackDepth(depth)

	rec.Compare()
	if n <= 1 {
		return fibBase(n)
	}

	rec.Op()
	return fibonacciRec(n-1, rec, depth+1) + fibonacciRec(n-2, rec, depth+1)
}

// FibonacciIterative computes F(n) with two rolling variables.
//
// n <= 1 returns before the counted loop. Otherwise each of the n-1
// iterations charges one comparison and one op (the addition). Results wrap
// around for n > 93.
func FibonacciIterative(n int) (uint64, metrics.Stats) {
	var rec metrics.Recorder
	rec.Reset()

	if n <= 1 {
		return fibBase(n), rec.Snapshot()
	}

	a, b := uint64(0), uint64(1)
	for i := 2; i <= n; i++ {
		rec.Compare()
		c := a + b
		rec.Op()
		a, b = b, c
	}
	return b, rec.Snapshot()
}

// fibBase returns F(0) or F(1); negative n is not a defined input and maps to 0.
func fibBase(n int) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}
