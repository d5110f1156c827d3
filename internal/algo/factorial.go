package algo

import "github.com/wesleyorama2/bigo/internal/metrics"

// FactorialIterative computes n! with a loop over 2..n.
//
// Each iteration charges one comparison (the loop guard) and one op (the
// multiplication). Results wrap around for n > 20.
func FactorialIterative(n int) (uint64, metrics.Stats) {
	var rec metrics.Recorder
	rec.Reset()

	ans := uint64(1)
	for i := 2; i <= n; i++ {
		rec.Compare()
		rec.Op()
		ans *= uint64(i)
	}
	return ans, rec.Snapshot()
}

// FactorialRecursive computes n! by naive linear recursion.
//
// Each invocation charges one call and one comparison, and tracks its depth.
// Non-base invocations also charge one op.
func FactorialRecursive(n int) (uint64, metrics.Stats) {
	var rec metrics.Recorder
	rec.Reset()
	return factorialRec(n, &rec, 1), rec.Snapshot()
}

func factorialRec(n int, rec *metrics.Recorder, depth int) uint64 {
	rec.Call()
	rec.TrackDepth(depth)

	rec.Compare()
	if n <= 1 {
		return 1
	}

	rec.Op()
	return uint64(n) * factorialRec(n-1, rec, depth+1)
}
