// Package algo holds the instrumented reference algorithms.
//
// Every function is deterministic, has no side effects, and returns its
// result together with the metrics.Stats of that one call. Counters never
// carry over between calls.
//
//	value, stats := algo.FactorialRecursive(20)
//	fmt.Println(value, stats.Calls) // 2432902008176640000 20
//
// What counts as an "op" differs per algorithm on purpose: multiplications
// for factorial, additions for Fibonacci, satisfied pairs for the quadratic
// pair count, and nothing at all for the linear scans.
package algo
