// Package metrics provides the instrumentation used by the algorithm library.
//
// A Recorder accumulates counters during one instrumented call and is turned
// into an immutable Stats value when the call returns:
//
//	var rec metrics.Recorder
//	rec.Reset()
//	rec.Compare()
//	rec.Op()
//	stats := rec.Snapshot()
//
// # Counters
//
//   - Comparisons: decision points (loop guards, conditionals)
//   - Ops: productive work, defined per algorithm
//   - Calls: recursive invocations; always 0 for iterative algorithms
//   - ExtraSpaceBytes: high-water mark of the depth-proportional stack estimate
//
// # Timing
//
// Timing collects repeated elapsed-time samples for a single benchmark row in
// an HDR histogram so the runner can report a median and tail.
package metrics
