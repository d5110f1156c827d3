package metrics

import "strconv"

// FrameBytes is the estimated stack cost of one recursive frame: four
// machine words. ExtraSpaceBytes is depth * FrameBytes, an approximation of
// stack growth and not a measurement.
const FrameBytes = 4 * (strconv.IntSize / 8)

// Recorder accumulates counters during one instrumented call.
//
// A Recorder is not safe for concurrent use. Entry points call Reset once;
// recursive helpers share the same Recorder and never reset it.
type Recorder struct {
	Comparisons     uint64
	Ops             uint64
	Calls           uint64
	ExtraSpaceBytes uint64
}

// Stats is an immutable snapshot of a Recorder.
type Stats struct {
	Comparisons     uint64 `json:"comparisons"`
	Ops             uint64 `json:"ops"`
	Calls           uint64 `json:"calls"`
	ExtraSpaceBytes uint64 `json:"extraSpaceBytes"`
}

// Reset zeroes all counters.
func (r *Recorder) Reset() {
	*r = Recorder{}
}

// Compare counts one decision point.
func (r *Recorder) Compare() {
	r.Comparisons++
}

// Op counts one unit of productive work.
func (r *Recorder) Op() {
	r.Ops++
}

// Call counts one recursive invocation.
func (r *Recorder) Call() {
	r.Calls++
}

// TrackDepth raises ExtraSpaceBytes to depth*FrameBytes if that is larger
// than the current value.
func (r *Recorder) TrackDepth(depth int) {
	if depth <= 0 {
		return
	}
	if est := uint64(depth) * FrameBytes; est > r.ExtraSpaceBytes {
		r.ExtraSpaceBytes = est
	}
}

// Snapshot returns the current counters as a Stats value.
func (r *Recorder) Snapshot() Stats {
	return Stats{
		Comparisons:     r.Comparisons,
		Ops:             r.Ops,
		Calls:           r.Calls,
		ExtraSpaceBytes: r.ExtraSpaceBytes,
	}
}

// IsZero reports whether every counter is zero.
func (s Stats) IsZero() bool {
	return s == Stats{}
}
