/*
Package sliceidx normalizes Python-style (start, stop, step) slice
arguments against a sequence length, the way the rest of this module's
operation tables describe. It has no dependency on the persistent
collections themselves, so fingertree, sortedmap and seq can all share it.
*/
package sliceidx

// Normalize adjusts start, stop, step against length n, following Python's
// slice semantics: negative indices wrap from the end, out-of-range indices
// clamp to [0, n] for a positive step or [-1, n-1] for a negative one, and
// the number of indices the slice visits is returned as count. step == 0
// is reported via ok=false; callers should surface that as a range error.
func Normalize(start, stop, step, n int) (lo, hi, stp, count int, ok bool) {
	if step == 0 {
		return 0, 0, 0, 0, false
	}
	if step > 0 {
		lo = clamp(wrap(start, n), 0, n)
		hi = clamp(wrap(stop, n), 0, n)
		if hi > lo {
			count = (hi-lo+step-1)/step
		}
	} else {
		lo = clamp(wrap(start, n), -1, n-1)
		hi = clamp(wrap(stop, n), -1, n-1)
		if lo > hi {
			count = (lo-hi-step-1)/(-step)
		}
	}
	return lo, hi, step, count, true
}

// Index wraps a single possibly-negative index against length n without
// clamping; callers that require the result to additionally satisfy
// 0 <= i < n still need to check that themselves (see InRange).
func Index(i, n int) int {
	return wrap(i, n)
}

// InRange reports whether i (already wrapped via Index) falls in [0, n).
func InRange(i, n int) bool {
	return i >= 0 && i < n
}

func wrap(i, n int) int {
	if i < 0 {
		return i + n
	}
	return i
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
