/*
Package persisterr collects the error kinds the collections in this module
surface at their documented boundaries: an out-of-range index, a missing
value, a degenerate slice step or chunk size, and a replacement iterable of
the wrong length. Internal invariant violations (a digit's order leaving
{1..4}, mismatched branch depths, a stale cached size) are not among these —
those indicate a bug in this module itself and panic via assertThat rather
than returning an error.
*/
package persisterr

import (
	"errors"
	"fmt"
)

// ErrIndex is the sentinel behind every out-of-range index error; use
// errors.Is to test for it regardless of which operation raised it.
var ErrIndex = errors.New("index out of range")

// ErrValue is the sentinel behind "value not found" errors from remove/index.
var ErrValue = errors.New("value not found")

// ErrRange is the sentinel behind a zero slice step or a non-positive chunk size.
var ErrRange = errors.New("invalid range")

// ErrShape is the sentinel behind a replacement iterable of the wrong length.
var ErrShape = errors.New("replacement has wrong length")

// Index reports an out-of-range index i against a collection of length n.
func Index(i, n int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, i, n)
}

// EmptyExtraction reports front/back/view_front/view_back called on an
// empty collection.
func EmptyExtraction(op string) error {
	return fmt.Errorf("%w: %s on empty sequence", ErrIndex, op)
}

// NotAscending reports a view() call whose indices are not strictly ascending.
func NotAscending(indices []int) error {
	return fmt.Errorf("%w: view indices not strictly ascending: %v", ErrIndex, indices)
}

// Value reports that v was not found by remove/index.
func Value(v any) error {
	return fmt.Errorf("%w: %v", ErrValue, v)
}

// ZeroStep reports a slice or chunk operation given a step of 0.
func ZeroStep() error {
	return fmt.Errorf("%w: step must not be 0", ErrRange)
}

// BadChunkSize reports chunksof(k) called with k <= 0.
func BadChunkSize(k int) error {
	return fmt.Errorf("%w: chunk size %d must be positive", ErrRange, k)
}

// Shape reports a set(l, r, step, v) call where len(v) doesn't match the
// number of indices the slice covers.
func Shape(want, got int) error {
	return fmt.Errorf("%w: replacement has %d elements, need %d", ErrShape, got, want)
}
