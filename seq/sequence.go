package seq

import (
	"github.com/kasparund/persist/fingertree"
	"github.com/kasparund/persist/internal/sliceidx"
	"github.com/kasparund/persist/persisterr"
)

// Sequence is a persistent, indexable, sliceable sequence of T, backed by
// a finger tree. The zero value is an empty sequence with zero-value Ops;
// operations that need Ops (Remove, Index, ordering, Hash) require one
// built via Of, FromSlice or WithOps.
type Sequence[T any] struct {
	tree *fingertree.Tree[T]
	ops  Ops[T]
}

// Of builds a sequence from values with an explicit Ops.
func Of[T any](ops Ops[T], values ...T) Sequence[T] {
	return Sequence[T]{tree: fingertree.FromSlice(values), ops: ops}
}

// FromSlice builds a sequence from a slice in O(n), the bottom-up way;
// repeatedly PushBack-ing one at a time would cost O(n log n) instead.
func FromSlice[T any](ops Ops[T], values []T) Sequence[T] {
	return Sequence[T]{tree: fingertree.FromSlice(values), ops: ops}
}

// WithOps returns a copy of s carrying ops instead of its current Ops,
// without touching the underlying tree.
func (s Sequence[T]) WithOps(ops Ops[T]) Sequence[T] {
	s.ops = ops
	return s
}

func (s Sequence[T]) treeOrEmpty() *fingertree.Tree[T] {
	if s.tree == nil {
		return fingertree.Empty[T]()
	}
	return s.tree
}

func wrap[T any](ops Ops[T], t *fingertree.Tree[T]) Sequence[T] {
	return Sequence[T]{tree: t, ops: ops}
}

// Len returns the number of elements, O(1).
func (s Sequence[T]) Len() int { return s.treeOrEmpty().Size() }

// IsEmpty reports whether s holds no elements.
func (s Sequence[T]) IsEmpty() bool { return s.treeOrEmpty().IsEmpty() }

// PushFront returns a copy of s with v prepended.
func (s Sequence[T]) PushFront(v T) Sequence[T] {
	return wrap(s.ops, s.treeOrEmpty().PushFront(v))
}

// PushBack returns a copy of s with v appended.
func (s Sequence[T]) PushBack(v T) Sequence[T] {
	return wrap(s.ops, s.treeOrEmpty().PushBack(v))
}

// Front returns the first element, erroring on an empty sequence.
func (s Sequence[T]) Front() (T, error) {
	v, _, ok := s.treeOrEmpty().ViewFront()
	if !ok {
		return v, persisterr.EmptyExtraction("front")
	}
	return v, nil
}

// Back returns the last element, erroring on an empty sequence.
func (s Sequence[T]) Back() (T, error) {
	v, _, ok := s.treeOrEmpty().ViewBack()
	if !ok {
		return v, persisterr.EmptyExtraction("back")
	}
	return v, nil
}

// ViewFront splits off the first element, erroring on an empty sequence.
func (s Sequence[T]) ViewFront() (T, Sequence[T], error) {
	v, rest, ok := s.treeOrEmpty().ViewFront()
	if !ok {
		return v, s, persisterr.EmptyExtraction("view_front")
	}
	return v, wrap(s.ops, rest), nil
}

// ViewBack splits off the last element, erroring on an empty sequence.
func (s Sequence[T]) ViewBack() (Sequence[T], T, error) {
	v, rest, ok := s.treeOrEmpty().ViewBack()
	if !ok {
		return s, v, persisterr.EmptyExtraction("view_back")
	}
	return wrap(s.ops, rest), v, nil
}

func normalizeIndex(i, n int) (int, bool) {
	i = sliceidx.Index(i, n)
	return i, sliceidx.InRange(i, n)
}

// Get returns the element at index i, accepting a negative index relative
// to the end.
func (s Sequence[T]) Get(i int) (T, error) {
	n := s.Len()
	idx, ok := normalizeIndex(i, n)
	if !ok {
		var zero T
		return zero, persisterr.Index(i, n)
	}
	return s.treeOrEmpty().At(idx), nil
}

// Set returns a copy of s with the element at i replaced by v.
func (s Sequence[T]) Set(i int, v T) (Sequence[T], error) {
	n := s.Len()
	idx, ok := normalizeIndex(i, n)
	if !ok {
		return s, persisterr.Index(i, n)
	}
	return wrap(s.ops, s.treeOrEmpty().Set(idx, v)), nil
}

// MSet applies several index/value updates to s in one pass; updates
// entries are applied left to right.
func (s Sequence[T]) MSet(updates ...Pair[T]) (Sequence[T], error) {
	cur := s
	for _, u := range updates {
		var err error
		cur, err = cur.Set(u.Index, u.Value)
		if err != nil {
			return s, err
		}
	}
	return cur, nil
}

// Pair is an index/value update for MSet.
type Pair[T any] struct {
	Index int
	Value T
}

// Insert returns a copy of s with v inserted at i; i is clamped to
// [0, Len()] and, like the rest of this package's indices, may be
// negative relative to the current length.
func (s Sequence[T]) Insert(i int, v T) Sequence[T] {
	n := s.Len()
	idx := sliceidx.Index(i, n)
	if idx < 0 {
		idx = 0
	}
	if idx > n {
		idx = n
	}
	return wrap(s.ops, s.treeOrEmpty().Insert(idx, v))
}

// Erase returns a copy of s with the element at i removed.
func (s Sequence[T]) Erase(i int) (Sequence[T], error) {
	n := s.Len()
	idx, ok := normalizeIndex(i, n)
	if !ok {
		return s, persisterr.Index(i, n)
	}
	return wrap(s.ops, s.treeOrEmpty().Erase(idx)), nil
}

// EraseRange removes every index in [l, r) from s, clamped like a slice
// with step 1.
func (s Sequence[T]) EraseRange(l, r int) Sequence[T] {
	lo, hi, _, _, _ := sliceidx.Normalize(l, r, 1, s.Len())
	if hi < lo {
		hi = lo
	}
	return s.TakeFront(lo).Append(s.DropFront(hi))
}

// EraseSlice removes every index visited by the (l, r, step) slice from s.
func (s Sequence[T]) EraseSlice(l, r, step int) (Sequence[T], error) {
	if step == 1 {
		return s.EraseRange(l, r), nil
	}
	idx, err := s.sliceIndices(l, r, step)
	if err != nil {
		return s, err
	}
	keep := make(map[int]bool, len(idx))
	for _, i := range idx {
		keep[i] = true
	}
	out := make([]T, 0, s.Len()-len(idx))
	for i, v := range s.ToSlice() {
		if !keep[i] {
			out = append(out, v)
		}
	}
	return FromSlice(s.ops, out), nil
}

// Remove returns a copy of s with the first occurrence of v (per Ops.Eq)
// removed, erroring if v isn't present.
func (s Sequence[T]) Remove(v T) (Sequence[T], error) {
	i, err := s.Index(v, 0, s.Len())
	if err != nil {
		return s, err
	}
	out, _ := s.Erase(i)
	return out, nil
}

// Index returns the position of the first occurrence of v (per Ops.Eq) in
// [start, stop), erroring if absent.
func (s Sequence[T]) Index(v T, start, stop int) (int, error) {
	assertThat(s.ops.Eq != nil, "Index requires Ops.Eq")
	n := s.Len()
	lo, hi, _, _, _ := sliceidx.Normalize(start, stop, 1, n)
	values := s.ToSlice()
	for i := lo; i < hi; i++ {
		if s.ops.Eq(values[i], v) {
			return i, nil
		}
	}
	return 0, persisterr.Value(v)
}

// Append returns a copy of s with other's elements following s's own.
func (s Sequence[T]) Append(other Sequence[T]) Sequence[T] {
	return wrap(s.ops, s.treeOrEmpty().Append(other.treeOrEmpty()))
}

// Repeat returns s concatenated with itself k times (k == 0 yields an
// empty sequence), built by repeated doubling rather than k-fold Append so
// the cost is O(log k) concatenations instead of O(k).
func (s Sequence[T]) Repeat(k int) Sequence[T] {
	if k <= 0 {
		return wrap(s.ops, fingertree.Empty[T]())
	}
	result := wrap(s.ops, fingertree.Empty[T]())
	base := s
	for k > 0 {
		if k&1 == 1 {
			result = result.Append(base)
		}
		base = base.Append(base)
		k >>= 1
	}
	return result
}

// Split divides s at i into (left, v, right), where v is the element that
// was at i.
func (s Sequence[T]) Split(i int) (Sequence[T], T, Sequence[T], error) {
	n := s.Len()
	idx, ok := normalizeIndex(i, n)
	if !ok {
		var zero T
		return s, zero, s, persisterr.Index(i, n)
	}
	left, right := s.treeOrEmpty().Split(idx)
	v, rightTail, _ := right.ViewFront()
	return wrap(s.ops, left), v, wrap(s.ops, rightTail), nil
}

// SplitAt divides s at i into (left, right) without reporting the boundary
// element; i is clamped into [0, Len()] and may be negative.
func (s Sequence[T]) SplitAt(i int) (Sequence[T], Sequence[T]) {
	n := s.Len()
	idx := sliceidx.Index(i, n)
	if idx < 0 {
		idx = 0
	}
	if idx > n {
		idx = n
	}
	left, right := s.treeOrEmpty().Split(idx)
	return wrap(s.ops, left), wrap(s.ops, right)
}

// TakeFront returns the first i elements, clamped.
func (s Sequence[T]) TakeFront(i int) Sequence[T] {
	left, _ := s.SplitAt(i)
	return left
}

// DropFront returns every element after the first i, clamped.
func (s Sequence[T]) DropFront(i int) Sequence[T] {
	_, right := s.SplitAt(i)
	return right
}

// TakeBack returns the last i elements, clamped.
func (s Sequence[T]) TakeBack(i int) Sequence[T] {
	_, right := s.SplitAt(s.Len() - i)
	return right
}

// DropBack returns every element except the last i, clamped.
func (s Sequence[T]) DropBack(i int) Sequence[T] {
	left, _ := s.SplitAt(s.Len() - i)
	return left
}

// Rotate shifts s's elements by n positions: positive rotates left
// (front-to-back), negative rotates right. Implemented directly atop
// SplitAt/Append, so it needs no new engine mechanism.
func (s Sequence[T]) Rotate(n int) Sequence[T] {
	size := s.Len()
	if size == 0 {
		return s
	}
	n %= size
	if n < 0 {
		n += size
	}
	if n == 0 {
		return s
	}
	left, right := s.SplitAt(n)
	return right.Append(left)
}

// Reverse returns s with its elements in reverse order.
func (s Sequence[T]) Reverse() Sequence[T] {
	return wrap(s.ops, s.treeOrEmpty().Reverse())
}

// Transform applies f to every element, producing a sequence over result
// type S; the caller supplies ops for the result since f may change type.
func Transform[T, S any](s Sequence[T], ops Ops[S], f func(T) S) Sequence[S] {
	return wrap(ops, fingertree.Transform(s.treeOrEmpty(), f))
}

// ToSlice materializes s in order, O(n).
func (s Sequence[T]) ToSlice() []T {
	return s.treeOrEmpty().ToSlice()
}

func (s Sequence[T]) sliceIndices(l, r, step int) ([]int, error) {
	n := s.Len()
	lo, _, stp, count, ok := sliceidx.Normalize(l, r, step, n)
	if !ok {
		return nil, persisterr.ZeroStep()
	}
	indices := make([]int, count)
	for c := 0; c < count; c++ {
		indices[c] = lo + c*stp
	}
	return indices, nil
}

// GetSlice returns the sequence formed by the (l, r, step) slice of s,
// following Python's slice semantics.
func (s Sequence[T]) GetSlice(l, r, step int) (Sequence[T], error) {
	if step == 1 {
		lo, hi, _, _, _ := sliceidx.Normalize(l, r, 1, s.Len())
		return s.TakeFront(hi).DropFront(lo), nil
	}
	idx, err := s.sliceIndices(l, r, step)
	if err != nil {
		return s, err
	}
	values := s.ToSlice()
	out := make([]T, len(idx))
	for i, at := range idx {
		out[i] = values[at]
	}
	return FromSlice(s.ops, out), nil
}

// SetSlice replaces the (l, r, 1) slice of s with v's elements, which may
// differ in length from the replaced span.
func (s Sequence[T]) SetSlice(l, r int, v []T) Sequence[T] {
	lo, hi, _, _, _ := sliceidx.Normalize(l, r, 1, s.Len())
	if hi < lo {
		hi = lo
	}
	left := s.TakeFront(lo)
	right := s.DropFront(hi)
	return left.Append(FromSlice(s.ops, v)).Append(right)
}

// SetStridedSlice replaces the (l, r, step) slice of s with v, erroring if
// len(v) doesn't match the number of indices the slice visits.
func (s Sequence[T]) SetStridedSlice(l, r, step int, v []T) (Sequence[T], error) {
	idx, err := s.sliceIndices(l, r, step)
	if err != nil {
		return s, err
	}
	if len(v) != len(idx) {
		return s, persisterr.Shape(len(idx), len(v))
	}
	cur := s
	for i, at := range idx {
		cur, _ = cur.Set(at, v[i])
	}
	return cur, nil
}

// View splits s at each index in indices, which must be strictly ascending
// and in range: for indices i1 < i2 < … < ik it returns the chunks
// [s[:i1], s[i1+1:i2], …, s[ik+1:]] and, separately, the elements
// [s[i1], s[i2], …, s[ik]]; it does not interleave them into one list.
func (s Sequence[T]) View(indices ...int) ([]Sequence[T], []T, error) {
	n := s.Len()
	for k, i := range indices {
		if i < 0 || i >= n {
			return nil, nil, persisterr.Index(i, n)
		}
		if k > 0 && indices[k-1] >= i {
			return nil, nil, persisterr.NotAscending(indices)
		}
	}
	chunks := make([]Sequence[T], 0, len(indices)+1)
	elems := make([]T, 0, len(indices))
	rest := s
	prev := 0
	for _, i := range indices {
		left, right := rest.SplitAt(i - prev)
		chunks = append(chunks, left)
		v, tail, _ := right.ViewFront()
		elems = append(elems, v)
		rest = tail
		prev = i + 1
	}
	chunks = append(chunks, rest)
	return chunks, elems, nil
}

// ChunksOf splits s into runs of k elements each (the last possibly
// smaller), erroring if k <= 0.
func (s Sequence[T]) ChunksOf(k int) ([]Sequence[T], error) {
	if k <= 0 {
		return nil, persisterr.BadChunkSize(k)
	}
	var chunks []Sequence[T]
	rest := s
	for !rest.IsEmpty() {
		chunk, tail := rest.SplitAt(k)
		chunks = append(chunks, chunk)
		rest = tail
	}
	return chunks, nil
}

// Equal reports whether s and other hold the same elements in the same
// order, per Ops.Eq.
func (s Sequence[T]) Equal(other Sequence[T]) bool {
	assertThat(s.ops.Eq != nil, "Equal requires Ops.Eq")
	if s.Len() != other.Len() {
		return false
	}
	a, b := s.ToSlice(), other.ToSlice()
	for i := range a {
		if !s.ops.Eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Compare returns -1, 0 or 1 comparing s and other lexicographically, per
// Ops.Less.
func (s Sequence[T]) Compare(other Sequence[T]) int {
	assertThat(s.ops.Less != nil, "Compare requires Ops.Less")
	a, b := s.ToSlice(), other.ToSlice()
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case s.ops.Less(a[i], b[i]):
			return -1
		case s.ops.Less(b[i], a[i]):
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Hash combines every element's Ops.Hash left to right, so that two
// sequences equal by Equal always hash equal.
func (s Sequence[T]) Hash() uint64 {
	assertThat(s.ops.Hash != nil, "Hash requires Ops.Hash")
	return hashSlice(s.ops, s.ToSlice())
}
