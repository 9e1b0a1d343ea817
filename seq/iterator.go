package seq

import "github.com/kasparund/persist/fingertree"

// Iterator walks a Sequence's elements via fingertree's frame-stack walk;
// see fingertree.Iterator for the seek/equality contract this wraps.
type Iterator[T any] struct {
	it fingertree.Iterator[T]
}

// Iter returns a forward iterator over s, positioned before its first element.
func (s Sequence[T]) Iter() Iterator[T] {
	return Iterator[T]{it: fingertree.NewIterator(s.treeOrEmpty())}
}

// ReverseIter returns an iterator that yields s's elements back to front.
func (s Sequence[T]) ReverseIter() Iterator[T] {
	return Iterator[T]{it: fingertree.NewReverseIterator(s.treeOrEmpty())}
}

// Next returns the next element, an iterator advanced past it, and true —
// or the zero value, it unchanged, and false once exhausted.
func (it Iterator[T]) Next() (T, Iterator[T], bool) {
	v, rest, ok := it.it.Next()
	return v, Iterator[T]{it: rest}, ok
}

// Advance skips n elements in O(log n).
func (it Iterator[T]) Advance(n int) Iterator[T] {
	return Iterator[T]{it: it.it.Advance(n)}
}

// IsExhausted reports whether every element has already been yielded.
func (it Iterator[T]) IsExhausted() bool { return it.it.IsExhausted() }

// Equal reports whether it and other are at the same point of the same walk.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.it.Equal(other.it) }

// Collect drains it into a slice, in yield order.
func (it Iterator[T]) Collect() []T {
	var out []T
	for {
		v, rest, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
		it = rest
	}
}
