package fingertree

import "github.com/kasparund/persist/internal/clist"

// frameKind tags which of {Tree, Digit, Node} a frame refers to.
type frameKind uint8

const (
	frameTree frameKind = iota
	frameDigit
	frameNode
)

type frame[T any] struct {
	kind  frameKind
	tree  *Tree[T]
	digit *Digit[T]
	node  *Node[T]
}

func (f frame[T]) size() int {
	switch f.kind {
	case frameTree:
		return f.tree.Size()
	case frameDigit:
		return f.digit.Size()
	default:
		return f.node.Size()
	}
}

// Iterator walks a Tree's elements via a persistent stack of frames: a
// forward iterator pops a frame and expands it into its constituents with
// the leftmost constituent ending on top; a reverse iterator expands with
// the rightmost on top instead. Both directions seek in O(log n) via
// Advance, since a frame whose whole size fits within the requested skip
// is dropped without being expanded.
type Iterator[T any] struct {
	stack   clist.List[frame[T]]
	reverse bool
}

// NewIterator returns a forward iterator positioned before t's first element.
func NewIterator[T any](t *Tree[T]) Iterator[T] {
	return Iterator[T]{stack: clist.Cons(frame[T]{kind: frameTree, tree: t}, clist.List[frame[T]]{})}
}

// NewReverseIterator returns an iterator that yields t's elements back to front.
func NewReverseIterator[T any](t *Tree[T]) Iterator[T] {
	it := NewIterator(t)
	it.reverse = true
	return it
}

// IsExhausted reports whether every element has already been yielded.
func (it Iterator[T]) IsExhausted() bool { return it.stack.IsEmpty() }

// Equal compares the underlying frame stacks by pointer identity, exactly
// as two iterators derived from the same point in the same walk would;
// two exhausted iterators always compare equal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	if it.stack.IsEmpty() && other.stack.IsEmpty() {
		return true
	}
	return it.reverse == other.reverse && it.stack.SameAs(other.stack)
}

// Next returns the next element, the iterator advanced past it, and true —
// or the zero value, it unchanged, and false once exhausted.
func (it Iterator[T]) Next() (T, Iterator[T], bool) {
	stack := it.stack
	for {
		top, ok := stack.Head()
		if !ok {
			var zero T
			return zero, Iterator[T]{stack: stack, reverse: it.reverse}, false
		}
		rest := stack.Tail()
		switch top.kind {
		case frameTree:
			stack = expandTree(rest, top.tree, it.reverse)
		case frameDigit:
			stack = expandDigit(rest, top.digit, it.reverse)
		case frameNode:
			if top.node.leaf {
				return top.node.value, Iterator[T]{stack: rest, reverse: it.reverse}, true
			}
			stack = expandNode(rest, top.node, it.reverse)
		}
	}
}

// Advance skips n elements in O(log n): a frame entirely within the skip
// is dropped whole; only the frame straddling the boundary is expanded.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	stack := it.stack
	for n > 0 {
		top, ok := stack.Head()
		if !ok {
			break
		}
		rest := stack.Tail()
		if top.size() <= n {
			stack = rest
			n -= top.size()
			continue
		}
		switch top.kind {
		case frameTree:
			stack = expandTree(rest, top.tree, it.reverse)
		case frameDigit:
			stack = expandDigit(rest, top.digit, it.reverse)
		case frameNode:
			stack = expandNode(rest, top.node, it.reverse)
		}
	}
	return Iterator[T]{stack: stack, reverse: it.reverse}
}

func expandTree[T any](rest clist.List[frame[T]], t *Tree[T], reverse bool) clist.List[frame[T]] {
	switch t.kind {
	case emptyKind:
		return rest
	case singleKind:
		return clist.Cons(frame[T]{kind: frameNode, node: t.single}, rest)
	default:
		d := t.deep
		return pushFrames(rest, []frame[T]{
			{kind: frameDigit, digit: d.left},
			{kind: frameTree, tree: d.middle},
			{kind: frameDigit, digit: d.right},
		}, reverse)
	}
}

func expandDigit[T any](rest clist.List[frame[T]], d *Digit[T], reverse bool) clist.List[frame[T]] {
	nodes := d.nodes()
	frames := make([]frame[T], len(nodes))
	for i, n := range nodes {
		frames[i] = frame[T]{kind: frameNode, node: n}
	}
	return pushFrames(rest, frames, reverse)
}

func expandNode[T any](rest clist.List[frame[T]], n *Node[T], reverse bool) clist.List[frame[T]] {
	frames := make([]frame[T], n.arity())
	for i, c := range n.children[:n.arity()] {
		frames[i] = frame[T]{kind: frameNode, node: c}
	}
	return pushFrames(rest, frames, reverse)
}

// pushFrames pushes frames (given left-to-right) so that, for a forward
// walk, frames[0] ends on top; for a reverse walk, frames[len-1] does.
func pushFrames[T any](stack clist.List[frame[T]], frames []frame[T], reverse bool) clist.List[frame[T]] {
	if reverse {
		for _, f := range frames {
			stack = clist.Cons(f, stack)
		}
		return stack
	}
	for i := len(frames) - 1; i >= 0; i-- {
		stack = clist.Cons(frames[i], stack)
	}
	return stack
}
