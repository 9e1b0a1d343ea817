package fingertree

// Node is the element/branch sum type of §4.1: either a Leaf holding a
// single value (size 1, depth 0), or a Branch of 2 or 3 same-depth
// children with a cached size. The 2-vs-3 shape is what lets push/view
// run in amortized O(1) at the tree level.
type Node[T any] struct {
	leaf     bool
	value    T
	size     int
	depth    int
	children [3]*Node[T] // children[2] == nil for a 2-branch
}

// NewLeaf builds a depth-0, size-1 node holding v.
func NewLeaf[T any](v T) *Node[T] {
	return &Node[T]{leaf: true, value: v, size: 1}
}

func newBranch2[T any](a, b *Node[T]) *Node[T] {
	assertThat(a.depth == b.depth, "branch2: children at mismatched depth")
	return &Node[T]{
		size:     a.size + b.size,
		depth:    a.depth + 1,
		children: [3]*Node[T]{a, b, nil},
	}
}

func newBranch3[T any](a, b, c *Node[T]) *Node[T] {
	assertThat(a.depth == b.depth && b.depth == c.depth, "branch3: children at mismatched depth")
	return &Node[T]{
		size:     a.size + b.size + c.size,
		depth:    a.depth + 1,
		children: [3]*Node[T]{a, b, c},
	}
}

// Size returns the cached subtree size in O(1).
func (n *Node[T]) Size() int { return n.size }

// Depth returns the cached subtree depth in O(1).
func (n *Node[T]) Depth() int { return n.depth }

// IsLeaf reports whether n is a Leaf (as opposed to a Branch).
func (n *Node[T]) IsLeaf() bool { return n.leaf }

// Value returns the held element of a Leaf; callers must check IsLeaf first.
func (n *Node[T]) Value() T {
	assertThat(n.leaf, "Value called on a branch node")
	return n.value
}

func (n *Node[T]) arity() int {
	if n.children[2] != nil {
		return 3
	}
	return 2
}

// checkIndex reports whether *index falls within [0, size); if not, it
// subtracts size from *index so the caller can keep probing siblings.
func checkIndex(index *int, size int) bool {
	if *index < size {
		return true
	}
	*index -= size
	return false
}

// At returns the element at position i within this subtree, O(depth).
func (n *Node[T]) At(i int) T {
	if n.leaf {
		assertThat(i == 0, "leaf index out of range")
		return n.value
	}
	idx := i
	if checkIndex(&idx, n.children[0].size) {
		return n.children[0].At(idx)
	}
	if checkIndex(&idx, n.children[1].size) {
		return n.children[1].At(idx)
	}
	return n.children[2].At(idx)
}

// Set returns a copy of n with the element at i replaced by v.
func (n *Node[T]) Set(i int, v T) *Node[T] {
	if n.leaf {
		assertThat(i == 0, "leaf index out of range")
		return NewLeaf(v)
	}
	idx := i
	if checkIndex(&idx, n.children[0].size) {
		return rebuild(n, n.children[0].Set(idx, v), n.children[1], n.children[2])
	}
	if checkIndex(&idx, n.children[1].size) {
		return rebuild(n, n.children[0], n.children[1].Set(idx, v), n.children[2])
	}
	return rebuild(n, n.children[0], n.children[1], n.children[2].Set(idx, v))
}

func rebuild[T any](orig *Node[T], a, b, c *Node[T]) *Node[T] {
	if c == nil {
		return newBranch2(a, b)
	}
	return newBranch3(a, b, c)
}

// nodeInsert inserts v at position i within n, producing a replacement node
// and, if n would otherwise overflow its arity, an "extra" sibling node of
// the same depth as the replacement. A position on the boundary between two
// children goes to the front of the right-hand child, not the tail of the
// left-hand one: see digit.go / tree.go callers for how the extra propagates.
func nodeInsert[T any](n *Node[T], i int, v T) (node, extra *Node[T]) {
	if n.leaf {
		return NewLeaf(v), n
	}
	idx := i
	switch {
	case checkIndex(&idx, n.children[0].size):
		child, xtra := nodeInsert(n.children[0], idx, v)
		if xtra == nil {
			return rebuild(n, child, n.children[1], n.children[2]), nil
		}
		if n.children[2] == nil {
			return newBranch3(child, xtra, n.children[1]), nil
		}
		return newBranch2(child, xtra), newBranch2(n.children[1], n.children[2])
	case checkIndex(&idx, n.children[1].size):
		child, xtra := nodeInsert(n.children[1], idx, v)
		if xtra == nil {
			return rebuild(n, n.children[0], child, n.children[2]), nil
		}
		if n.children[2] == nil {
			return newBranch3(n.children[0], child, xtra), nil
		}
		return newBranch2(n.children[0], child), newBranch2(xtra, n.children[2])
	default:
		assertThat(n.children[2] != nil, "insert: index beyond 2-branch bounds")
		child, xtra := nodeInsert(n.children[2], idx, v)
		if xtra == nil {
			return rebuild(n, n.children[0], n.children[1], child), nil
		}
		return newBranch2(n.children[0], n.children[1]), newBranch2(child, xtra)
	}
}

// Erase removes the leaf at position i. If the result is "full" (keeps the
// original branch family shape), ok is true and node is the replacement.
// If ok is false, node holds what remains after the branch underflowed —
// a single child one level down — and the caller must fold it into an
// adjacent sibling via mergeLeft/mergeRight.
func (n *Node[T]) erase(i int) (node *Node[T], ok bool) {
	if n.leaf {
		return nil, false
	}
	idx := i
	switch {
	case checkIndex(&idx, n.children[0].size):
		child, full := n.children[0].erase(idx)
		if full {
			return rebuild(n, child, n.children[1], n.children[2]), true
		}
		merged, xtra := mergeLeft(child, n.children[1])
		return meldRight(merged, xtra, n.children[2])
	case checkIndex(&idx, n.children[1].size):
		child, full := n.children[1].erase(idx)
		if full {
			return rebuild(n, n.children[0], child, n.children[2]), true
		}
		merged, xtra := mergeRight(n.children[0], child)
		return meldRight(merged, xtra, n.children[2])
	default:
		assertThat(n.children[2] != nil, "erase: index beyond 2-branch bounds")
		child, full := n.children[2].erase(idx)
		if full {
			return rebuild(n, n.children[0], n.children[1], child), true
		}
		merged, xtra := mergeRight(n.children[1], child)
		return meldLeft(n.children[0], merged, xtra)
	}
}

// mergeLeft folds a lone child (left, possibly nil) in front of a sibling
// branch node, producing a merged node and, if the sibling was a 3-branch
// (so there's no room), an extra node of the same depth as merged.
func mergeLeft[T any](left, node *Node[T]) (merged, extra *Node[T]) {
	if left == nil {
		return node, nil
	}
	assertThat(left.depth+1 == node.depth, "mergeLeft: depth mismatch")
	if node.children[2] == nil {
		return newBranch3(left, node.children[0], node.children[1]), nil
	}
	return newBranch2(left, node.children[0]), newBranch2(node.children[1], node.children[2])
}

// mergeRight is the mirror image of mergeLeft: right trails node.
func mergeRight[T any](node, right *Node[T]) (merged, extra *Node[T]) {
	if right == nil {
		return node, nil
	}
	assertThat(node.depth == right.depth+1, "mergeRight: depth mismatch")
	if node.children[2] == nil {
		return newBranch3(node.children[0], node.children[1], right), nil
	}
	return newBranch2(node.children[0], node.children[1]), newBranch2(node.children[2], right)
}

// meldLeft combines a (possibly nil) left sibling with the result of a
// mergeLeft/mergeRight call, reporting whether the combined node is "full"
// (ok=true) or still a bare single child awaiting a further merge upward.
func meldLeft[T any](node, merged, extra *Node[T]) (*Node[T], bool) {
	if extra != nil {
		if node == nil {
			return newBranch2(merged, extra), true
		}
		return newBranch3(node, merged, extra), true
	}
	if node == nil {
		return merged, false
	}
	return newBranch2(node, merged), true
}

// meldRight is meldLeft's mirror: node trails the merge result.
func meldRight[T any](merged, extra, node *Node[T]) (*Node[T], bool) {
	if extra != nil {
		if node == nil {
			return newBranch2(merged, extra), true
		}
		return newBranch3(merged, extra, node), true
	}
	if node == nil {
		return merged, false
	}
	return newBranch2(merged, node), true
}

// reverseNode swaps child order recursively; O(n) over the subtree.
func reverseNode[T any](n *Node[T]) *Node[T] {
	if n.leaf {
		return n
	}
	if n.children[2] == nil {
		return newBranch2(reverseNode(n.children[1]), reverseNode(n.children[0]))
	}
	return newBranch3(reverseNode(n.children[2]), reverseNode(n.children[1]), reverseNode(n.children[0]))
}

// transformNode applies f to every leaf, producing a node of identical shape
// over the result type S.
func transformNode[T, S any](n *Node[T], f func(T) S) *Node[S] {
	if n.leaf {
		return NewLeaf(f(n.value))
	}
	if n.children[2] == nil {
		return newBranch2(transformNode(n.children[0], f), transformNode(n.children[1], f))
	}
	return newBranch3(transformNode(n.children[0], f), transformNode(n.children[1], f), transformNode(n.children[2], f))
}
