package fingertree

// Digit is the 1-to-4 wide "finger" held at each end of a Deep tree. All
// items in a Digit sit at the same depth; its size is the sum of its
// items' sizes. Keeping 1-4 items (never 0, never 5) is what the rest of
// this package's algorithms lean on to guarantee amortized O(1) push/pop.
type Digit[T any] struct {
	order int
	items [4]*Node[T]
	size  int
}

func digitFromNodes[T any](nodes ...*Node[T]) *Digit[T] {
	assertThat(len(nodes) >= 1 && len(nodes) <= 4, "digit: order out of range: %d", len(nodes))
	d := &Digit[T]{order: len(nodes)}
	for i, n := range nodes {
		d.items[i] = n
		d.size += n.size
	}
	return d
}

func (d *Digit[T]) Size() int  { return d.size }
func (d *Digit[T]) Order() int { return d.order }
func (d *Digit[T]) Depth() int { return d.items[0].depth }

func (d *Digit[T]) Front() *Node[T] { return d.items[0] }
func (d *Digit[T]) Back() *Node[T]  { return d.items[d.order-1] }

func (d *Digit[T]) nodes() []*Node[T] { return d.items[:d.order] }

// toNode collapses a single-item digit to its one node; only valid when order==1.
func (d *Digit[T]) toNode() *Node[T] {
	assertThat(d.order == 1, "digit: toNode called on order %d", d.order)
	return d.items[0]
}

// pushFront grows the digit by one node at the front; panics if already at
// capacity — callers must check Order() == 4 first and handle overflow at
// the tree level.
func (d *Digit[T]) pushFront(n *Node[T]) *Digit[T] {
	assertThat(d.order < 4, "digit: pushFront on full digit")
	nodes := append([]*Node[T]{n}, d.nodes()...)
	return digitFromNodes(nodes...)
}

func (d *Digit[T]) pushBack(n *Node[T]) *Digit[T] {
	assertThat(d.order < 4, "digit: pushBack on full digit")
	nodes := append(append([]*Node[T]{}, d.nodes()...), n)
	return digitFromNodes(nodes...)
}

// viewFront returns the front node and, if more than one item remains, the
// remainder as a Digit (nil otherwise — caller must borrow from the spine).
func (d *Digit[T]) viewFront() (*Node[T], *Digit[T]) {
	if d.order == 1 {
		return d.items[0], nil
	}
	return d.items[0], digitFromNodes(d.nodes()[1:]...)
}

func (d *Digit[T]) viewBack() (*Node[T], *Digit[T]) {
	if d.order == 1 {
		return d.items[0], nil
	}
	return d.items[d.order-1], digitFromNodes(d.nodes()[:d.order-1]...)
}

func (d *Digit[T]) At(i int) T {
	idx := i
	for k := 0; k < d.order; k++ {
		if checkIndex(&idx, d.items[k].size) {
			return d.items[k].At(idx)
		}
	}
	panic("digit: index out of range")
}

func (d *Digit[T]) Set(i int, v T) *Digit[T] {
	idx := i
	nodes := append([]*Node[T]{}, d.nodes()...)
	for k := 0; k < d.order; k++ {
		if checkIndex(&idx, nodes[k].size) {
			nodes[k] = nodes[k].Set(idx, v)
			return digitFromNodes(nodes...)
		}
	}
	panic("digit: index out of range")
}

// insert inserts v at position i. If the digit has spare capacity the
// result is just a wider Digit. Otherwise (order already 4) five items
// must be accounted for: two stay behind as the new Digit and the other
// three are branched into a single node of depth+1, returned as overflow
// for the caller to push into the adjoining spine — front of it when left
// is true (this is the tree's left-hand digit), back of it when false.
func (d *Digit[T]) insert(i int, v T, left bool) (result *Digit[T], overflow *Node[T]) {
	idx := i
	for k := 0; k < d.order; k++ {
		if checkIndex(&idx, d.items[k].size) {
			child, xtra := nodeInsert(d.items[k], idx, v)
			nodes := append([]*Node[T]{}, d.nodes()...)
			if xtra == nil {
				nodes[k] = child
				return digitFromNodes(nodes...), nil
			}
			nodes[k] = child
			nodes = insertAt(nodes, k+1, xtra)
			if len(nodes) <= 4 {
				return digitFromNodes(nodes...), nil
			}
			return splitOverflow(nodes, left)
		}
	}
	// i addresses the position exactly past the last item.
	nodes := append(append([]*Node[T]{}, d.nodes()...), NewLeaf(v))
	if len(nodes) <= 4 {
		return digitFromNodes(nodes...), nil
	}
	return splitOverflow(nodes, left)
}

func insertAt[T any](s []*Node[T], at int, v *Node[T]) []*Node[T] {
	out := make([]*Node[T], 0, len(s)+1)
	out = append(out, s[:at]...)
	out = append(out, v)
	out = append(out, s[at:]...)
	return out
}

// splitOverflow accounts for exactly 5 same-depth nodes: 2 remain as the
// digit, 3 are branched together and handed back as overflow.
func splitOverflow[T any](nodes []*Node[T], left bool) (*Digit[T], *Node[T]) {
	assertThat(len(nodes) == 5, "digit: splitOverflow expects 5 nodes, got %d", len(nodes))
	if left {
		return digitFromNodes(nodes[0], nodes[1]), newBranch3(nodes[2], nodes[3], nodes[4])
	}
	return digitFromNodes(nodes[3], nodes[4]), newBranch3(nodes[0], nodes[1], nodes[2])
}

// erase removes the item at position i. When order>1 the result is a
// Digit of the same or one lower order. When order==1, erasing empties the digit entirely —
// callers (Tree) must borrow a replacement from the spine before calling
// this in that situation; calling it on an order-1 digit panics.
func (d *Digit[T]) erase(i int) *Digit[T] {
	assertThat(d.order > 1, "digit: erase called on order-1 digit")
	idx := i
	for k := 0; k < d.order; k++ {
		if checkIndex(&idx, d.items[k].size) {
			child, full := d.items[k].erase(idx)
			if full {
				nodes := append([]*Node[T]{}, d.nodes()...)
				nodes[k] = child
				return digitFromNodes(nodes...)
			}
			return d.eraseFold(k, child)
		}
	}
	panic("digit: index out of range")
}

// eraseFold handles the case where removing an element underflowed child k
// down to a lone sub-node (or nil); fold it into an adjacent sibling item
// within the same digit.
func (d *Digit[T]) eraseFold(k int, child *Node[T]) *Digit[T] {
	nodes := append([]*Node[T]{}, d.nodes()...)
	switch {
	case k+1 < len(nodes):
		merged, extra := mergeLeft(child, nodes[k+1])
		nodes[k+1] = merged
		nodes = removeAt(nodes, k)
		if extra != nil {
			nodes = insertAt(nodes, k+1, extra)
		}
	default:
		merged, extra := mergeRight(nodes[k-1], child)
		nodes[k-1] = merged
		nodes = removeAt(nodes, k)
		if extra != nil {
			nodes = insertAt(nodes, k, extra)
		}
	}
	return digitFromNodes(nodes...)
}

func removeAt[T any](s []*Node[T], at int) []*Node[T] {
	out := make([]*Node[T], 0, len(s)-1)
	out = append(out, s[:at]...)
	out = append(out, s[at+1:]...)
	return out
}

func (d *Digit[T]) reverse() *Digit[T] {
	nodes := d.nodes()
	rev := make([]*Node[T], len(nodes))
	for i, n := range nodes {
		rev[len(nodes)-1-i] = reverseNode(n)
	}
	return digitFromNodes(rev...)
}

func transformDigit[T, S any](d *Digit[T], f func(T) S) *Digit[S] {
	nodes := d.nodes()
	out := make([]*Node[S], len(nodes))
	for i, n := range nodes {
		out[i] = transformNode(n, f)
	}
	return digitFromNodes(out...)
}
