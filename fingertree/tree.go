package fingertree

import "github.com/xlab/treeprint"

type treeKind uint8

const (
	emptyKind treeKind = iota
	singleKind
	deepKind
)

// deepNode is the Deep case of Tree: a left finger, a (possibly empty)
// recursive middle holding one-level-deeper nodes, and a right finger.
type deepNode[T any] struct {
	size   int
	left   *Digit[T]
	middle *Tree[T]
	right  *Digit[T]
}

// Tree is a persistent 2-3 finger tree over elements of type T. The zero
// value is an empty Tree, as is the result of Empty.
type Tree[T any] struct {
	kind   treeKind
	single *Node[T]
	deep   *deepNode[T]
}

// Empty returns the empty tree.
func Empty[T any]() *Tree[T] { return emptyTreeOf[T]() }

func emptyTreeOf[T any]() *Tree[T] { return &Tree[T]{kind: emptyKind} }

func singleTree[T any](n *Node[T]) *Tree[T] { return &Tree[T]{kind: singleKind, single: n} }

func deepTree[T any](size int, left *Digit[T], middle *Tree[T], right *Digit[T]) *Tree[T] {
	return &Tree[T]{kind: deepKind, deep: &deepNode[T]{size: size, left: left, middle: middle, right: right}}
}

// Size returns the number of elements held, in O(1).
func (t *Tree[T]) Size() int {
	switch t.kind {
	case emptyKind:
		return 0
	case singleKind:
		return t.single.size
	default:
		return t.deep.size
	}
}

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[T]) IsEmpty() bool { return t.kind == emptyKind }

func digitFromBranch[T any](n *Node[T]) *Digit[T] {
	if n.children[2] != nil {
		return digitFromNodes(n.children[0], n.children[1], n.children[2])
	}
	return digitFromNodes(n.children[0], n.children[1])
}

func treeFromNodeList[T any](nodes []*Node[T]) *Tree[T] {
	t := emptyTreeOf[T]()
	for _, n := range nodes {
		t = pushBackNode(t, n)
	}
	return t
}

// treeFromDigit rebuilds a tree from an already-assembled Digit (1 to 4
// same-depth nodes); used whenever a digit's contents must be re-expressed
// as a standalone Tree, e.g. after the other boundary has been exhausted.
func treeFromDigit[T any](d *Digit[T]) *Tree[T] { return treeFromNodeList(d.nodes()) }

// --- push / view ------------------------------------------------------

func pushFrontNode[T any](t *Tree[T], n *Node[T]) *Tree[T] {
	switch t.kind {
	case emptyKind:
		return singleTree(n)
	case singleKind:
		return deepTree(n.size+t.single.size, digitFromNodes(n), emptyTreeOf[T](), digitFromNodes(t.single))
	default:
		d := t.deep
		if d.left.order < 4 {
			return deepTree(d.size+n.size, d.left.pushFront(n), d.middle, d.right)
		}
		nodes := d.left.nodes()
		newleft := digitFromNodes(n, nodes[0])
		branch := newBranch3(nodes[1], nodes[2], nodes[3])
		newmiddle := pushFrontNode(d.middle, branch)
		return deepTree(d.size+n.size, newleft, newmiddle, d.right)
	}
}

func pushBackNode[T any](t *Tree[T], n *Node[T]) *Tree[T] {
	switch t.kind {
	case emptyKind:
		return singleTree(n)
	case singleKind:
		return deepTree(t.single.size+n.size, digitFromNodes(t.single), emptyTreeOf[T](), digitFromNodes(n))
	default:
		d := t.deep
		if d.right.order < 4 {
			return deepTree(d.size+n.size, d.left, d.middle, d.right.pushBack(n))
		}
		nodes := d.right.nodes()
		newright := digitFromNodes(nodes[3], n)
		branch := newBranch3(nodes[0], nodes[1], nodes[2])
		newmiddle := pushBackNode(d.middle, branch)
		return deepTree(d.size+n.size, d.left, newmiddle, newright)
	}
}

// PushFront returns a new tree with v prepended.
func (t *Tree[T]) PushFront(v T) *Tree[T] { return pushFrontNode(t, NewLeaf(v)) }

// PushBack returns a new tree with v appended.
func (t *Tree[T]) PushBack(v T) *Tree[T] { return pushBackNode(t, NewLeaf(v)) }

func viewFrontNode[T any](t *Tree[T]) (*Node[T], *Tree[T], bool) {
	switch t.kind {
	case emptyKind:
		return nil, nil, false
	case singleKind:
		return t.single, emptyTreeOf[T](), true
	default:
		d := t.deep
		front, rest := d.left.viewFront()
		if rest != nil {
			return front, deepTree(d.size-front.size, rest, d.middle, d.right), true
		}
		big, newMiddle, ok := viewFrontNode(d.middle)
		if ok {
			return front, deepTree(d.size-front.size, digitFromBranch(big), newMiddle, d.right), true
		}
		return front, treeFromDigit(d.right), true
	}
}

func viewBackNode[T any](t *Tree[T]) (*Node[T], *Tree[T], bool) {
	switch t.kind {
	case emptyKind:
		return nil, nil, false
	case singleKind:
		return t.single, emptyTreeOf[T](), true
	default:
		d := t.deep
		back, rest := d.right.viewBack()
		if rest != nil {
			return back, deepTree(d.size-back.size, d.left, d.middle, rest), true
		}
		big, newMiddle, ok := viewBackNode(d.middle)
		if ok {
			return back, deepTree(d.size-back.size, d.left, newMiddle, digitFromBranch(big)), true
		}
		return back, treeFromDigit(d.left), true
	}
}

// ViewFront splits off the first element, reporting false if t is empty.
func (t *Tree[T]) ViewFront() (v T, rest *Tree[T], ok bool) {
	n, r, ok := viewFrontNode(t)
	if !ok {
		return v, nil, false
	}
	return n.Value(), r, true
}

// ViewBack splits off the last element, reporting false if t is empty.
func (t *Tree[T]) ViewBack() (v T, rest *Tree[T], ok bool) {
	n, r, ok := viewBackNode(t)
	if !ok {
		return v, nil, false
	}
	return n.Value(), r, true
}

// --- indexed access -----------------------------------------------------

// At returns the element at position i; i must be in [0, Size()).
func (t *Tree[T]) At(i int) T {
	switch t.kind {
	case emptyKind:
		panic("fingertree: index out of range")
	case singleKind:
		return t.single.At(i)
	default:
		d := t.deep
		idx := i
		if checkIndex(&idx, d.left.size) {
			return d.left.At(idx)
		}
		if checkIndex(&idx, d.middle.Size()) {
			return d.middle.At(idx)
		}
		return d.right.At(idx)
	}
}

// Set returns a copy of t with the element at i replaced by v.
func (t *Tree[T]) Set(i int, v T) *Tree[T] {
	switch t.kind {
	case emptyKind:
		panic("fingertree: index out of range")
	case singleKind:
		return singleTree(t.single.Set(i, v))
	default:
		d := t.deep
		idx := i
		if checkIndex(&idx, d.left.size) {
			return deepTree(d.size, d.left.Set(idx, v), d.middle, d.right)
		}
		if checkIndex(&idx, d.middle.Size()) {
			return deepTree(d.size, d.left, d.middle.Set(idx, v), d.right)
		}
		return deepTree(d.size, d.left, d.middle, d.right.Set(idx, v))
	}
}

// Insert returns a copy of t with v inserted at position i, 0 <= i <= Size().
func (t *Tree[T]) Insert(i int, v T) *Tree[T] {
	switch t.kind {
	case emptyKind:
		assertThat(i == 0, "insert: index out of range on empty tree")
		return singleTree(NewLeaf(v))
	case singleKind:
		if !t.single.leaf && i < t.single.size {
			node, extra := nodeInsert(t.single, i, v)
			if extra == nil {
				return singleTree(node)
			}
			return deepTree(t.Size()+1, digitFromNodes(node), emptyTreeOf[T](), digitFromNodes(extra))
		}
		if i == 0 {
			return pushFrontNode(t, NewLeaf(v))
		}
		assertThat(i == t.single.size, "insert: index out of range")
		return pushBackNode(t, NewLeaf(v))
	default:
		d := t.deep
		if i < d.left.size {
			newleft, overflow := d.left.insert(i, v, true)
			if overflow == nil {
				return deepTree(d.size+1, newleft, d.middle, d.right)
			}
			return deepTree(d.size+1, newleft, pushFrontNode(d.middle, overflow), d.right)
		}
		idx := i - d.left.size
		if idx < d.middle.Size() {
			return deepTree(d.size+1, d.left, d.middle.Insert(idx, v), d.right)
		}
		idx2 := idx - d.middle.Size()
		newright, overflow := d.right.insert(idx2, v, false)
		if overflow == nil {
			return deepTree(d.size+1, d.left, d.middle, newright)
		}
		return deepTree(d.size+1, d.left, pushBackNode(d.middle, overflow), newright)
	}
}

// pullLeft rebuilds a left-hand boundary after its sole node underflowed
// during an erase. remainder (possibly nil) is what survived one depth
// short of a valid digit item; it is folded into whatever is borrowed
// from the front of middle, or, failing that, from right.
func pullLeft[T any](remainder *Node[T], middle *Tree[T], right *Digit[T], size int) *Tree[T] {
	big, newMiddle, ok := viewFrontNode(middle)
	if ok {
		children := digitFromBranch(big).nodes()
		merged, extra := mergeLeft(remainder, children[0])
		nodes := []*Node[T]{merged}
		if extra != nil {
			nodes = append(nodes, extra)
		}
		nodes = append(nodes, children[1:]...)
		return deepTree(size, digitFromNodes(nodes...), newMiddle, right)
	}
	if remainder == nil {
		return treeFromDigit(right)
	}
	frontR, restR := right.viewFront()
	merged, extra := mergeLeft(remainder, frontR)
	nodes := []*Node[T]{merged}
	if extra != nil {
		nodes = append(nodes, extra)
	}
	if restR != nil {
		nodes = append(nodes, restR.nodes()...)
	}
	return treeFromNodeList(nodes)
}

// pullRight is pullLeft's mirror image for the right-hand boundary.
func pullRight[T any](left *Digit[T], middle *Tree[T], remainder *Node[T], size int) *Tree[T] {
	big, newMiddle, ok := viewBackNode(middle)
	if ok {
		children := digitFromBranch(big).nodes()
		last := len(children) - 1
		merged, extra := mergeRight(children[last], remainder)
		nodes := append([]*Node[T]{}, children[:last]...)
		nodes = append(nodes, merged)
		if extra != nil {
			nodes = append(nodes, extra)
		}
		return deepTree(size, left, newMiddle, digitFromNodes(nodes...))
	}
	if remainder == nil {
		return treeFromDigit(left)
	}
	backL, restL := left.viewBack()
	merged, extra := mergeRight(backL, remainder)
	var nodes []*Node[T]
	if restL != nil {
		nodes = append(nodes, restL.nodes()...)
	}
	nodes = append(nodes, merged)
	if extra != nil {
		nodes = append(nodes, extra)
	}
	return treeFromNodeList(nodes)
}

// Erase returns a copy of t with the element at i removed.
func (t *Tree[T]) Erase(i int) *Tree[T] {
	switch t.kind {
	case emptyKind:
		panic("fingertree: index out of range")
	case singleKind:
		assertThat(i == 0, "erase: index out of range")
		return emptyTreeOf[T]()
	default:
		d := t.deep
		idx := i
		if checkIndex(&idx, d.left.size) {
			if d.left.order > 1 {
				return deepTree(d.size-1, d.left.erase(idx), d.middle, d.right)
			}
			remainder, full := d.left.items[0].erase(idx)
			if full {
				return deepTree(d.size-1, digitFromNodes(remainder), d.middle, d.right)
			}
			return pullLeft(remainder, d.middle, d.right, d.size-1)
		}
		if checkIndex(&idx, d.middle.Size()) {
			if d.middle.kind == singleKind {
				remainder, full := d.middle.single.erase(idx)
				if !full {
					return appendTrees(treeFromDigit(d.left), []*Node[T]{remainder}, treeFromDigit(d.right))
				}
				return deepTree(d.size-1, d.left, singleTree(remainder), d.right)
			}
			return deepTree(d.size-1, d.left, d.middle.Erase(idx), d.right)
		}
		if d.right.order > 1 {
			return deepTree(d.size-1, d.left, d.middle, d.right.erase(idx))
		}
		remainder, full := d.right.items[0].erase(idx)
		if full {
			return deepTree(d.size-1, d.left, d.middle, digitFromNodes(remainder))
		}
		return pullRight(d.left, d.middle, remainder, d.size-1)
	}
}

// --- concatenation --------------------------------------------------------

func extraSize[T any](nodes []*Node[T]) int {
	s := 0
	for _, n := range nodes {
		s += n.size
	}
	return s
}

// regroup repacks a flat run of same-depth nodes (between 2 and roughly 11
// of them, gathered from two adjoining digit boundaries) into branch nodes
// one level deeper, preferring branches of 3.
func regroup[T any](nodes []*Node[T]) []*Node[T] {
	var out []*Node[T]
	i, n := 0, len(nodes)
	for n-i > 4 {
		out = append(out, newBranch3(nodes[i], nodes[i+1], nodes[i+2]))
		i += 3
	}
	switch n - i {
	case 2:
		out = append(out, newBranch2(nodes[i], nodes[i+1]))
	case 3:
		out = append(out, newBranch3(nodes[i], nodes[i+1], nodes[i+2]))
	case 4:
		out = append(out, newBranch2(nodes[i], nodes[i+1]), newBranch2(nodes[i+2], nodes[i+3]))
	}
	return out
}

// ToSlice materializes t in order, O(n).
func (t *Tree[T]) ToSlice() []T {
	out := make([]T, 0, t.Size())
	collectElements(t, &out)
	return out
}

func collectElements[T any](t *Tree[T], out *[]T) {
	switch t.kind {
	case emptyKind:
		return
	case singleKind:
		collectNodeElements(t.single, out)
	default:
		for _, n := range t.deep.left.nodes() {
			collectNodeElements(n, out)
		}
		collectElements(t.deep.middle, out)
		for _, n := range t.deep.right.nodes() {
			collectNodeElements(n, out)
		}
	}
}

func collectNodeElements[T any](n *Node[T], out *[]T) {
	if n.leaf {
		*out = append(*out, n.value)
		return
	}
	for _, c := range n.children[:n.arity()] {
		collectNodeElements(c, out)
	}
}

// appendTrees concatenates t1, a run of loose boundary nodes, and t2. The
// fast path (equal digit depth on both sides) regroups the boundary nodes
// into new branches in O(log min(m,n)); mismatched digit depths — which
// arise from the trees that Split and the single-tree cases assemble out of
// nodes of different depths — fall back to splicing the smaller side in
// element by element.
func appendTrees[T any](t1 *Tree[T], extra []*Node[T], t2 *Tree[T]) *Tree[T] {
	switch {
	case t1.kind == emptyKind:
		t := t2
		for i := len(extra) - 1; i >= 0; i-- {
			t = pushFrontNode(t, extra[i])
		}
		return t
	case t2.kind == emptyKind:
		t := t1
		for _, n := range extra {
			t = pushBackNode(t, n)
		}
		return t
	case t1.kind == singleKind:
		t := t2
		for i := len(extra) - 1; i >= 0; i-- {
			t = pushFrontNode(t, extra[i])
		}
		return pushFrontNode(t, t1.single)
	case t2.kind == singleKind:
		t := t1
		for _, n := range extra {
			t = pushBackNode(t, n)
		}
		return pushBackNode(t, t2.single)
	default:
		d1, d2 := t1.deep, t2.deep
		if d1.left.Depth() == d2.left.Depth() {
			nodes := append(append(append([]*Node[T]{}, d1.right.nodes()...), extra...), d2.left.nodes()...)
			mid := appendTrees(d1.middle, regroup(nodes), d2.middle)
			return deepTree(d1.size+extraSize(extra)+d2.size, d1.left, mid, d2.right)
		}
		if t1.Size() <= t2.Size() {
			var all []T
			collectElements(t1, &all)
			for _, n := range extra {
				collectNodeElements(n, &all)
			}
			t := t2
			for i := len(all) - 1; i >= 0; i-- {
				t = t.PushFront(all[i])
			}
			return t
		}
		var all []T
		for _, n := range extra {
			collectNodeElements(n, &all)
		}
		collectElements(t2, &all)
		t := t1
		for _, v := range all {
			t = t.PushBack(v)
		}
		return t
	}
}

// Append concatenates t and other, in O(log min(size(t), size(other)))
// when their internal depths line up (the common case).
func (t *Tree[T]) Append(other *Tree[T]) *Tree[T] {
	return appendTrees(t, nil, other)
}

// --- splitting ------------------------------------------------------------

// splitDigit partitions d's elements at local index i into two trees.
func splitDigit[T any](d *Digit[T], i int) (*Tree[T], *Tree[T]) {
	idx := i
	nodes := d.nodes()
	for k, n := range nodes {
		if idx < n.size {
			leftNodes := nodes[:k]
			rightNodes := nodes[k+1:]
			if idx == 0 {
				return treeFromNodeList(leftNodes), pushFrontNode(treeFromNodeList(rightNodes), n)
			}
			inner := treeFromDigit(digitFromNodes(n.children[:n.arity()]...))
			il, ir := inner.Split(idx)
			return appendTrees(treeFromNodeList(leftNodes), nil, il), appendTrees(ir, nil, treeFromNodeList(rightNodes))
		}
		idx -= n.size
	}
	return treeFromNodeList(nodes), emptyTreeOf[T]()
}

// Split partitions t into the elements before position i and from i
// onward, in O(log min(i, Size()-i)).
func (t *Tree[T]) Split(i int) (*Tree[T], *Tree[T]) {
	if i <= 0 {
		return emptyTreeOf[T](), t
	}
	if i >= t.Size() {
		return t, emptyTreeOf[T]()
	}
	switch t.kind {
	case singleKind:
		return splitDigit(digitFromNodes(t.single), i)
	default:
		d := t.deep
		if i < d.left.size {
			ltree, rtree := splitDigit(d.left, i)
			return ltree, appendTrees(rtree, nil, appendTrees(d.middle, nil, treeFromDigit(d.right)))
		}
		idx := i - d.left.size
		if idx < d.middle.Size() {
			mltree, mrtree := d.middle.Split(idx)
			return appendTrees(treeFromDigit(d.left), nil, mltree), appendTrees(mrtree, nil, treeFromDigit(d.right))
		}
		idx2 := idx - d.middle.Size()
		ltree, rtree := splitDigit(d.right, idx2)
		return appendTrees(treeFromDigit(d.left), nil, appendTrees(d.middle, nil, ltree)), rtree
	}
}

// TakeFront returns the first n elements.
func (t *Tree[T]) TakeFront(n int) *Tree[T] { l, _ := t.Split(n); return l }

// DropFront returns all but the first n elements.
func (t *Tree[T]) DropFront(n int) *Tree[T] { _, r := t.Split(n); return r }

// TakeBack returns the last n elements.
func (t *Tree[T]) TakeBack(n int) *Tree[T] { _, r := t.Split(t.Size() - n); return r }

// DropBack returns all but the last n elements.
func (t *Tree[T]) DropBack(n int) *Tree[T] { l, _ := t.Split(t.Size() - n); return l }

// --- whole-tree transforms --------------------------------------------

// Reverse returns t with element order reversed, in O(n).
func (t *Tree[T]) Reverse() *Tree[T] {
	switch t.kind {
	case emptyKind:
		return t
	case singleKind:
		return singleTree(reverseNode(t.single))
	default:
		d := t.deep
		return deepTree(d.size, d.right.reverse(), d.middle.Reverse(), d.left.reverse())
	}
}

// Transform applies f to every element, yielding a Tree[S] of the same shape.
func Transform[T, S any](t *Tree[T], f func(T) S) *Tree[S] {
	switch t.kind {
	case emptyKind:
		return emptyTreeOf[S]()
	case singleKind:
		return singleTree(transformNode(t.single, f))
	default:
		d := t.deep
		return deepTree(d.size, transformDigit(d.left, f), Transform(d.middle, f), transformDigit(d.right, f))
	}
}

// --- bulk construction ------------------------------------------------

// FromSlice builds a tree holding the given values, in O(n) by packing
// bottom-up instead of repeated PushBack calls.
func FromSlice[T any](values []T) *Tree[T] {
	if len(values) == 0 {
		return emptyTreeOf[T]()
	}
	leaves := make([]*Node[T], len(values))
	for i, v := range values {
		leaves[i] = NewLeaf(v)
	}
	return buildLevel(leaves)
}

// buildLevel assembles a tree from a flat run of same-depth nodes by
// packing them 3-wide into the next depth and recursing, bottoming out
// once <= 8 nodes remain — the same sizes the finger-tree spine itself
// handles directly as a Single or small Deep.
func buildLevel[T any](nodes []*Node[T]) *Tree[T] {
	if len(nodes) <= 8 {
		return treeFromNodeList(nodes)
	}
	// Peel a left and right digit of 4 nodes each, pack the remainder
	// 3-wide into the middle, and recurse. regroup needs either 0 or at
	// least 2 leftover nodes to work with, so the one count (n==9) that
	// would leave exactly 1 borrows a node back from the left digit.
	n := len(nodes)
	leftCount, rightCount := 4, 4
	if n-leftCount-rightCount == 1 {
		leftCount = 3
	}
	midNodes := nodes[leftCount : n-rightCount]
	leftDigit := digitFromNodes(nodes[:leftCount]...)
	rightDigit := digitFromNodes(nodes[n-rightCount:]...)
	middle := buildLevel(regroup(midNodes))
	size := 0
	for _, nd := range nodes {
		size += nd.size
	}
	return deepTree(size, leftDigit, middle, rightDigit)
}

// --- diagnostics --------------------------------------------------------

// Dump renders t as a human-readable tree, keyed by cached subtree sizes;
// intended for tests and interactive debugging, not for production logs.
func (t *Tree[T]) Dump() string {
	root := treeprint.New()
	switch t.kind {
	case emptyKind:
		root.SetValue("<empty>")
	case singleKind:
		dumpNode(root, t.single)
	default:
		d := t.deep
		branch := root.AddBranch(sizeLabel(d.size))
		left := branch.AddBranch("left")
		for _, n := range d.left.nodes() {
			dumpNode(left, n)
		}
		dumpTreeInto(branch.AddBranch("middle"), d.middle)
		right := branch.AddBranch("right")
		for _, n := range d.right.nodes() {
			dumpNode(right, n)
		}
	}
	return root.String()
}

func dumpTreeInto[T any](b treeprint.Tree, t *Tree[T]) {
	switch t.kind {
	case emptyKind:
		b.SetValue("<empty>")
	case singleKind:
		dumpNode(b, t.single)
	default:
		d := t.deep
		b.SetValue(sizeLabel(d.size))
		left := b.AddBranch("left")
		for _, n := range d.left.nodes() {
			dumpNode(left, n)
		}
		dumpTreeInto(b.AddBranch("middle"), d.middle)
		right := b.AddBranch("right")
		for _, n := range d.right.nodes() {
			dumpNode(right, n)
		}
	}
}

func dumpNode[T any](b treeprint.Tree, n *Node[T]) {
	if n.leaf {
		b.AddNode(sizeLabel(1))
		return
	}
	branch := b.AddBranch(sizeLabel(n.size))
	for _, c := range n.children[:n.arity()] {
		dumpNode(branch, c)
	}
}

func sizeLabel(n int) string {
	if n == 1 {
		return "(1)"
	}
	return "(" + itoa(n) + ")"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
