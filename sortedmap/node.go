package sortedmap

// delta and gamma are Adams' balance ratios: a subtree is rebalanced once
// one child's size exceeds the other's by a factor of delta, and the
// rebalancing rotation is chosen single-vs-double by comparing against
// gamma.
const (
	delta = 4
	gamma = 2
)

type mnode[K comparable, V any] struct {
	key   K
	value V
	size  int
	left  *mnode[K, V]
	right *mnode[K, V]
}

func sizeOf[K comparable, V any](n *mnode[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func newNode[K comparable, V any](key K, value V, left, right *mnode[K, V]) *mnode[K, V] {
	return &mnode[K, V]{key: key, value: value, size: sizeOf(left) + sizeOf(right) + 1, left: left, right: right}
}

// less is supplied by the Map that owns these nodes; node-level code is
// otherwise independent of how keys compare.
type less[K comparable] func(a, b K) bool

// balance rebuilds a node from key/value and two children that are each
// individually balanced but may differ in size by more than delta,
// choosing a single or double rotation to restore the invariant.
func balance[K comparable, V any](key K, value V, left, right *mnode[K, V]) *mnode[K, V] {
	sl, sr := sizeOf(left), sizeOf(right)
	sx := sl + sr + 1
	if sx <= 2 {
		return newNode(key, value, left, right)
	}
	if sr >= delta*sl {
		assertThat(right != nil, "balance: right-heavy with nil right")
		if sizeOf(right.left) < gamma*sizeOf(right.right) {
			return newNode(right.key, right.value, newNode(key, value, left, right.left), right.right)
		}
		assertThat(right.left != nil, "balance: double rotation needs right.left")
		return newNode(right.left.key, right.left.value,
			newNode(key, value, left, right.left.left),
			newNode(right.key, right.value, right.left.right, right.right))
	}
	if sl >= delta*sr {
		assertThat(left != nil, "balance: left-heavy with nil left")
		if sizeOf(left.right) < gamma*sizeOf(left.left) {
			return newNode(left.key, left.value, left.left, newNode(key, value, left.right, right))
		}
		assertThat(left.right != nil, "balance: double rotation needs left.right")
		return newNode(left.right.key, left.right.value,
			newNode(left.key, left.value, left.left, left.right.left),
			newNode(key, value, left.right.right, right))
	}
	return newNode(key, value, left, right)
}

func insertNode[K comparable, V any](lt less[K], node *mnode[K, V], key K, value V) *mnode[K, V] {
	if node == nil {
		return newNode(key, value, nil, nil)
	}
	switch {
	case lt(key, node.key):
		return balance(node.key, node.value, insertNode(lt, node.left, key, value), node.right)
	case lt(node.key, key):
		return balance(node.key, node.value, node.left, insertNode(lt, node.right, key, value))
	default:
		return newNode(key, value, node.left, node.right)
	}
}

func lookupNode[K comparable, V any](lt less[K], node *mnode[K, V], key K) (V, bool) {
	for node != nil {
		switch {
		case lt(key, node.key):
			node = node.left
		case lt(node.key, key):
			node = node.right
		default:
			return node.value, true
		}
	}
	var zero V
	return zero, false
}

func viewMin[K comparable, V any](node *mnode[K, V]) (K, V, *mnode[K, V]) {
	if node.left == nil {
		return node.key, node.value, node.right
	}
	key, value, rest := viewMin(node.left)
	return key, value, newNode(node.key, node.value, rest, node.right)
}

func viewMax[K comparable, V any](node *mnode[K, V]) (K, V, *mnode[K, V]) {
	if node.right == nil {
		return node.key, node.value, node.left
	}
	key, value, rest := viewMax(node.right)
	return key, value, newNode(node.key, node.value, node.left, rest)
}

// glue joins two balanced subtrees (left entirely less than right) without
// a pivot key of its own, by stealing the extreme element from whichever
// side is larger.
func glue[K comparable, V any](left, right *mnode[K, V]) *mnode[K, V] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	if left.size > right.size {
		key, value, tree := viewMax(left)
		return balance(key, value, tree, right)
	}
	key, value, tree := viewMin(right)
	return balance(key, value, left, tree)
}

func popNode[K comparable, V any](lt less[K], node *mnode[K, V], key K) (V, bool, *mnode[K, V]) {
	if node == nil {
		var zero V
		return zero, false, nil
	}
	switch {
	case lt(key, node.key):
		value, ok, rest := popNode(lt, node.left, key)
		return value, ok, balance(node.key, node.value, rest, node.right)
	case lt(node.key, key):
		value, ok, rest := popNode(lt, node.right, key)
		return value, ok, balance(node.key, node.value, node.left, rest)
	default:
		return node.value, true, glue(node.left, node.right)
	}
}

// mergeNodes concatenates two trees known to be weight-compatible with no
// ordering constraint between their keys resolved here; callers (join,
// set-like operations) guarantee left's keys precede right's.
func mergeNodes[K comparable, V any](left, right *mnode[K, V]) *mnode[K, V] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	if delta*left.size <= right.size {
		return balance(right.key, right.value, mergeNodes(left, right.left), right.right)
	}
	if delta*right.size <= left.size {
		return balance(left.key, left.value, left.left, mergeNodes(left.right, right))
	}
	return glue(left, right)
}

// join rebuilds a tree from a new pivot (key, value) plus a left subtree
// entirely less than key and a right subtree entirely greater, restoring
// balance even when left and right differ wildly in size.
func join[K comparable, V any](lt less[K], key K, value V, left, right *mnode[K, V]) *mnode[K, V] {
	if left == nil {
		return insertNode(lt, right, key, value)
	}
	if right == nil {
		return insertNode(lt, left, key, value)
	}
	if delta*left.size <= right.size {
		return balance(right.key, right.value, join(lt, key, value, left, right.left), right.right)
	}
	if delta*right.size <= left.size {
		return balance(left.key, left.value, left.left, join(lt, key, value, left.right, right))
	}
	return newNode(key, value, left, right)
}

// splitNode partitions node into everything less than key, the value at
// key if present, and everything greater.
func splitNode[K comparable, V any](lt less[K], node *mnode[K, V], key K) (*mnode[K, V], V, bool, *mnode[K, V]) {
	if node == nil {
		var zero V
		return nil, zero, false, nil
	}
	switch {
	case lt(key, node.key):
		left, value, ok, right := splitNode(lt, node.left, key)
		return left, value, ok, join(lt, node.key, node.value, right, node.right)
	case lt(node.key, key):
		left, value, ok, right := splitNode(lt, node.right, key)
		return join(lt, node.key, node.value, node.left, left), value, ok, right
	default:
		return node.left, node.value, true, node.right
	}
}

// bound is an optional key boundary: present with a value, or absent
// (meaning unbounded on that side).
type bound[K comparable] struct {
	key     K
	present bool
}

func noBound[K comparable]() bound[K] { return bound[K]{} }

func someBound[K comparable](k K) bound[K] { return bound[K]{key: k, present: true} }

// trim restricts node to the open interval (low, high), returning along
// the way the value stored at low if low falls inside the node (used by
// the hedge-union family to look up a single key without a second full
// descent).
func trimNode[K comparable, V any](lt less[K], node *mnode[K, V], low, high bound[K]) (V, bool, *mnode[K, V]) {
	var zero V
	if node == nil {
		return zero, false, nil
	}
	if !low.present || lt(low.key, node.key) {
		if !high.present || lt(node.key, high.key) {
			if !low.present {
				return zero, false, node
			}
			v, ok := lookupNode(lt, node, low.key)
			return v, ok, node
		}
		return trimNode(lt, node.left, low, high)
	}
	if lt(node.key, low.key) {
		return trimNode(lt, node.right, low, high)
	}
	_, _, right := trimNode(lt, node.right, low, high)
	return node.value, true, right
}

// unionWith merges right into left, calling combine(key, leftValue,
// rightValue) to resolve keys present on both sides. combine's second
// result reports whether the key survives at all.
func unionWith[K comparable, V any](lt less[K], left, right *mnode[K, V], combine func(K, V, V) (V, bool), low, high bound[K]) *mnode[K, V] {
	if right == nil {
		return left
	}
	if left == nil {
		var l, h *mnode[K, V]
		if low.present {
			_, _, _, l = splitNode(lt, right.left, low.key)
		} else {
			l = right.left
		}
		if high.present {
			h, _, _, _ = splitNode(lt, right.right, high.key)
		} else {
			h = right.right
		}
		return join(lt, right.key, right.value, l, h)
	}
	_, _, lesser := trimNode(lt, right, low, someBound(left.key))
	value, found, greater := trimNode(lt, right, someBound(left.key), high)
	l := unionWith(lt, left.left, lesser, combine, low, someBound(left.key))
	r := unionWith(lt, left.right, greater, combine, someBound(left.key), high)
	if !found {
		return join(lt, left.key, left.value, l, r)
	}
	merged, keep := combine(left.key, left.value, value)
	if !keep {
		return mergeNodes(l, r)
	}
	return join(lt, left.key, merged, l, r)
}

// intersectWith keeps only keys present in both trees, combined via combine.
func intersectWith[K comparable, V any](lt less[K], left, right *mnode[K, V], combine func(K, V, V) (V, bool)) *mnode[K, V] {
	if left == nil || right == nil {
		return nil
	}
	lesser, value, greater := splitNode3(lt, left, right.key)
	l := intersectWith(lt, lesser, right.left, combine)
	r := intersectWith(lt, greater, right.right, combine)
	if !value.ok {
		return mergeNodes(l, r)
	}
	merged, keep := combine(right.key, value.v, right.value)
	if !keep {
		return mergeNodes(l, r)
	}
	return join(lt, right.key, merged, l, r)
}

type foundValue[V any] struct {
	v  V
	ok bool
}

func splitNode3[K comparable, V any](lt less[K], node *mnode[K, V], key K) (*mnode[K, V], foundValue[V], *mnode[K, V]) {
	l, v, ok, r := splitNode(lt, node, key)
	return l, foundValue[V]{v: v, ok: ok}, r
}

// differenceWith keeps keys of left not cancelled out by a matching key in
// right; combine decides (per matching key) whether the entry from left
// survives and with what value.
func differenceWith[K comparable, V any](lt less[K], left, right *mnode[K, V], combine func(K, V, V) (V, bool), low, high bound[K]) *mnode[K, V] {
	if left == nil {
		return nil
	}
	if right == nil {
		var l, h *mnode[K, V]
		if low.present {
			_, _, _, l = splitNode(lt, left.left, low.key)
		} else {
			l = left.left
		}
		if high.present {
			h, _, _, _ = splitNode(lt, left.right, high.key)
		} else {
			h = left.right
		}
		return join(lt, left.key, left.value, l, h)
	}
	_, _, lesser := trimNode(lt, left, low, someBound(right.key))
	value, found, greater := trimNode(lt, left, someBound(right.key), high)
	l := differenceWith(lt, lesser, right.left, combine, low, someBound(right.key))
	r := differenceWith(lt, greater, right.right, combine, someBound(right.key), high)
	if !found {
		return mergeNodes(l, r)
	}
	merged, keep := combine(right.key, value, right.value)
	if !keep {
		return mergeNodes(l, r)
	}
	return join(lt, right.key, merged, l, r)
}
