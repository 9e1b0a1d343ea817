package sortedmap

import (
	"cmp"
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/kasparund/persist/maybe"
	"github.com/kasparund/persist/result"
)

// Map is a persistent (immutable) map ordered by key, weight-balanced per
// Adams' algorithm. Use it like this:
//
//	m := sortedmap.New[int, string]().With(1, "one").With(2, "two")
//	v, found := m.Find(1) // "one", true
//
// The zero value is an empty map, ready to use.
type Map[K cmp.Ordered, V any] struct {
	root *mnode[K, V]
}

// New constructs an empty map. Present mostly for symmetry with With; the
// zero value Map[K, V]{} is equally usable.
func New[K cmp.Ordered, V any]() Map[K, V] {
	return Map[K, V]{}
}

func lessOf[K cmp.Ordered](a, b K) bool { return a < b }

// Size returns the number of entries in m, O(1).
func (m Map[K, V]) Size() int { return sizeOf(m.root) }

// IsEmpty reports whether m holds no entries.
func (m Map[K, V]) IsEmpty() bool { return m.root == nil }

// Find looks up key, returning its value and true, or the zero value and
// false.
func (m Map[K, V]) Find(key K) (V, bool) {
	return lookupNode(lessOf[K], m.root, key)
}

// Contains reports whether key is present.
func (m Map[K, V]) Contains(key K) bool {
	_, ok := m.Find(key)
	return ok
}

// With returns a copy of m with key bound to value, replacing any prior
// binding. The receiver remains valid and shares structure with the result.
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	return Map[K, V]{root: insertNode(lessOf[K], m.root, key, value)}
}

// WithDeleted returns a copy of m with key removed, if present; a missing
// key is a no-op.
func (m Map[K, V]) WithDeleted(key K) Map[K, V] {
	_, _, root := popNode(lessOf[K], m.root, key)
	return Map[K, V]{root: root}
}

// Pop removes key, reporting its value (if any) alongside the resulting map.
func (m Map[K, V]) Pop(key K) (V, bool, Map[K, V]) {
	v, ok, root := popNode(lessOf[K], m.root, key)
	return v, ok, Map[K, V]{root: root}
}

// ViewMin peels off the least-keyed entry, reporting ok=false for an empty
// map.
func (m Map[K, V]) ViewMin() (K, V, Map[K, V], bool) {
	if m.root == nil {
		var k K
		var v V
		return k, v, m, false
	}
	k, v, rest := viewMin(m.root)
	return k, v, Map[K, V]{root: rest}, true
}

// ViewMax peels off the greatest-keyed entry, reporting ok=false for an
// empty map.
func (m Map[K, V]) ViewMax() (K, V, Map[K, V], bool) {
	if m.root == nil {
		var k K
		var v V
		return k, v, m, false
	}
	k, v, rest := viewMax(m.root)
	return k, v, Map[K, V]{root: rest}, true
}

// MinKey returns the least key, or Nothing for an empty map.
func (m Map[K, V]) MinKey() maybe.Maybe[K] {
	if m.root == nil {
		return maybe.Nothing[K]()
	}
	k, _, _ := viewMin(m.root)
	return maybe.Just(k)
}

// MaxKey returns the greatest key, or Nothing for an empty map.
func (m Map[K, V]) MaxKey() maybe.Maybe[K] {
	if m.root == nil {
		return maybe.Nothing[K]()
	}
	k, _, _ := viewMax(m.root)
	return maybe.Just(k)
}

// Split partitions m at key: everything strictly less, the value bound to
// key (if any), and everything strictly greater.
func (m Map[K, V]) Split(key K) (Map[K, V], maybe.Maybe[V], Map[K, V]) {
	l, v, ok, r := splitNode(lessOf[K], m.root, key)
	mv := maybe.Nothing[V]()
	if ok {
		mv = maybe.Just(v)
	}
	return Map[K, V]{root: l}, mv, Map[K, V]{root: r}
}

// Join rebuilds a map from a left part (all keys < key), a pivot binding,
// and a right part (all keys > key); callers are responsible for the
// ordering invariant, exactly as Split's results satisfy it.
func Join[K cmp.Ordered, V any](left Map[K, V], key K, value V, right Map[K, V]) Map[K, V] {
	return Map[K, V]{root: join(lessOf[K], key, value, left.root, right.root)}
}

// Union merges other into m, preferring m's value on key collisions.
func (m Map[K, V]) Union(other Map[K, V]) Map[K, V] {
	return m.UnionWith(other, func(_ K, l, _ V) (V, bool) { return l, true })
}

// UnionWith merges other into m, calling combine(key, mValue, otherValue)
// to resolve collisions. combine's second result reports whether the key
// survives at all, so UnionWith can also express a merge that deletes keys.
func (m Map[K, V]) UnionWith(other Map[K, V], combine func(K, V, V) (V, bool)) Map[K, V] {
	root := unionWith(lessOf[K], m.root, other.root, combine, noBound[K](), noBound[K]())
	return Map[K, V]{root: root}
}

// Intersection keeps only keys present in both m and other, preferring m's
// value.
func (m Map[K, V]) Intersection(other Map[K, V]) Map[K, V] {
	return m.IntersectionWith(other, func(_ K, l, _ V) (V, bool) { return l, true })
}

// IntersectionWith keeps only keys present in both maps, combined via
// combine; a false second result drops the key.
func (m Map[K, V]) IntersectionWith(other Map[K, V], combine func(K, V, V) (V, bool)) Map[K, V] {
	return Map[K, V]{root: intersectWith(lessOf[K], m.root, other.root, combine)}
}

// Difference removes from m every key also present in other.
func (m Map[K, V]) Difference(other Map[K, V]) Map[K, V] {
	return m.DifferenceWith(other, func(_ K, _, _ V) (V, bool) {
		var zero V
		return zero, false
	})
}

// DifferenceWith removes from m every key also present in other, unless
// combine(key, mValue, otherValue) reports true, in which case the combined
// value is kept.
func (m Map[K, V]) DifferenceWith(other Map[K, V], combine func(K, V, V) (V, bool)) Map[K, V] {
	root := differenceWith(lessOf[K], m.root, other.root, combine, noBound[K](), noBound[K]())
	return Map[K, V]{root: root}
}

// Filter keeps only the entries for which pred returns true.
func (m Map[K, V]) Filter(pred func(K, V) bool) Map[K, V] {
	return Map[K, V]{root: filterNode(lessOf[K], m.root, pred)}
}

func filterNode[K comparable, V any](lt less[K], node *mnode[K, V], pred func(K, V) bool) *mnode[K, V] {
	if node == nil {
		return nil
	}
	l := filterNode(lt, node.left, pred)
	r := filterNode(lt, node.right, pred)
	if pred(node.key, node.value) {
		return join(lt, node.key, node.value, l, r)
	}
	return mergeNodes(l, r)
}

// Partition splits m into the entries for which pred holds and those for
// which it doesn't.
func (m Map[K, V]) Partition(pred func(K, V) bool) (Map[K, V], Map[K, V]) {
	return m.Filter(pred), m.Filter(func(k K, v V) bool { return !pred(k, v) })
}

// Pair is an ordered key/value binding, as produced by Items.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MapValues rebuilds m with every value replaced by f(key, value); the key
// ordering and tree shape are unchanged, so no rebalancing is needed.
func MapValues[K cmp.Ordered, V, W any](m Map[K, V], f func(K, V) W) Map[K, W] {
	return Map[K, W]{root: mapValuesNode(m.root, f)}
}

func mapValuesNode[K comparable, V, W any](node *mnode[K, V], f func(K, V) W) *mnode[K, W] {
	if node == nil {
		return nil
	}
	return &mnode[K, W]{
		key:   node.key,
		value: f(node.key, node.value),
		size:  node.size,
		left:  mapValuesNode(node.left, f),
		right: mapValuesNode(node.right, f),
	}
}

// Keys returns every key in ascending order.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Size())
	walkNode(m.root, func(k K, _ V) { keys = append(keys, k) })
	return keys
}

// Values returns every value, ordered by its key.
func (m Map[K, V]) Values() []V {
	values := make([]V, 0, m.Size())
	walkNode(m.root, func(_ K, v V) { values = append(values, v) })
	return values
}

// Items returns every key/value binding, ordered by key.
func (m Map[K, V]) Items() []Pair[K, V] {
	items := make([]Pair[K, V], 0, m.Size())
	walkNode(m.root, func(k K, v V) { items = append(items, Pair[K, V]{Key: k, Value: v}) })
	return items
}

func walkNode[K comparable, V any](node *mnode[K, V], visit func(K, V)) {
	if node == nil {
		return
	}
	walkNode(node.left, visit)
	visit(node.key, node.value)
	walkNode(node.right, visit)
}

// ToSlice returns m's entries as an ordered slice, the inverse of FromSlice.
func (m Map[K, V]) ToSlice() []Pair[K, V] {
	return m.Items()
}

// FromSlice builds a map from key/value pairs, later pairs winning on a
// duplicate key.
func FromSlice[K cmp.Ordered, V any](pairs []Pair[K, V]) Map[K, V] {
	m := New[K, V]()
	for _, p := range pairs {
		m = m.With(p.Key, p.Value)
	}
	return m
}

// ValidateStructure walks m checking the BST ordering invariant, the cached
// size annotations, and Adams' balance discipline at every node, returning
// the number of nodes visited on success.
func (m Map[K, V]) ValidateStructure() result.Result[int] {
	n, err := validateNode(lessOf[K], m.root, noBound[K](), noBound[K]())
	if err != nil {
		return result.Err[int](err)
	}
	return result.Ok(n)
}

// Dump renders m as a human-readable tree, keyed by key and subtree size;
// intended for tests and interactive debugging, not production logs.
func (m Map[K, V]) Dump() string {
	root := treeprint.New()
	dumpMapNode(root, m.root)
	return root.String()
}

func dumpMapNode[K comparable, V any](b treeprint.Tree, node *mnode[K, V]) {
	if node == nil {
		b.SetValue("<empty>")
		return
	}
	b.SetValue(mapLabel(node))
	if node.left != nil {
		dumpMapNode(b.AddBranch("left"), node.left)
	}
	if node.right != nil {
		dumpMapNode(b.AddBranch("right"), node.right)
	}
}

func mapLabel[K comparable, V any](node *mnode[K, V]) string {
	return fmt.Sprintf("%v (%d)", node.key, node.size)
}

// validateNode checks, for the subtree rooted at node, that every key falls
// within (low, high), that cached sizes match the actual child sizes, and
// that Adams' delta discipline holds between siblings; it returns the
// number of nodes visited.
func validateNode[K cmp.Ordered, V any](lt less[K], node *mnode[K, V], low, high bound[K]) (int, error) {
	if node == nil {
		return 0, nil
	}
	if low.present && !lt(low.key, node.key) {
		return 0, fmt.Errorf("sortedmap: key %v not greater than lower bound %v", node.key, low.key)
	}
	if high.present && !lt(node.key, high.key) {
		return 0, fmt.Errorf("sortedmap: key %v not less than upper bound %v", node.key, high.key)
	}
	sl, sr := sizeOf(node.left), sizeOf(node.right)
	if node.size != sl+sr+1 {
		return 0, fmt.Errorf("sortedmap: key %v has size %d, want %d", node.key, node.size, sl+sr+1)
	}
	if sl+sr > 1 {
		unbalanced := false
		switch {
		case sl == 0:
			unbalanced = sr > 1
		case sr == 0:
			unbalanced = sl > 1
		default:
			unbalanced = sr >= delta*sl || sl >= delta*sr
		}
		if unbalanced {
			return 0, fmt.Errorf("sortedmap: key %v violates balance: left=%d right=%d", node.key, sl, sr)
		}
	}
	nl, err := validateNode(lt, node.left, low, someBound(node.key))
	if err != nil {
		return 0, err
	}
	nr, err := validateNode(lt, node.right, someBound(node.key), high)
	if err != nil {
		return 0, err
	}
	return nl + nr + 1, nil
}
