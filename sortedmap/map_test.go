package sortedmap_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/kasparund/persist/sortedmap"
)

func TestEmptyMap(t *testing.T) {
	var m sortedmap.Map[int, string]
	if !m.IsEmpty() || m.Size() != 0 {
		t.Errorf("expected zero-value Map to be empty, is %#v", m)
	}
	if _, ok := m.Find(1); ok {
		t.Error("expected Find on empty map to report not-found")
	}
}

func TestWithAndFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.sortedmap")
	defer teardown()
	//
	m := sortedmap.New[int, string]()
	for i := 0; i < 50; i++ {
		m = m.With(i, itoa(i))
	}
	if m.Size() != 50 {
		t.Fatalf("expected size 50, is %d", m.Size())
	}
	if v, ok := m.Find(17); !ok || v != "17" {
		t.Errorf("expected Find(17) = \"17\", true, got %q, %v", v, ok)
	}
	if _, err := m.ValidateStructure().Get(); err != nil {
		t.Errorf("tree invariants broken after 50 inserts: %v", err)
	}
}

func TestWithReplacesExistingKey(t *testing.T) {
	m := sortedmap.New[string, int]().With("a", 1).With("a", 2)
	if m.Size() != 1 {
		t.Fatalf("expected size 1 after overwrite, is %d", m.Size())
	}
	if v, _ := m.Find("a"); v != 2 {
		t.Errorf("expected overwritten value 2, is %d", v)
	}
}

func TestWithDeleted(t *testing.T) {
	m := sortedmap.New[int, int]()
	for i := 0; i < 20; i++ {
		m = m.With(i, i*i)
	}
	m = m.WithDeleted(10)
	if _, ok := m.Find(10); ok {
		t.Error("expected key 10 to be gone after WithDeleted")
	}
	if m.Size() != 19 {
		t.Errorf("expected size 19, is %d", m.Size())
	}
	if _, err := m.ValidateStructure().Get(); err != nil {
		t.Errorf("tree invariants broken after delete: %v", err)
	}
}

func TestViewMinMax(t *testing.T) {
	m := sortedmap.New[int, string]()
	if _, _, _, ok := m.ViewMin(); ok {
		t.Error("expected ViewMin on empty map to report ok=false")
	}
	for _, k := range []int{5, 1, 9, 3, 7} {
		m = m.With(k, itoa(k))
	}
	k, v, rest, ok := m.ViewMin()
	if !ok || k != 1 || v != "1" {
		t.Errorf("expected min (1, \"1\"), got (%v, %v, %v)", k, v, ok)
	}
	if rest.Size() != 4 {
		t.Errorf("expected rest to have 4 entries, has %d", rest.Size())
	}
	k, _, _, ok = m.ViewMax()
	if !ok || k != 9 {
		t.Errorf("expected max key 9, got %v, %v", k, ok)
	}
}

func TestUnionWithPrefersLeft(t *testing.T) {
	a := sortedmap.New[int, string]().With(1, "a1").With(2, "a2")
	b := sortedmap.New[int, string]().With(2, "b2").With(3, "b3")
	u := a.Union(b)
	if u.Size() != 3 {
		t.Fatalf("expected union size 3, is %d", u.Size())
	}
	if v, _ := u.Find(2); v != "a2" {
		t.Errorf("expected Union to prefer left on collision, got %q", v)
	}
}

func TestIntersectionWith(t *testing.T) {
	a := sortedmap.New[int, int]()
	b := sortedmap.New[int, int]()
	for i := 0; i < 10; i++ {
		a = a.With(i, i)
	}
	for i := 5; i < 15; i++ {
		b = b.With(i, i*10)
	}
	sum := a.IntersectionWith(b, func(_ int, l, r int) (int, bool) { return l + r, true })
	if sum.Size() != 5 {
		t.Fatalf("expected intersection size 5, is %d", sum.Size())
	}
	if v, ok := sum.Find(7); !ok || v != 7+70 {
		t.Errorf("expected combined value 77 at key 7, got %d, %v", v, ok)
	}
}

func TestDifference(t *testing.T) {
	a := sortedmap.New[int, int]()
	b := sortedmap.New[int, int]()
	for i := 0; i < 10; i++ {
		a = a.With(i, i)
	}
	for i := 0; i < 5; i++ {
		b = b.With(i, 0)
	}
	d := a.Difference(b)
	if d.Size() != 5 {
		t.Fatalf("expected difference size 5, is %d", d.Size())
	}
	if d.Contains(2) {
		t.Error("expected key 2 to be removed by Difference")
	}
	if !d.Contains(7) {
		t.Error("expected key 7 to survive Difference")
	}
}

func TestSplitAndJoin(t *testing.T) {
	m := sortedmap.New[int, int]()
	for i := 0; i < 20; i++ {
		m = m.With(i, i)
	}
	left, pivot, right := m.Split(10)
	if !pivot.IsJust() {
		t.Fatal("expected key 10 to be found by Split")
	}
	if left.Size() != 10 || right.Size() != 9 {
		t.Errorf("expected split sizes 10/9, got %d/%d", left.Size(), right.Size())
	}
	v, _ := pivot.Get()
	rejoined := sortedmap.Join(left, 10, v, right)
	if rejoined.Size() != m.Size() {
		t.Errorf("expected rejoined size %d, is %d", m.Size(), rejoined.Size())
	}
	for _, k := range rejoined.Keys() {
		if want, ok := m.Find(k); !ok {
			t.Errorf("key %v present after rejoin but not in original", k)
		} else if got, _ := rejoined.Find(k); got != want {
			t.Errorf("key %v: expected %v, got %v", k, want, got)
		}
	}
}

func TestFilterAndPartition(t *testing.T) {
	m := sortedmap.New[int, int]()
	for i := 0; i < 10; i++ {
		m = m.With(i, i)
	}
	evens := m.Filter(func(k, _ int) bool { return k%2 == 0 })
	if evens.Size() != 5 {
		t.Errorf("expected 5 even keys, is %d", evens.Size())
	}
	yes, no := m.Partition(func(k, _ int) bool { return k < 5 })
	if yes.Size() != 5 || no.Size() != 5 {
		t.Errorf("expected partition sizes 5/5, got %d/%d", yes.Size(), no.Size())
	}
}

func TestMapValues(t *testing.T) {
	m := sortedmap.New[int, int]().With(1, 1).With(2, 2).With(3, 3)
	doubled := sortedmap.MapValues(m, func(_ int, v int) int { return v * 2 })
	if v, _ := doubled.Find(2); v != 4 {
		t.Errorf("expected doubled value 4 at key 2, is %d", v)
	}
	if doubled.Size() != m.Size() {
		t.Errorf("expected MapValues to preserve size, got %d vs %d", doubled.Size(), m.Size())
	}
}

func TestKeysValuesItems(t *testing.T) {
	m := sortedmap.New[int, string]().With(3, "c").With(1, "a").With(2, "b")
	keys := m.Keys()
	want := []int{1, 2, 3}
	for i, k := range keys {
		if k != want[i] {
			t.Errorf("Keys()[%d] = %d, want %d", i, k, want[i])
		}
	}
	items := m.Items()
	if len(items) != 3 || items[0].Key != 1 || items[0].Value != "a" {
		t.Errorf("unexpected Items(): %#v", items)
	}
}

func TestFromSliceRoundTrip(t *testing.T) {
	pairs := []sortedmap.Pair[int, string]{{Key: 2, Value: "b"}, {Key: 1, Value: "a"}, {Key: 3, Value: "c"}}
	m := sortedmap.FromSlice(pairs)
	back := m.ToSlice()
	if len(back) != 3 || back[0].Key != 1 || back[2].Key != 3 {
		t.Errorf("expected ToSlice to round-trip in key order, got %#v", back)
	}
}

func TestValidateStructureAfterManyOps(t *testing.T) {
	m := sortedmap.New[int, int]()
	for i := 0; i < 200; i++ {
		m = m.With((i*37)%200, i)
	}
	for i := 0; i < 100; i++ {
		m = m.WithDeleted((i * 3) % 200)
	}
	n, err := m.ValidateStructure().Get()
	if err != nil {
		t.Fatalf("tree invariants broken: %v", err)
	}
	if n != m.Size() {
		t.Errorf("expected ValidateStructure to visit %d nodes, visited %d", m.Size(), n)
	}
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
