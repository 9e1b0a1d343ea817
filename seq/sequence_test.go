package seq_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/kasparund/persist/persisterr"
	"github.com/kasparund/persist/seq"
)

func intSeq(n int) seq.Sequence[int] {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return seq.FromSlice(seq.OpsFor[int](), values)
}

func TestSequenceEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.seq")
	defer teardown()
	//
	var s seq.Sequence[int]
	if !s.IsEmpty() || s.Len() != 0 {
		t.Errorf("expected zero value Sequence to be empty")
	}
	if _, err := s.Front(); !errors.Is(err, persisterr.ErrIndex) {
		t.Errorf("expected Front() on empty to wrap ErrIndex, got %v", err)
	}
}

func TestPushFrontBack(t *testing.T) {
	s := seq.Of(seq.OpsFor[int]())
	s = s.PushBack(1).PushBack(2).PushFront(0)
	if s.ToSlice()[0] != 0 || s.ToSlice()[2] != 2 {
		t.Fatalf("expected [0 1 2], got %v", s.ToSlice())
	}
}

func TestGetSetNegativeIndex(t *testing.T) {
	s := intSeq(10)
	v, err := s.Get(-1)
	if err != nil || v != 9 {
		t.Fatalf("expected Get(-1) = 9, got %d, %v", v, err)
	}
	s2, err := s.Set(-1, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := s2.Get(9); v != 99 {
		t.Errorf("expected Set(-1,99) to hit last element, got %d", v)
	}
	if v, _ := s.Get(9); v != 9 {
		t.Error("expected original sequence unaffected by Set")
	}
}

func TestGetOutOfRange(t *testing.T) {
	s := intSeq(5)
	if _, err := s.Get(5); !errors.Is(err, persisterr.ErrIndex) {
		t.Errorf("expected ErrIndex, got %v", err)
	}
}

func TestEraseRange(t *testing.T) {
	s := intSeq(10)
	s2 := s.EraseRange(2, 5)
	if s2.ToSlice()[2] != 5 || s2.Len() != 7 {
		t.Fatalf("expected EraseRange(2,5) to remove [2,5), got %v", s2.ToSlice())
	}
}

func TestRemoveAndIndex(t *testing.T) {
	s := intSeq(5)
	i, err := s.Index(3, 0, 5)
	if err != nil || i != 3 {
		t.Fatalf("expected Index(3) = 3, got %d, %v", i, err)
	}
	s2, err := s.Remove(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s2.Len() != 4 {
		t.Errorf("expected Remove to shrink length, got %d", s2.Len())
	}
	if _, err := s.Remove(99); !errors.Is(err, persisterr.ErrValue) {
		t.Errorf("expected removing absent value to wrap ErrValue, got %v", err)
	}
}

func TestAppendAndSplit(t *testing.T) {
	a := intSeq(5)
	b := seq.FromSlice(seq.OpsFor[int](), []int{10, 11, 12})
	joined := a.Append(b)
	if joined.Len() != 8 {
		t.Fatalf("expected joined length 8, is %d", joined.Len())
	}
	left, v, right, err := joined.Split(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 10 || left.Len() != 5 || right.Len() != 2 {
		t.Fatalf("expected Split(5) = (len5, 10, len2), got (%d, %d, %d)", left.Len(), v, right.Len())
	}
}

func TestRepeat(t *testing.T) {
	s := seq.FromSlice(seq.OpsFor[int](), []int{1, 2})
	r := s.Repeat(3)
	want := []int{1, 2, 1, 2, 1, 2}
	got := r.ToSlice()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if !s.Repeat(0).IsEmpty() {
		t.Error("expected Repeat(0) to be empty")
	}
}

func TestTakeDropFrontBack(t *testing.T) {
	s := intSeq(10)
	if got := s.TakeFront(3).ToSlice(); len(got) != 3 || got[2] != 2 {
		t.Errorf("TakeFront(3) = %v", got)
	}
	if got := s.DropFront(3).ToSlice(); got[0] != 3 {
		t.Errorf("DropFront(3) = %v", got)
	}
	if got := s.TakeBack(3).ToSlice(); got[0] != 7 {
		t.Errorf("TakeBack(3) = %v", got)
	}
	if got := s.DropBack(3).ToSlice(); len(got) != 7 || got[6] != 6 {
		t.Errorf("DropBack(3) = %v", got)
	}
}

func TestRotate(t *testing.T) {
	s := seq.FromSlice(seq.OpsFor[int](), []int{0, 1, 2, 3, 4})
	left := s.Rotate(2)
	if got := left.ToSlice(); got[0] != 2 || got[4] != 1 {
		t.Fatalf("Rotate(2) = %v", got)
	}
	right := s.Rotate(-1)
	if got := right.ToSlice(); got[0] != 4 {
		t.Fatalf("Rotate(-1) = %v", got)
	}
	if !s.Rotate(5).Equal(s) {
		t.Error("expected Rotate(len) to be a no-op")
	}
}

func TestReverse(t *testing.T) {
	s := intSeq(5)
	r := s.Reverse()
	got := r.ToSlice()
	want := []int{4, 3, 2, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Reverse() = %v, want %v", got, want)
		}
	}
}

func TestTransformChangesType(t *testing.T) {
	s := intSeq(4)
	transformed := seq.Transform(s, seq.OpsFor[string](), func(v int) string {
		return string(rune('a' + v))
	})
	got := transformed.ToSlice()
	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Transform() = %v, want %v", got, want)
		}
	}
}

func TestGetSliceStepOne(t *testing.T) {
	s := intSeq(10)
	sub, err := s.GetSlice(2, 6, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{2, 3, 4, 5}
	got := sub.ToSlice()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GetSlice(2,6,1) = %v, want %v", got, want)
		}
	}
}

func TestGetSliceStrided(t *testing.T) {
	s := intSeq(10)
	sub, err := s.GetSlice(0, 10, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 2, 4, 6, 8}
	got := sub.ToSlice()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GetSlice(0,10,2) = %v, want %v", got, want)
		}
	}
}

func TestGetSliceZeroStep(t *testing.T) {
	s := intSeq(5)
	if _, err := s.GetSlice(0, 5, 0); !errors.Is(err, persisterr.ErrRange) {
		t.Errorf("expected zero-step slice to wrap ErrRange, got %v", err)
	}
}

func TestSetSlice(t *testing.T) {
	s := intSeq(6)
	s2 := s.SetSlice(1, 3, []int{100, 101, 102})
	want := []int{0, 100, 101, 102, 3, 4, 5}
	got := s2.ToSlice()
	if len(got) != len(want) {
		t.Fatalf("SetSlice = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SetSlice = %v, want %v", got, want)
		}
	}
}

func TestSetStridedSliceShapeMismatch(t *testing.T) {
	s := intSeq(10)
	if _, err := s.SetStridedSlice(0, 10, 2, []int{1, 2}); !errors.Is(err, persisterr.ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
}

func TestView(t *testing.T) {
	s := intSeq(10)
	chunks, elems, err := s.View(2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 3 || len(elems) != 2 {
		t.Fatalf("expected 3 chunks and 2 elements, got %d/%d", len(chunks), len(elems))
	}
	if elems[0] != 2 || elems[1] != 5 {
		t.Fatalf("expected elems [2 5], got %v", elems)
	}
	if chunks[0].Len() != 2 || chunks[1].Len() != 2 || chunks[2].Len() != 4 {
		t.Fatalf("unexpected chunk sizes: %d/%d/%d", chunks[0].Len(), chunks[1].Len(), chunks[2].Len())
	}
	if _, _, err := s.View(5, 2); !errors.Is(err, persisterr.ErrIndex) {
		t.Errorf("expected non-ascending indices to wrap ErrIndex, got %v", err)
	}
}

func TestChunksOf(t *testing.T) {
	s := intSeq(10)
	chunks, err := s.ChunksOf(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}
	if chunks[3].Len() != 1 {
		t.Errorf("expected last chunk to have 1 element, got %d", chunks[3].Len())
	}
	if _, err := s.ChunksOf(0); !errors.Is(err, persisterr.ErrRange) {
		t.Errorf("expected ChunksOf(0) to wrap ErrRange, got %v", err)
	}
}

func TestEqualCompareHash(t *testing.T) {
	a := intSeq(5)
	b := intSeq(5)
	if !a.Equal(b) {
		t.Error("expected two freshly built equal sequences to compare equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("expected equal sequences to hash equal")
	}
	c := intSeq(6)
	if a.Equal(c) {
		t.Error("expected sequences of different length to compare unequal")
	}
	if a.Compare(c) != -1 {
		t.Errorf("expected a shorter prefix sequence to compare less, got %d", a.Compare(c))
	}
}

func TestIteratorCollect(t *testing.T) {
	s := intSeq(20)
	got := s.Iter().Collect()
	if len(got) != 20 {
		t.Fatalf("expected 20 elements, got %d", len(got))
	}
	rgot := s.ReverseIter().Collect()
	for i := range rgot {
		if rgot[i] != 19-i {
			t.Fatalf("reverse iterator mismatch at %d: got %d", i, rgot[i])
		}
	}
}

func TestIteratorAdvance(t *testing.T) {
	s := intSeq(50)
	it := s.Iter().Advance(10)
	v, _, ok := it.Next()
	if !ok || v != 10 {
		t.Fatalf("expected Advance(10).Next() = 10, got %d, %v", v, ok)
	}
}
