package seq

// Evolver is a single-owner wrapper holding one Sequence: every mutating
// method reassigns the held sequence to the result of the corresponding
// persistent operation, so a caller doing a long run of edits doesn't have
// to keep threading the result of one call into the next by hand.
// Observational methods simply delegate to the held sequence.
type Evolver[T any] struct {
	cur Sequence[T]
}

// NewEvolver wraps s for in-place-style editing.
func NewEvolver[T any](s Sequence[T]) *Evolver[T] {
	return &Evolver[T]{cur: s}
}

// Persistent returns the current sequence snapshot.
func (e *Evolver[T]) Persistent() Sequence[T] { return e.cur }

// Clear resets the held sequence to empty, keeping its Ops.
func (e *Evolver[T]) Clear() {
	e.cur = e.cur.TakeFront(0)
}

// Len, IsEmpty, Get, ToSlice, Front, Back delegate to the held sequence.
func (e *Evolver[T]) Len() int             { return e.cur.Len() }
func (e *Evolver[T]) IsEmpty() bool        { return e.cur.IsEmpty() }
func (e *Evolver[T]) ToSlice() []T         { return e.cur.ToSlice() }
func (e *Evolver[T]) Get(i int) (T, error) { return e.cur.Get(i) }
func (e *Evolver[T]) Front() (T, error)    { return e.cur.Front() }
func (e *Evolver[T]) Back() (T, error)     { return e.cur.Back() }

// PushFront prepends v.
func (e *Evolver[T]) PushFront(v T) { e.cur = e.cur.PushFront(v) }

// PushBack appends v.
func (e *Evolver[T]) PushBack(v T) { e.cur = e.cur.PushBack(v) }

// Set replaces the element at i, indexing past the end reporting an error
// and leaving the evolver unchanged.
func (e *Evolver[T]) Set(i int, v T) error {
	next, err := e.cur.Set(i, v)
	if err != nil {
		return err
	}
	e.cur = next
	return nil
}

// Insert inserts v at i, clamped as Sequence.Insert clamps.
func (e *Evolver[T]) Insert(i int, v T) { e.cur = e.cur.Insert(i, v) }

// Delete removes the element at i.
func (e *Evolver[T]) Delete(i int) error {
	next, err := e.cur.Erase(i)
	if err != nil {
		return err
	}
	e.cur = next
	return nil
}

// Pop removes and returns the element at i, defaulting to the last element
// when i is omitted by passing -1.
func (e *Evolver[T]) Pop(i int) (T, error) {
	v, err := e.cur.Get(i)
	if err != nil {
		return v, err
	}
	next, err := e.cur.Erase(i)
	if err != nil {
		return v, err
	}
	e.cur = next
	return v, nil
}

// Extend appends items in bulk, O(log n + k) rather than k individual
// PushBack calls; grounded in the original C++ supporting-sequence batch
// the source accumulates before folding back into the tree.
func (e *Evolver[T]) Extend(items ...T) {
	e.cur = e.cur.Append(FromSlice(e.cur.ops, items))
}

// ExtendFront prepends items in bulk, preserving their relative order.
func (e *Evolver[T]) ExtendFront(items ...T) {
	e.cur = FromSlice(e.cur.ops, items).Append(e.cur)
}
