package seq

import (
	"cmp"
	"fmt"

	"github.com/kasparund/persist/internal/xhash"
)

// Ops supplies the value protocol a Sequence needs for the operations that
// actually compare or hash elements (Remove, Index, ordering, Hash,
// Equal); push/view/get/set/insert/erase/split/append/reverse/transform
// never touch it.
type Ops[T any] struct {
	Eq   func(a, b T) bool
	Less func(a, b T) bool
	Hash func(a T) uint64
}

// OpsFor builds the natural Ops for an ordered built-in type, using ==, <
// and FNV-1a hashing of fmt.Sprint(a) — a reasonable default when T has no
// more specific hash available.
func OpsFor[T cmp.Ordered]() Ops[T] {
	return Ops[T]{
		Eq:   func(a, b T) bool { return a == b },
		Less: func(a, b T) bool { return a < b },
		Hash: func(a T) uint64 { return fnv1a(fmt.Sprint(a)) },
	}
}

func fnv1a(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

func hashSlice[T any](ops Ops[T], values []T) uint64 {
	hashes := make([]uint64, len(values))
	for i, v := range values {
		hashes[i] = ops.Hash(v)
	}
	return xhash.Of(hashes)
}
