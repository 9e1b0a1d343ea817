/*
Package fingertree implements a persistent (immutable) 2-3 finger tree.

A finger tree is a tree annotated at each node with a cached size, giving
amortized O(1) access to both ends and O(log min(i, n−i)) indexed access,
insertion and deletion, O(log min(m, n)) concatenation and O(log n + k)
slice construction. Every "modification" (push, insert, set, erase, split,
append, …) returns a new Tree; the previous incarnation remains valid and
shares structure with the new one — no published node is ever mutated.

This package is the engine underneath package seq; it is usable on its own
but carries none of the slicing/evolver conveniences that seq layers on
top; seq's Iterator wraps the Iterator defined here.
*/
package fingertree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.fingertree'.
func tracer() tracing.Trace {
	return tracing.Select("persist.fingertree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(fmt.Sprintf("fingertree: "+msg, msgargs...))
	}
}
