/*
Package seq exposes a persistent (immutable) sequence, built atop package
fingertree's 2-3 finger tree engine. Every "modification" (PushFront, Set,
Insert, Append, …) returns a new Sequence; the previous incarnation remains
valid and shares structure with the new one.

Where fingertree panics on a caller bug (an index out of its own internal
bookkeeping), this package validates indices itself and returns errors from
package persisterr at the documented boundary, matching Go convention for a
public API rather than the engine's assertion-level panics.
*/
package seq

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.seq'.
func tracer() tracing.Trace {
	return tracing.Select("persist.seq")
}

func assertThat(that bool, msg string, args ...interface{}) {
	if !that {
		panic(fmt.Sprintf("seq: "+msg, args...))
	}
}
