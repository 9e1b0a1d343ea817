/*
Package sortedmap implements a persistent (immutable) in-memory sorted map,
ordered by key and weight-balanced per Adams' algorithm (the same
discipline used by Haskell's Data.Map): every subtree's two children differ
in size by no more than a factor of delta, rebalanced on insert/delete via
single or double rotations chosen by the gamma ratio. Every "modification"
returns a new Map; the previous incarnation remains valid and shares
structure with the new one.
*/
package sortedmap

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.sortedmap'.
func tracer() tracing.Trace {
	return tracing.Select("persist.sortedmap")
}

func assertThat(that bool, msg string, args ...interface{}) {
	if !that {
		panic(fmt.Sprintf("sortedmap: "+msg, args...))
	}
}
