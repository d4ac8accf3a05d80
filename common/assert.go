package common

import "fmt"

// Assert checks a condition and panics if it is false.
//
// Reduction relies on invariants guaranteed by the transport layer
// (e.g. a reference schema always accompanies at least one returned
// server response). When one of those is broken, continuing would risk
// emitting silently wrong data, so we fail loudly with a stack trace
// pointing at the upstream bug rather than substituting a default.
//
// Do not use Assert for conditions that can legitimately occur at
// runtime (bad requested columns, incompatible server schemas); those
// return errors or degrade gracefully.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
