package tracer

import "github.com/katalvlaran/legion/addr"

// BugExitStatus is the child exit status that signals a discovered bug.
// Any other status is a normal termination.
const BugExitStatus = 100

// Result is the outcome of one trace call: the concrete basic-block path
// the child visited, and whether its exit status was the bug sentinel.
type Result struct {
	Path     addr.Path
	BugFound bool
}

// TraceRunner spawns or simulates one run of the target against input and
// reports the resulting concrete path. Trace must not retry on failure; a
// failed run is reported to the caller as an error.
type TraceRunner interface {
	Trace(input []byte) (Result, error)
}
