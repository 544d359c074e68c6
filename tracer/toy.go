package tracer

import "github.com/katalvlaran/legion/addr"

// ToyEntry is one row of a ToyRunner's input table: the path the target
// would have visited, and whether that run would have hit the bug sentinel.
type ToyEntry struct {
	Path     addr.Path
	BugFound bool
}

// ToyRunner is a deterministic, in-process stand-in for a real target
// binary, keyed by the exact input byte string. It exists so this module's
// tests can exercise the full controller loop without a compiled target.
type ToyRunner struct {
	table map[string]ToyEntry
}

// NewToyRunner returns an empty ToyRunner; populate it with Register.
func NewToyRunner() *ToyRunner {
	return &ToyRunner{table: make(map[string]ToyEntry)}
}

// Register adds or replaces the entry for input, returning the runner so
// calls can be chained while building a scenario.
func (r *ToyRunner) Register(input []byte, path addr.Path, bugFound bool) *ToyRunner {
	r.table[string(input)] = ToyEntry{Path: path, BugFound: bugFound}
	return r
}

// Trace implements TraceRunner, looking up input in the registered table.
func (r *ToyRunner) Trace(input []byte) (Result, error) {
	entry, ok := r.table[string(input)]
	if !ok {
		return Result{}, ErrUnknownInput
	}
	return Result{Path: entry.Path.Clone(), BugFound: entry.BugFound}, nil
}
