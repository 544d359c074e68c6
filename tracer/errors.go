package tracer

import "errors"

// ErrSpawn wraps a failure to start the target binary (missing file, exec
// permission denied, and similar os/exec.Start errors).
var ErrSpawn = errors.New("tracer: failed to spawn target binary")

// ErrWait wraps a failure to await the target binary that is not itself an
// ExitError (a pipe failure, a killed process whose Wait errors oddly).
var ErrWait = errors.New("tracer: failed to wait for target binary")

// ErrMisalignedTrace is returned when the child's stderr byte count is not
// a multiple of 8, so it cannot be parsed as packed 64-bit addresses.
var ErrMisalignedTrace = errors.New("tracer: stderr trace length is not a multiple of 8")

// ErrUnknownInput is returned by ToyRunner when given an input with no
// matching table entry.
var ErrUnknownInput = errors.New("tracer: no toy trace registered for this input")
