// Package tracer runs a target binary against a concrete input and turns
// its basic-block trace into an addr.Path.
//
// TraceRunner is an interface so the MCTS controller never depends on how a
// trace is obtained: ProcessRunner spawns the real binary with os/exec,
// piping the input to stdin and parsing a little-endian-packed address
// stream off stderr; ToyRunner is a deterministic in-process stand-in over
// a fixed input table, used by this module's tests.
//
// Features:
//   - Single trace(input) -> (Path, bugFound, error) operation, shared by
//     both runner implementations via the TraceRunner interface.
//   - Exit status 100 is the bug-found sentinel; every other status (zero
//     or non-zero) is a normal run.
//   - Malformed stderr (a length not a multiple of 8) is a hard error, not
//     a partial trace.
//
// Errors: ErrSpawn wraps a failure to start the child process; ErrWait
// wraps a failure to await it; ErrMisalignedTrace reports a stderr byte
// count that is not a multiple of 8.
package tracer
