// Package symbolic declares the narrow contract this module expects from an
// external symbolic-execution backend, plus a deterministic in-process
// stand-in (ToyEngine/ToyState) used by this module's tests.
//
// The real backend (an angr-like engine reachable over cgo, RPC, or a
// subprocess) is explicitly out of scope for this module: Engine, State,
// and Iterator are interfaces precisely so that swapping in a real backend
// never touches the tree, dyeing, or MCTS packages.
//
// Contract:
//   - Engine.EntryState constructs the initial symbolic state for a fresh run.
//   - Engine.Step yields the immediate successor states of a state — zero,
//     one, or more.
//   - State.Iterate returns a restartable Iterator enumerating solutions to
//     the symbolic stdin bit-vector under the state's path constraint.
//   - Chain repeatedly steps while exactly one successor exists, modelling
//     walking through straight-line code.
package symbolic
