// Package driver wires together the execution-path tree, the symbolic
// engine, the trace runner, and the MCTS controller into one runnable
// fuzzing session. Run is its top-level entrypoint.
//
// Run bootstraps the tree from a single seed input, then repeatedly calls
// mcts.RunIteration until the session's termination conditions trip.
package driver
