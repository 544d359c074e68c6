// Package runctx defines Context, the single explicit record carrying every
// piece of state a driver invocation needs: the run's reproducible RNG, its
// correlation id, its logger and metrics sink, its concurrency budget, its
// tunables, and its run-wide counters.
//
// This keeps every piece of run state — counters, the loaded project, the
// seed list, the discovered-bug flag — threaded explicitly through the
// driver and MCTS controller: there is no package-level singleton
// anywhere in this module.
package runctx
