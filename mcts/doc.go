// Package mcts implements the four-stage Monte Carlo Tree Search
// controller: Selection, Simulation, Expansion, and Propagation, run once
// per iteration by the driver.
//
// Selection descends the tree picking the best-scoring child at each step
// (package tree's Uct/BestChild), invoking package dye's alignment walk on
// White nodes and restarting from the root whenever the descent bottoms out
// on an unpromising Black leaf. Simulation mutates the selected node
// (package mutate) and traces each candidate input (package tracer),
// optionally concurrently via golang.org/x/sync/errgroup bounded by
// Context.Tunables.Concurrency. Expansion folds each resulting path into
// the tree (package expand). Propagation updates every counter the
// selection and concrete paths touched, once per concrete path, on the main
// goroutine only — no package in this module ever mutates the tree
// concurrently with another goroutine.
package mcts
