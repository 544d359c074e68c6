// Package tree implements the execution-path tree: the arena of Nodes,
// their colour lifecycle, and the UCT scoring used to pick a child during
// MCTS selection.
//
// Nodes live in an arena (Tree.nodes) addressed by a stable NodeID rather
// than by owning pointer: a Red node's Simulation child, and every node's
// parent, are NodeIDs. This makes the mark-fully-explored bottom-up walk and
// Simulation-child release cheap and leak-free, and sidesteps Go's lack of a
// native cyclic-ownership story for parent back-references.
//
// Colour is modelled as a sum type (the Colour interface, implemented only
// by the five unexported-construction *White/*Red/*Black/*Gold/*Phantom
// variants) so that illegal combinations — a Black node with a Simulation
// child, a White node carrying a symbolic state — are unrepresentable.
//
// Key invariants, enforced by the exported mutators and never left to
// callers:
//   - exactly one node per distinct concrete prefix, at most one Phantom per
//     speculative sibling state per Red parent, and exactly one Gold child
//     per Red node;
//   - colour only ever transitions White to Red or Black, or Phantom to Red
//     by promotion;
//   - a fully-explored node never keeps a Simulation child;
//   - an exhausted flag on a Red node always mirrors onto its Gold child and
//     vice versa;
//   - every counter is monotonically non-decreasing, and every try counter
//     is always at least as large as its matching win counter.
package tree
