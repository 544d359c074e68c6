// Package dye implements symbolic alignment: lazily re-establishing which
// tree nodes have a confirmed symbolic-engine counterpart, walking
// straight-line concrete code from the last Red ancestor until either a
// node's address matches a symbolic successor (Red) or the walk diverges or
// terminates (Black). Phantom nodes are passed over, not promoted; package
// expand promotes a Phantom when a concrete path reaches it.
//
// The walk is grounded on the same recursive-descent-with-early-return
// shape as a depth-first search, generalized from graph traversal order to
// "does this node's address match a symbolic successor".
package dye
