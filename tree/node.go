package tree

import "github.com/katalvlaran/legion/addr"

// NodeID is a stable index into a Tree's node arena. It replaces owning
// pointers for parent/child/Simulation back- and cross-references, so
// cyclic ownership never has to be modelled with unsafe or finalizer
// tricks.
type NodeID int

// NoNode is the zero-value sentinel for "no such node" (a root's Parent, or
// a node with no Simulation child).
const NoNode NodeID = -1

// Node is a vertex of the execution-path tree.
type Node struct {
	id      NodeID
	hasAddr bool
	addr    addr.Address

	parent   NodeID
	children map[addr.Address]NodeID

	colour        Colour
	exhausted     bool
	fullyExplored bool

	selTry, selWin     uint64
	simTry, simWin     uint64
	visited, distinct  uint64
}

// ID returns the node's stable arena index.
func (n *Node) ID() NodeID { return n.id }

// Addr returns the node's address and true, or the zero Address and false
// if unset (only the root before the first seed trace).
func (n *Node) Addr() (addr.Address, bool) { return n.addr, n.hasAddr }

// MustAddr returns the node's address, panicking if it is unset. Every
// caller outside of root initialisation holds this precondition already.
func (n *Node) MustAddr() addr.Address {
	if !n.hasAddr {
		panic("tree: node address is unset")
	}
	return n.addr
}

// Parent returns the owning parent's NodeID, or NoNode for the root.
func (n *Node) Parent() NodeID { return n.parent }

// Colour returns the node's current colour.
func (n *Node) Colour() Colour { return n.colour }

// Children returns the node's concrete/Phantom children, keyed by address.
// The Simulation child (if any) is not included; fetch it via Simulation().
// The returned map must not be mutated by the caller.
func (n *Node) Children() map[addr.Address]NodeID { return n.children }

// Simulation returns the NodeID of the node's Gold sentinel child and true,
// or NoNode and false if the node is not Red or has none (e.g. already
// released by MarkFullyExplored).
func (n *Node) Simulation() (NodeID, bool) {
	r, ok := n.colour.(*Red)
	if !ok || r.Simulation == NoNode {
		return NoNode, false
	}
	return r.Simulation, true
}

// IsPhantom reports whether the node is a speculative Phantom sibling.
func (n *Node) IsPhantom() bool {
	_, ok := n.colour.(*Phantom)
	return ok
}

// IsDiverging reports whether the node has more than one concrete/Phantom
// child. The Simulation child never counts, since it is tracked separately
// from Children.
func (n *Node) IsDiverging() bool {
	return len(n.children) > 1
}

// Exhausted reports whether this node's solver iterator (if Gold) or its
// Gold child's iterator (if Red) has been drained.
func (n *Node) Exhausted() bool { return n.exhausted }

// FullyExplored reports whether every concrete, non-Phantom descendant of
// this node has itself been marked FullyExplored.
func (n *Node) FullyExplored() bool { return n.fullyExplored }

// SelTry, SelWin, SimTry, SimWin, Visited, and Distinct are the MCTS
// bookkeeping counters; all are monotonically non-decreasing and mutated
// only via the propagation stage (package mcts) or the arena helpers in
// this package that keep them consistent with the colour lifecycle.
func (n *Node) SelTry() uint64   { return n.selTry }
func (n *Node) SelWin() uint64   { return n.selWin }
func (n *Node) SimTry() uint64   { return n.simTry }
func (n *Node) SimWin() uint64   { return n.simWin }
func (n *Node) Visited() uint64  { return n.visited }
func (n *Node) Distinct() uint64 { return n.distinct }

// AddSelection records one selection-stage trial on this node: try is always
// incremented; win is incremented iff preserved is true. Try never falls
// behind win.
func (n *Node) AddSelection(preserved bool) {
	n.selTry++
	if preserved {
		n.selWin++
	}
}

// AddSimulation records one simulation-stage trial on this node: try is
// always incremented by tryDelta; win by winDelta. Try never falls behind
// win.
func (n *Node) AddSimulation(tryDelta, winDelta uint64) {
	n.simTry += tryDelta
	n.simWin += winDelta
}

// AddCoverage records one concrete-path traversal through this node:
// Visited always increments by one, Distinct by 1 if wasNew. Visited never
// falls behind Distinct.
func (n *Node) AddCoverage(wasNew bool) {
	n.visited++
	if wasNew {
		n.distinct++
	}
}

// AddStarvedVisits compensates Visited when a mutator returned fewer
// mutants than requested, so a starved branch does not look artificially
// attractive next to one that was mutated its full quota.
func (n *Node) AddStarvedVisits(shortfall uint64) {
	n.visited += shortfall
}

// ClearFullyExplored resets FullyExplored to false. Used when a Phantom's
// simulation reveals the real subtree may be deeper than previously
// assumed, so the parent's fully-explored status needs to be recomputed.
func (n *Node) ClearFullyExplored() {
	n.fullyExplored = false
}
