package tree

import (
	"fmt"

	"github.com/katalvlaran/legion/addr"
	"github.com/katalvlaran/legion/symbolic"
)

// Root is the arena index of the tree's root node; it never changes for the
// lifetime of a Tree.
const Root NodeID = 0

// Tree is the arena holding every Node ever created during a run. Nodes are
// addressed by NodeID, never by pointer, so ownership is explicit and
// destruction (MarkFullyExplored releasing a Simulation child, or
// DetachPhantom) never has to chase back-references.
//
// Tree is not safe for concurrent use; it is mutated only by the MCTS
// controller on the main goroutine.
type Tree struct {
	nodes []*Node
}

// New returns a Tree containing a single, addressless White root node. The
// root gets its address the first time a concrete seed trace runs.
func New() *Tree {
	t := &Tree{}
	t.newNode(NoNode, 0, false)
	t.nodes[Root].colour = &White{}
	return t
}

func (t *Tree) newNode(parent NodeID, a addr.Address, hasAddr bool) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &Node{
		id:       id,
		parent:   parent,
		addr:     a,
		hasAddr:  hasAddr,
		children: make(map[addr.Address]NodeID),
		colour:   &White{},
	})
	return id
}

// Node returns the node at id. It panics on an out-of-range id, which can
// only happen from a programming error (arena ids are never reused or
// guessed by callers outside this package).
func (t *Tree) Node(id NodeID) *Node {
	if int(id) < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("tree: invalid NodeID %d", id))
	}
	return t.nodes[id]
}

// Len returns the number of nodes ever allocated in the arena (including
// released Simulation/Phantom nodes, which remain addressable but detached).
func (t *Tree) Len() int { return len(t.nodes) }

// SetRootAddr fixes the root's address the first time a concrete path is
// observed, mirroring it onto the root's Simulation child if one already
// exists (it will, since the driver dyes the root Red before running the
// seed).
func (t *Tree) SetRootAddr(a addr.Address) {
	root := t.nodes[Root]
	root.addr = a
	root.hasAddr = true
	if sim, ok := root.Simulation(); ok {
		t.nodes[sim].addr = a
		t.nodes[sim].hasAddr = true
	}
}

// AddChild returns the existing child of parent at address a if one exists,
// or creates a new White child. The returned bool is true iff a new node
// was created.
func (t *Tree) AddChild(parent NodeID, a addr.Address) (NodeID, bool) {
	p := t.nodes[parent]
	if id, ok := p.children[a]; ok {
		return id, false
	}
	id := t.newNode(parent, a, true)
	p.children[a] = id
	return id, true
}

// AddPhantom attaches a speculative Phantom child at address a to parent,
// carrying state, unless parent already has a child (concrete or Phantom)
// at that address. Returns the child id and whether a new node was created.
func (t *Tree) AddPhantom(parent NodeID, a addr.Address, state symbolic.State) (NodeID, bool) {
	p := t.nodes[parent]
	if id, ok := p.children[a]; ok {
		return id, false
	}
	id := t.newNode(parent, a, true)
	t.nodes[id].colour = &Phantom{State: state}
	p.children[a] = id
	return id, true
}

// DyeRed colours a White node Red with the given symbolic state and creates
// its Gold Simulation child, sharing the Red node's address and state
// object identity. It returns ErrNotWhite if id is not currently White.
func (t *Tree) DyeRed(id NodeID, state symbolic.State) error {
	n := t.nodes[id]
	if _, ok := n.colour.(*White); !ok {
		return ErrNotWhite
	}
	gold := t.newNode(id, n.addr, n.hasAddr)
	t.nodes[gold].colour = &Gold{State: state}
	n.colour = &Red{State: state, Simulation: gold}
	return nil
}

// DyeBlack colours a White node Black: concrete-only, no symbolic state, no
// Simulation child. Returns ErrNotWhite if id is not currently White.
func (t *Tree) DyeBlack(id NodeID) error {
	n := t.nodes[id]
	if _, ok := n.colour.(*White); !ok {
		return ErrNotWhite
	}
	n.colour = &Black{}
	return nil
}

// PromotePhantom converts an existing Phantom node into a Red node in
// place, reusing its already-present symbolic state and creating its Gold
// Simulation child. Returns ErrNotPhantom if id is not currently Phantom.
func (t *Tree) PromotePhantom(id NodeID) error {
	n := t.nodes[id]
	ph, ok := n.colour.(*Phantom)
	if !ok {
		return ErrNotPhantom
	}
	gold := t.newNode(id, n.addr, n.hasAddr)
	t.nodes[gold].colour = &Gold{State: ph.State}
	n.colour = &Red{State: ph.State, Simulation: gold}
	return nil
}

// DetachPhantom removes a Phantom node from its parent's children map. A
// selected Phantom is detached before tracing, since concrete execution
// will re-create proper children for whatever it actually reaches.
func (t *Tree) DetachPhantom(id NodeID) {
	n := t.nodes[id]
	if !n.IsPhantom() {
		return
	}
	parent := t.nodes[n.parent]
	if a, ok := n.Addr(); ok {
		if cur, exists := parent.children[a]; exists && cur == id {
			delete(parent.children, a)
		}
	}
}

// MarkExhausted marks id's solver iterator as drained and mirrors the
// flag: on a Red node it mirrors onto the Gold child; on a Gold node it
// mirrors onto the Red parent (the parent's sampler failed to produce
// useful novelty through this branch).
func (t *Tree) MarkExhausted(id NodeID) {
	n := t.nodes[id]
	if n.exhausted {
		return
	}
	n.exhausted = true
	switch c := n.colour.(type) {
	case *Red:
		if c.Simulation != NoNode {
			t.nodes[c.Simulation].exhausted = true
		}
	case *Gold:
		t.nodes[n.parent].exhausted = true
	}
}

// MarkFullyExplored marks id as fully explored and releases its Simulation
// child, discarding the attached symbolic state: a fully explored node
// never keeps one.
func (t *Tree) MarkFullyExplored(id NodeID) {
	n := t.nodes[id]
	n.fullyExplored = true
	t.releaseSimulation(n)
}

// releaseSimulation drops n's Gold child, if any, replacing the Red payload
// with one whose Simulation is NoNode. The Gold node itself stays in the
// arena (its NodeID may still be referenced by stale selection lists from
// the in-flight iteration) but is no longer reachable from its parent.
func (t *Tree) releaseSimulation(n *Node) {
	r, ok := n.colour.(*Red)
	if !ok || r.Simulation == NoNode {
		return
	}
	n.colour = &Red{State: r.State, Simulation: NoNode}
}

// AllNonSimulationChildrenFullyExplored reports whether every non-Phantom
// child in id's Children map is FullyExplored. A node with no such children
// vacuously satisfies this.
func (t *Tree) AllNonSimulationChildrenFullyExplored(id NodeID) bool {
	n := t.nodes[id]
	for _, childID := range n.children {
		child := t.nodes[childID]
		if child.IsPhantom() {
			continue
		}
		if !child.fullyExplored {
			return false
		}
	}
	return true
}
