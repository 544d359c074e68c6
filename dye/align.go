package dye

import (
	"github.com/katalvlaran/legion/symbolic"
	"github.com/katalvlaran/legion/tree"
)

// Align performs the symbolic-alignment walk: starting at the White node
// start, it compares start's address against the
// symbolic successors one "line" below lastRed's Simulation state. A match
// dyes start Red (attaching unmatched successors to lastRed as Phantom
// children); otherwise it dyes start Black and, if start is not diverging
// and has exactly one child, repeats the comparison one level deeper.
//
// Align returns the NodeID where the walk stopped: a freshly-Red node on
// success, or the deepest Black node reached (a leaf or a diverging node)
// on failure. lastRed never changes during one Align call — the symbolic
// reference point is always the same Gold state's Chain, recomputed each
// time a remaining successor count needs confirming it is still the
// decision point one level below the last confirmed Red node.
func Align(t *tree.Tree, engine symbolic.Engine, start, lastRed tree.NodeID) (tree.NodeID, error) {
	current := start
	for {
		succs, err := simulationSuccessors(t, engine, lastRed)
		if err != nil {
			return current, err
		}

		node := t.Node(current)
		if !node.IsPhantom() {
			if idx := indexOfMatch(succs, node); idx >= 0 {
				matched := succs[idx]
				if err := t.DyeRed(current, matched); err != nil {
					return current, err
				}
				remaining := append(succs[:idx:idx], succs[idx+1:]...)
				attachPhantoms(t, lastRed, remaining)
				return current, nil
			}
			if err := t.DyeBlack(current); err != nil {
				return current, err
			}
		}

		if len(node.Children()) != 1 {
			return current, nil
		}
		current = soleChild(node)
	}
}

// simulationSuccessors returns the symbolic successors one straight-line
// chain below lastRed's Simulation (Gold) state.
func simulationSuccessors(t *tree.Tree, engine symbolic.Engine, lastRed tree.NodeID) ([]symbolic.State, error) {
	sim, ok := t.Node(lastRed).Simulation()
	if !ok {
		return nil, ErrNoSimulationState
	}
	gold, ok := t.Node(sim).Colour().(*tree.Gold)
	if !ok {
		return nil, ErrNoSimulationState
	}
	return symbolic.Chain(engine, gold.State)
}

// indexOfMatch returns the index into succs whose address equals node's, or
// -1 if none matches or node has no address yet.
func indexOfMatch(succs []symbolic.State, node *tree.Node) int {
	nodeAddr, ok := node.Addr()
	if !ok {
		return -1
	}
	for i, s := range succs {
		if s.Addr() == nodeAddr {
			return i
		}
	}
	return -1
}

// attachPhantoms attaches a Phantom child to parent for every state in
// succs not already represented among parent's children.
func attachPhantoms(t *tree.Tree, parent tree.NodeID, succs []symbolic.State) {
	p := t.Node(parent)
	for _, s := range succs {
		if _, exists := p.Children()[s.Addr()]; exists {
			continue
		}
		t.AddPhantom(parent, s.Addr(), s)
	}
}

// soleChild returns n's only child. The caller guarantees len(n.Children())
// == 1.
func soleChild(n *tree.Node) tree.NodeID {
	for _, c := range n.Children() {
		return c
	}
	panic("dye: soleChild called on a node without exactly one child")
}
