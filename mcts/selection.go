package mcts

import (
	"github.com/katalvlaran/legion/dye"
	"github.com/katalvlaran/legion/runctx"
	"github.com/katalvlaran/legion/symbolic"
	"github.com/katalvlaran/legion/tree"
)

// SelectionResult is the outcome of one successful (non-restarted)
// selection descent: the full node list visited, root-first, and the
// terminal leaf chosen for simulation.
type SelectionResult struct {
	Path []tree.NodeID
	Leaf tree.NodeID
}

// Select descends t from the root, repeatedly picking the best-scoring
// child (tree.BestChild), dyeing White nodes via package dye as they are
// encountered, and restarting from the root whenever the descent bottoms
// out on an unpromising Black leaf. It returns ErrNoCandidate once the
// entire tree has been marked fully explored.
func Select(t *tree.Tree, engine symbolic.Engine, rc *runctx.Context) (SelectionResult, error) {
	for {
		if t.Node(tree.Root).FullyExplored() {
			return SelectionResult{}, ErrNoCandidate
		}

		path, leaf, bottomedOut, err := selectOnce(t, engine, rc)
		if err != nil {
			return SelectionResult{}, err
		}
		if bottomedOut {
			continue
		}
		return SelectionResult{Path: path, Leaf: leaf}, nil
	}
}

// selectOnce performs one descent attempt. bottomedOut is true when the
// walk reached a Black leaf and the caller must restart from the root.
func selectOnce(t *tree.Tree, engine symbolic.Engine, rc *runctx.Context) (path []tree.NodeID, leaf tree.NodeID, bottomedOut bool, err error) {
	current := tree.Root
	lastRed := tree.NoNode

	for {
		node := t.Node(current)
		if _, isWhite := node.Colour().(*tree.White); isWhite {
			if lastRed == tree.NoNode {
				return nil, tree.NoNode, false, ErrNoCandidate
			}
			aligned, alignErr := dye.Align(t, engine, current, lastRed)
			if alignErr != nil {
				return nil, tree.NoNode, false, alignErr
			}
			current = aligned
			node = t.Node(current)
		}

		path = append(path, current)
		if _, isRed := node.Colour().(*tree.Red); isRed {
			lastRed = current
		}

		next, ok := tree.BestChild(t, current, rc.Counters.TTLSel, rc.Tunables.Rho, rc.RNG)
		if !ok {
			break
		}
		current = next
	}

	leaf = current
	if _, isBlack := t.Node(leaf).Colour().(*tree.Black); isBlack {
		climbAndMarkFullyExplored(t, path)
		return nil, tree.NoNode, true, nil
	}
	return path, leaf, false, nil
}

// climbAndMarkFullyExplored walks path from the leaf back toward the root,
// marking each node fully explored as long as every one of its
// non-Simulation, non-Phantom children is already fully explored, and
// stopping at the first node that does not qualify.
func climbAndMarkFullyExplored(t *tree.Tree, path []tree.NodeID) {
	for i := len(path) - 1; i >= 0; i-- {
		id := path[i]
		if !t.AllNonSimulationChildrenFullyExplored(id) {
			return
		}
		t.MarkFullyExplored(id)
	}
}
