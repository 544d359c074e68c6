package mcts

import (
	"math/big"

	"github.com/katalvlaran/legion/symbolic"
	"github.com/katalvlaran/legion/tree"
)

// activeState returns the symbolic state attached to node's colour, or nil
// if it carries none (White or Black).
func activeState(n *tree.Node) symbolic.State {
	switch c := n.Colour().(type) {
	case *tree.Gold:
		return c.State
	case *tree.Phantom:
		return c.State
	case *tree.Red:
		return c.State
	default:
		return nil
	}
}

// iteratorFor returns a solver iterator over state. A Gold node's iterator
// is created once and cached on its colour payload; every other colour
// gets a fresh, single-use iterator, since a Phantom leaf is detached
// immediately after selection and a Red node reached directly as a leaf
// never repeats its own mutation across iterations the way its Gold child
// does.
func iteratorFor(n *tree.Node, state symbolic.State) symbolic.Iterator {
	if gold, ok := n.Colour().(*tree.Gold); ok {
		if gold.Samples == nil {
			iter, err := state.Iterate()
			if err != nil {
				return emptyIterator{}
			}
			gold.Samples = iter
		}
		return gold.Samples
	}
	iter, err := state.Iterate()
	if err != nil {
		return emptyIterator{}
	}
	return iter
}

// emptyIterator is returned when a state's Iterate call fails, so mutation
// degrades to an immediate exhaustion (and hence a random-sample fallback
// on the node's next visit) rather than panicking mid-iteration.
type emptyIterator struct{}

func (emptyIterator) Next() (*big.Int, bool) { return nil, false }
