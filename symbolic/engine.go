package symbolic

import (
	"math/big"

	"github.com/katalvlaran/legion/addr"
)

// State is an opaque symbolic-engine state. A tree node carries one (the
// Node.Colour payload) whenever its colour is Red, Gold, or Phantom.
type State interface {
	// Addr returns the basic-block address this state has reached.
	Addr() addr.Address

	// HasConstraints reports whether the state's path constraint is
	// non-empty. The mutator (package mutate) quick-samples when true and
	// falls back to random sampling otherwise.
	HasConstraints() bool

	// StdinBitWidth returns the width, in bits, of the symbolic stdin
	// value the path constraint is expressed over. Quick-sample values are
	// encoded as big-endian byte strings of length ceil(width/8).
	StdinBitWidth() int

	// Iterate returns a fresh, restartable Iterator enumerating solutions
	// to the symbolic stdin value under this state's path constraint.
	// Calling Iterate again after a previous Iterator was partially or
	// fully drained starts a new enumeration from the beginning. Package
	// mcts caches a Gold node's first Iterator on its payload and does not
	// call Iterate again for that node, but a Red or Phantom leaf gets a
	// fresh Iterator on every visit, so implementations must not assume
	// single-use.
	Iterate() (Iterator, error)

	// Clone returns a state value independent of the receiver, usable as
	// the Simulation (Gold) child's starting point. It may share immutable
	// underlying data with the receiver.
	Clone() State
}

// Iterator is a lazy, possibly-infinite, restartable producer of
// solver-satisfying stdin values, owned exclusively by the Gold node that
// created it.
type Iterator interface {
	// Next returns the next value and true, or nil and false once the
	// solution sequence is exhausted. A false return is permanent for that
	// Iterator instance.
	Next() (*big.Int, bool)
}

// Engine is the narrow contract this module expects of an external
// symbolic-execution backend.
type Engine interface {
	// EntryState constructs the initial symbolic state: an entry point
	// whose stdin is an unconstrained symbolic byte stream.
	EntryState() (State, error)

	// Step yields the immediate successor states of s: zero if s is a
	// terminal state, one for straight-line code, more than one at a
	// branch the engine can resolve both ways.
	Step(s State) ([]State, error)
}

// Chain repeatedly steps s while exactly one successor exists, returning the
// final successor set once execution branches (possibly zero, possibly more
// than one states) or the engine reports a terminal state (empty result).
// This realises walking through straight-line code, the reference point
// used by dyeing (package dye) to re-align the tree with the symbolic
// engine after a Red node.
func Chain(e Engine, s State) ([]State, error) {
	succs, err := e.Step(s)
	if err != nil {
		return nil, err
	}
	for len(succs) == 1 {
		succs, err = e.Step(succs[0])
		if err != nil {
			return nil, err
		}
	}
	return succs, nil
}
