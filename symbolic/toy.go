package symbolic

import (
	"math/big"

	"github.com/katalvlaran/legion/addr"
)

// ToyState is a deterministic, in-process stand-in for a real symbolic
// state: a node in a hand-built decision tree. It exists so this module's
// tests can exercise the tree, dyeing, and MCTS packages without a real
// solver.
//
// A ToyState with a non-empty Solutions list represents a branch governed by
// one symbolic input byte; Iterate enumerates exactly those byte values, in
// order, then reports exhaustion — modelling a solver whose constraint
// admits a small, known solution set.
type ToyState struct {
	addr       addr.Address
	successors []*ToyState
	solutions  []byte
	bitWidth   int
}

// NewToyState constructs a leaf-or-branch ToyState at addr with no
// constraint and no successors yet; use AddSuccessor and Constrain to build
// out a decision tree.
func NewToyState(address addr.Address) *ToyState {
	return &ToyState{addr: address, bitWidth: 8}
}

// AddSuccessor appends succ as an immediate successor of s, to be returned
// by ToyEngine.Step.
func (s *ToyState) AddSuccessor(succ *ToyState) *ToyState {
	s.successors = append(s.successors, succ)
	return s
}

// Constrain marks s as reachable only through the given set of input byte
// values, which Iterate will enumerate in order.
func (s *ToyState) Constrain(solutions ...byte) *ToyState {
	s.solutions = solutions
	return s
}

// Addr implements State.
func (s *ToyState) Addr() addr.Address { return s.addr }

// HasConstraints implements State.
func (s *ToyState) HasConstraints() bool { return len(s.solutions) > 0 }

// StdinBitWidth implements State.
func (s *ToyState) StdinBitWidth() int {
	if s.bitWidth == 0 {
		return 8
	}
	return s.bitWidth
}

// Iterate implements State.
func (s *ToyState) Iterate() (Iterator, error) {
	values := make([]byte, len(s.solutions))
	copy(values, s.solutions)
	return &toyIterator{values: values}, nil
}

// Clone implements State. ToyState successors are shared (they are part of
// the fixed decision tree), only the receiver's own fields are copied.
func (s *ToyState) Clone() State {
	cp := *s
	return &cp
}

type toyIterator struct {
	values []byte
	pos    int
}

func (it *toyIterator) Next() (*big.Int, bool) {
	if it.pos >= len(it.values) {
		return nil, false
	}
	v := new(big.Int).SetUint64(uint64(it.values[it.pos]))
	it.pos++
	return v, true
}

// ToyEngine is a deterministic Engine over a fixed tree of ToyStates built
// ahead of time with NewToyState, AddSuccessor, and Constrain.
type ToyEngine struct {
	entry *ToyState
}

// NewToyEngine returns an Engine whose EntryState is entry.
func NewToyEngine(entry *ToyState) *ToyEngine {
	return &ToyEngine{entry: entry}
}

// EntryState implements Engine.
func (e *ToyEngine) EntryState() (State, error) {
	return e.entry, nil
}

// Step implements Engine.
func (e *ToyEngine) Step(s State) ([]State, error) {
	ts, ok := s.(*ToyState)
	if !ok {
		return nil, ErrUnsupportedState
	}
	out := make([]State, len(ts.successors))
	for i, succ := range ts.successors {
		out[i] = succ
	}
	return out, nil
}
