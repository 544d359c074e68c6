package mcts

import "errors"

// ErrSelectionRestart names the condition in which selection bottoms out on
// an unpromising leaf and the descent must restart from the root. Select
// handles that restart itself (selectOnce reports it through its
// bottomedOut result), so no function in this package returns this value.
var ErrSelectionRestart = errors.New("mcts: selection must restart from root")

// ErrNoCandidate is returned by Select when the root is marked fully
// explored, or when a descent reaches a White node with no Red ancestor to
// align it against — the tree has nothing left to explore.
var ErrNoCandidate = errors.New("mcts: no selectable candidate remains in the tree")
