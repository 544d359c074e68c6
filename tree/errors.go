package tree

import "errors"

// ErrNotWhite is returned when a dye operation targets a node whose colour
// is not White; only a White node may be dyed Red or Black.
var ErrNotWhite = errors.New("tree: dye requires a White node")

// ErrNotPhantom is returned when PromotePhantom targets a node whose colour
// is not Phantom.
var ErrNotPhantom = errors.New("tree: promote requires a Phantom node")

// ErrAlreadyExhausted reports a node that is already marked exhausted; the
// exhausted flag only ever moves forward. MarkExhausted does not return it:
// marking an exhausted node again is a no-op.
var ErrAlreadyExhausted = errors.New("tree: node already exhausted")

// ErrAddressMismatch signals a violated expansion precondition: the root
// already has an address and a caller tried to expand a path whose first
// address differs from it.
var ErrAddressMismatch = errors.New("tree: path does not start at the tree's root address")

// ErrNoSimulation reports a Gold-child operation on a node that has none
// (e.g. a Black node, or a FullyExplored Red node whose Simulation child was
// already released). The mutators in this package do not return it; they
// treat a missing Simulation child as nothing to do.
var ErrNoSimulation = errors.New("tree: node has no Simulation child")
