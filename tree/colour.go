package tree

import "github.com/katalvlaran/legion/symbolic"

// Colour is the sum type over a Node's five possible colourings. Only the
// pointer types defined in this file implement it, so a switch over Colour
// is exhaustive and payload access is a simple type switch rather than a
// family of side-condition booleans.
type Colour interface {
	isColour()
}

// White marks a node present in a concrete trace whose relationship to the
// symbolic engine is not yet known; it carries no payload.
type White struct{}

func (*White) isColour() {}

// Red marks a node confirmed both in the concrete trace and in the symbolic
// engine. Simulation is the NodeID of its Gold sentinel child, created
// alongside the Red colouring: exactly one per Red node.
type Red struct {
	State      symbolic.State
	Simulation NodeID
}

func (*Red) isColour() {}

// Black marks a node the concrete trace reached but the symbolic engine
// could not confirm (a divergence between the two). It owns no Simulation
// child and no symbolic state.
type Black struct{}

func (*Black) isColour() {}

// Gold marks the Simulation sentinel child of a Red node: not itself
// present in any concrete trace, holding the symbolic state mutation draws
// from. Samples is the lazily-constructed, possibly-infinite solver
// iterator (nil until the first quick-sample call).
type Gold struct {
	State   symbolic.State
	Samples symbolic.Iterator
}

func (*Gold) isColour() {}

// Phantom marks a speculative sibling the symbolic engine reports reachable
// but no concrete trace has yet visited. A Phantom is promoted to Red
// in-place the first time a concrete path reaches its address.
type Phantom struct {
	State symbolic.State
}

func (*Phantom) isColour() {}
