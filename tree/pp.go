package tree

import (
	"fmt"
	"strings"
)

// colourLetter returns the single-character tag used by String for a
// node's colour: W/R/B/G/P.
func colourLetter(c Colour) string {
	switch c.(type) {
	case *White:
		return "W"
	case *Red:
		return "R"
	case *Black:
		return "B"
	case *Gold:
		return "G"
	case *Phantom:
		return "P"
	default:
		return "?"
	}
}

// String renders the tree as an indented outline, one line per node, for
// diagnostics and test failure messages. Format per node:
//
//	<indent>[id=<NodeID> <colour> addr=<addr or "-"> visited=<n> distinct=<n> selTry=<n> selWin=<n> simTry=<n> simWin=<n>[ exhausted][ fully_explored]]
func (t *Tree) String() string {
	var b strings.Builder
	t.writeNode(&b, Root, 0)
	return b.String()
}

func (t *Tree) writeNode(b *strings.Builder, id NodeID, depth int) {
	n := t.nodes[id]
	b.WriteString(strings.Repeat("  ", depth))

	addrStr := "-"
	if a, ok := n.Addr(); ok {
		addrStr = fmt.Sprintf("0x%x", uint64(a))
	}
	fmt.Fprintf(b, "[id=%d %s addr=%s visited=%d distinct=%d selTry=%d selWin=%d simTry=%d simWin=%d",
		n.id, colourLetter(n.colour), addrStr, n.visited, n.distinct, n.selTry, n.selWin, n.simTry, n.simWin)
	if n.exhausted {
		b.WriteString(" exhausted")
	}
	if n.fullyExplored {
		b.WriteString(" fully_explored")
	}
	b.WriteString("]\n")

	for _, childID := range n.children {
		t.writeNode(b, childID, depth+1)
	}
	if sim, ok := n.Simulation(); ok {
		t.writeNode(b, sim, depth+1)
	}
}
