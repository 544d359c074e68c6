package tree

import (
	"math"
	"math/rand"
	"sort"
)

// Uct scores node for selection using the standard UCT formula: a node
// with zero selection trials scores +Inf (always picked once); a
// FullyExplored node scores 0 (never picked while an unexplored sibling
// remains); otherwise the score is an exploitation term plus an
// exploration term scaled by rho.
//
// ttlSel is the run-wide total selection count (TTL_SEL) at the time of
// scoring, not node.SelTry(); it is shared across every candidate in a
// BestChild call.
func Uct(node *Node, ttlSel uint64, rho float64) float64 {
	if node.fullyExplored {
		return 0
	}
	if node.selTry == 0 {
		return math.Inf(1)
	}
	exploit := float64(node.simWin) / float64(node.simTry+1)
	explore := rho * math.Sqrt(math.Log(float64(ttlSel+1))/float64(node.selTry))
	return exploit + explore
}

// BestChild returns the highest-UCT-scoring candidate among id's concrete
// children and, if id is Red, its Simulation child. The Gold sentinel
// competes for selection exactly like any other child, which is how
// delegation to the Simulation state is realised structurally rather than
// by any special case inside Uct itself.
//
// Ties are broken uniformly at random via rng, so repeated runs with a
// fixed seed are reproducible but a frozen ordering over Go's randomised
// map iteration never leaks into node choice. BestChild reports false if id
// has no candidates at all (a leaf Black node, or a Red node whose
// Simulation was already released and which has no concrete children).
func BestChild(t *Tree, id NodeID, ttlSel uint64, rho float64, rng *rand.Rand) (NodeID, bool) {
	n := t.nodes[id]
	candidates := make([]NodeID, 0, len(n.children)+1)
	for _, childID := range n.children {
		candidates = append(candidates, childID)
	}
	if sim, ok := n.Simulation(); ok {
		candidates = append(candidates, sim)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	if len(candidates) == 0 {
		return NoNode, false
	}

	best := candidates[0]
	bestScore := Uct(t.nodes[best], ttlSel, rho)
	tied := []NodeID{best}
	for _, c := range candidates[1:] {
		score := Uct(t.nodes[c], ttlSel, rho)
		switch {
		case score > bestScore:
			best, bestScore = c, score
			tied = tied[:0]
			tied = append(tied, c)
		case score == bestScore:
			tied = append(tied, c)
		}
	}
	if len(tied) == 1 {
		return best, true
	}
	return tied[rng.Intn(len(tied))], true
}
