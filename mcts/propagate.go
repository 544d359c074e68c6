package mcts

import (
	"github.com/katalvlaran/legion/expand"
	"github.com/katalvlaran/legion/runctx"
	"github.com/katalvlaran/legion/tree"
)

// Propagate updates every counter touched by one iteration's selection
// descent and its resulting concrete paths. It runs both passes once per
// expansion result: each node receives exactly one increment per concrete
// path, never nested per-sample loops, which is what keeps a node's visit
// count from over-counting a batch of samples that all share one path.
//
// selectionPath must already have any detached Phantom leaf removed by the
// caller. requested is the number of mutants the mutator was asked for
// (Context.Tunables.NumSamples); shortfall compensation applies once, using
// the actual number of results returned.
func Propagate(t *tree.Tree, rc *runctx.Context, selectionPath []tree.NodeID, wasPhantom bool, results []expand.Result, requested int) {
	for i, res := range results {
		propagateOne(t, rc, selectionPath, wasPhantom, res, i == 0)
	}

	shortfall := requested - len(results)
	if shortfall > 0 {
		for _, id := range selectionPath {
			t.Node(id).AddStarvedVisits(uint64(shortfall))
		}
	}
}

func propagateOne(t *tree.Tree, rc *runctx.Context, selectionPath []tree.NodeID, wasPhantom bool, res expand.Result, isFirst bool) {
	concretePath := res.Nodes
	wasNew := res.WasNew

	preservedCount := matchPrefixLength(t, selectionPath, concretePath)
	for i, id := range selectionPath {
		t.Node(id).AddSelection(i < preservedCount)
		rc.IncTTLSel()
	}

	for _, id := range concretePath {
		t.Node(id).AddSimulation(1, boolToUint64(wasNew))
	}
	if len(selectionPath) > 0 && preservedCount < len(selectionPath) {
		// The leaf (often the Gold sentinel picked as this iteration's
		// simulation point) never appears in concretePath, so the loop above
		// never counts it; give it exactly one try here, won iff the
		// simulation surfaced new coverage.
		leaf := selectionPath[len(selectionPath)-1]
		t.Node(leaf).AddSimulation(1, boolToUint64(wasNew))
	}

	if wasPhantom && isFirst {
		for _, id := range concretePath {
			t.Node(id).ClearFullyExplored()
		}
	}

	for _, id := range concretePath {
		t.Node(id).AddCoverage(wasNew)
	}
}

// matchPrefixLength returns the length of the longest common prefix of
// selectionPath and concretePath when compared by node address: a prefix
// of selectionPath is preserved iff the corresponding prefix of
// concretePath has the same addresses.
func matchPrefixLength(t *tree.Tree, selectionPath, concretePath []tree.NodeID) int {
	n := len(selectionPath)
	if len(concretePath) < n {
		n = len(concretePath)
	}
	for i := 0; i < n; i++ {
		selAddr, _ := t.Node(selectionPath[i]).Addr()
		conAddr, _ := t.Node(concretePath[i]).Addr()
		if selAddr != conAddr {
			return i
		}
	}
	return n
}

func boolToUint64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
