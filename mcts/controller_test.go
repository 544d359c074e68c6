package mcts_test

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/legion/addr"
	"github.com/katalvlaran/legion/mcts"
	"github.com/katalvlaran/legion/metrics"
	"github.com/katalvlaran/legion/runctx"
	"github.com/katalvlaran/legion/symbolic"
	"github.com/katalvlaran/legion/tracer"
	"github.com/katalvlaran/legion/tree"
)

func newTestContext(numSamples int) *runctx.Context {
	tun := runctx.DefaultTunables()
	tun.NumSamples = numSamples
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return runctx.New(rand.New(rand.NewSource(1)), logger, metrics.New(), tun)
}

// buildSingleIfScenario wires a two-branch decision at the entry point: the
// entry's only known solver solution is the byte 65, leading to branchA;
// branchOther is reachable
// symbolically but has no known concrete input yet. branchA itself is
// constrained to the byte 66, so a second RunIteration call quick-samples
// deterministically instead of falling back to random bytes.
func buildSingleIfScenario() (*symbolic.ToyEngine, *tracer.ToyRunner) {
	entry := symbolic.NewToyState(addr.Address(1)).Constrain(65)
	branchA := symbolic.NewToyState(addr.Address(2)).Constrain(66)
	branchOther := symbolic.NewToyState(addr.Address(3))
	entry.AddSuccessor(branchA).AddSuccessor(branchOther)

	runner := tracer.NewToyRunner().
		Register([]byte{65}, addr.Path{1, 2}, false).
		Register([]byte{66}, addr.Path{1, 2, 4}, false)

	return symbolic.NewToyEngine(entry), runner
}

func TestRunIterationQuickSamplesAndPropagates(t *testing.T) {
	engine, runner := buildSingleIfScenario()
	entry, err := engine.EntryState()
	require.NoError(t, err)

	tr := tree.New()
	require.NoError(t, tr.DyeRed(tree.Root, entry))

	discovered := addr.NewDiscoveredPaths()
	rc := newTestContext(2)

	require.NoError(t, mcts.RunIteration(tr, engine, rc, runner, discovered, 1))

	require.Equal(t, 1, discovered.Len())

	root := tr.Node(tree.Root)
	require.True(t, root.Exhausted())
	require.GreaterOrEqual(t, root.SimTry(), root.SimWin())
	require.GreaterOrEqual(t, root.SelTry(), root.SelWin())

	childID, ok := root.Children()[addr.Address(2)]
	require.True(t, ok)
	child := tr.Node(childID)
	_, isWhite := child.Colour().(*tree.White)
	require.True(t, isWhite, "child is not dyed until the next selection descends into it")
}

func TestRunIterationAlignsChildAndAttachesPhantomSibling(t *testing.T) {
	engine, runner := buildSingleIfScenario()
	entry, err := engine.EntryState()
	require.NoError(t, err)

	tr := tree.New()
	require.NoError(t, tr.DyeRed(tree.Root, entry))

	discovered := addr.NewDiscoveredPaths()
	rc := newTestContext(2)

	require.NoError(t, mcts.RunIteration(tr, engine, rc, runner, discovered, 1))
	require.NoError(t, mcts.RunIteration(tr, engine, rc, runner, discovered, 1))

	require.Equal(t, 2, discovered.Len())

	root := tr.Node(tree.Root)
	childID, ok := root.Children()[addr.Address(2)]
	require.True(t, ok)
	child := tr.Node(childID)
	_, isRed := child.Colour().(*tree.Red)
	require.True(t, isRed, "the second selection descent through the child must align it Red")
	require.GreaterOrEqual(t, child.SimTry(), child.SimWin())
	require.GreaterOrEqual(t, child.SelTry(), child.SelWin())

	phantomID, ok := root.Children()[addr.Address(3)]
	require.True(t, ok)
	require.True(t, tr.Node(phantomID).IsPhantom(), "the unmatched symbolic successor becomes a Phantom sibling on the root")

	grandchildID, ok := child.Children()[addr.Address(4)]
	require.True(t, ok)
	require.GreaterOrEqual(t, tr.Node(grandchildID).Visited(), tr.Node(grandchildID).Distinct())
}

func TestSelectReturnsNoCandidateOnceRootFullyExplored(t *testing.T) {
	tr := tree.New()
	tr.MarkFullyExplored(tree.Root)

	engine, _ := buildSingleIfScenario()
	rc := newTestContext(1)

	_, err := mcts.Select(tr, engine, rc)
	require.ErrorIs(t, err, mcts.ErrNoCandidate)
}
