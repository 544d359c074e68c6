package dye_test

import (
	"testing"

	"github.com/katalvlaran/legion/addr"
	"github.com/katalvlaran/legion/dye"
	"github.com/katalvlaran/legion/symbolic"
	"github.com/katalvlaran/legion/tree"
	"github.com/stretchr/testify/require"
)

func TestAlignMatchesAndAttachesPhantomSibling(t *testing.T) {
	entry := symbolic.NewToyState(0)
	succA := symbolic.NewToyState(1)
	succB := symbolic.NewToyState(0xFF)
	entry.AddSuccessor(succA).AddSuccessor(succB)
	engine := symbolic.NewToyEngine(entry)

	tr := tree.New()
	require.NoError(t, tr.DyeRed(tree.Root, entry))

	child, _ := tr.AddChild(tree.Root, addr.Address(1))

	aligned, err := dye.Align(tr, engine, child, tree.Root)
	require.NoError(t, err)
	require.Equal(t, child, aligned)

	_, isRed := tr.Node(aligned).Colour().(*tree.Red)
	require.True(t, isRed)

	root := tr.Node(tree.Root)
	phantomID, ok := root.Children()[addr.Address(0xFF)]
	require.True(t, ok)
	require.True(t, tr.Node(phantomID).IsPhantom())
}

func TestAlignFailsToBlackOnLeafMismatch(t *testing.T) {
	entry := symbolic.NewToyState(0)
	succA := symbolic.NewToyState(6)
	succB := symbolic.NewToyState(7)
	entry.AddSuccessor(succA).AddSuccessor(succB)
	engine := symbolic.NewToyEngine(entry)

	tr := tree.New()
	require.NoError(t, tr.DyeRed(tree.Root, entry))

	child, _ := tr.AddChild(tree.Root, addr.Address(0x42))

	aligned, err := dye.Align(tr, engine, child, tree.Root)
	require.NoError(t, err)
	require.Equal(t, child, aligned)

	_, isBlack := tr.Node(aligned).Colour().(*tree.Black)
	require.True(t, isBlack)
}

func TestAlignDescendsThroughStraightLineUntilMatch(t *testing.T) {
	entry := symbolic.NewToyState(0)
	branchA := symbolic.NewToyState(6)
	branchB := symbolic.NewToyState(7)
	entry.AddSuccessor(branchA).AddSuccessor(branchB)
	engine := symbolic.NewToyEngine(entry)

	tr := tree.New()
	require.NoError(t, tr.DyeRed(tree.Root, entry))

	mismatch, _ := tr.AddChild(tree.Root, addr.Address(0x9))
	matchChild, _ := tr.AddChild(mismatch, addr.Address(6))

	aligned, err := dye.Align(tr, engine, mismatch, tree.Root)
	require.NoError(t, err)
	require.Equal(t, matchChild, aligned)

	_, isBlack := tr.Node(mismatch).Colour().(*tree.Black)
	require.True(t, isBlack)
	_, isRed := tr.Node(matchChild).Colour().(*tree.Red)
	require.True(t, isRed)
}
