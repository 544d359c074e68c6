package mutate_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/legion/mutate"
	"github.com/katalvlaran/legion/symbolic"
	"github.com/stretchr/testify/require"
)

func TestQuickSampleFullBatch(t *testing.T) {
	state := symbolic.NewToyState(0).Constrain(10, 20, 30, 40, 50)
	iter, err := state.Iterate()
	require.NoError(t, err)

	samples, exhausted := mutate.QuickSample(iter, 8, mutate.DefaultOptions(2))
	require.False(t, exhausted)
	require.Len(t, samples, 5)
	require.Equal(t, []byte{10}, samples[0])
	require.Equal(t, []byte{50}, samples[4])
}

func TestQuickSampleExhaustsEarly(t *testing.T) {
	state := symbolic.NewToyState(0).Constrain(1, 2)
	iter, err := state.Iterate()
	require.NoError(t, err)

	opts := mutate.Options{NumSamples: 5, SeedLength: 2}
	samples, exhausted := mutate.QuickSample(iter, 8, opts)
	require.True(t, exhausted)
	require.Len(t, samples, 2)
}

func TestQuickSampleWidePadsToByteWidth(t *testing.T) {
	state := symbolic.NewToyState(0).Constrain(5)
	iter, err := state.Iterate()
	require.NoError(t, err)

	opts := mutate.Options{NumSamples: 1, SeedLength: 1}
	samples, exhausted := mutate.QuickSample(iter, 16, opts)
	require.False(t, exhausted)
	require.Equal(t, []byte{0x00, 0x05}, samples[0])
}

func TestRandomSampleShapeAndReproducibility(t *testing.T) {
	opts := mutate.Options{NumSamples: 3, SeedLength: 4}

	out1 := mutate.RandomSample(rand.New(rand.NewSource(42)), opts)
	out2 := mutate.RandomSample(rand.New(rand.NewSource(42)), opts)

	require.Len(t, out1, 3)
	for _, s := range out1 {
		require.Len(t, s, 4)
	}
	require.Equal(t, out1, out2)
}
