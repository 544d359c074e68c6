package addr_test

import (
	"testing"

	"github.com/katalvlaran/legion/addr"
	"github.com/stretchr/testify/require"
)

func TestDiscoveredPathsIdempotent(t *testing.T) {
	d := addr.NewDiscoveredPaths()

	p := addr.Path{1, 2, 3}
	require.True(t, d.Add(p))
	require.Equal(t, 1, d.Len())

	// Second insertion of an equal-but-distinct slice must be a no-op (P6).
	require.False(t, d.Add(addr.Path{1, 2, 3}))
	require.Equal(t, 1, d.Len())
	require.True(t, d.Contains(p))
}

func TestDiscoveredPathsDistinguishesLength(t *testing.T) {
	d := addr.NewDiscoveredPaths()
	require.True(t, d.Add(addr.Path{1, 2}))
	require.True(t, d.Add(addr.Path{1, 2, 3}))
	require.Equal(t, 2, d.Len())
}

func TestDiscoveredPathsAllIsACopy(t *testing.T) {
	d := addr.NewDiscoveredPaths()
	d.Add(addr.Path{1})

	all := d.All()
	all[0] = nil
	require.Equal(t, 1, d.Len())
	require.True(t, d.Contains(addr.Path{1}))
}
