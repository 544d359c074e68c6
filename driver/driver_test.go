package driver_test

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/legion/addr"
	"github.com/katalvlaran/legion/driver"
	"github.com/katalvlaran/legion/metrics"
	"github.com/katalvlaran/legion/runctx"
	"github.com/katalvlaran/legion/symbolic"
	"github.com/katalvlaran/legion/tracer"
)

func newTestContext(tun runctx.Tunables) *runctx.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return runctx.New(rand.New(rand.NewSource(1)), logger, metrics.New(), tun)
}

func TestRunStopsAtMaxRoundsAfterBootstrap(t *testing.T) {
	entry := symbolic.NewToyState(addr.Address(1))
	engine := symbolic.NewToyEngine(entry)
	runner := tracer.NewToyRunner().Register([]byte{0}, addr.Path{1}, false)

	tun := runctx.DefaultTunables()
	tun.MaxRounds = 1
	rc := newTestContext(tun)

	tr, discovered, err := driver.Run(engine, runner, []byte{0}, rc)
	require.NoError(t, err)
	require.Equal(t, 1, discovered.Len())
	require.Equal(t, uint64(1), rc.Counters.CurRound)

	root := tr.Node(0)
	rootAddr, ok := root.Addr()
	require.True(t, ok)
	require.Equal(t, addr.Address(1), rootAddr)
}

func TestRunRejectsEmptySeed(t *testing.T) {
	entry := symbolic.NewToyState(addr.Address(1))
	engine := symbolic.NewToyEngine(entry)
	runner := tracer.NewToyRunner()
	rc := newTestContext(runctx.DefaultTunables())

	_, _, err := driver.Run(engine, runner, nil, rc)
	require.ErrorIs(t, err, driver.ErrEmptySeed)
}

func TestRunRejectsSeedAtWrongEntryAddress(t *testing.T) {
	entry := symbolic.NewToyState(addr.Address(1))
	engine := symbolic.NewToyEngine(entry)
	runner := tracer.NewToyRunner().Register([]byte{0}, addr.Path{9}, false)
	rc := newTestContext(runctx.DefaultTunables())

	_, _, err := driver.Run(engine, runner, []byte{0}, rc)
	require.ErrorIs(t, err, driver.ErrSeedAddressMismatch)
}

func TestRunAdvancesOneIterationPastBootstrap(t *testing.T) {
	entry := symbolic.NewToyState(addr.Address(1)).Constrain(65)
	branchA := symbolic.NewToyState(addr.Address(2))
	branchOther := symbolic.NewToyState(addr.Address(3))
	entry.AddSuccessor(branchA).AddSuccessor(branchOther)
	engine := symbolic.NewToyEngine(entry)

	runner := tracer.NewToyRunner().
		Register([]byte{0}, addr.Path{1}, false).
		Register([]byte{65}, addr.Path{1, 2}, false)

	tun := runctx.DefaultTunables()
	tun.MaxRounds = 2
	tun.NumSamples = 2
	rc := newTestContext(tun)

	_, discovered, err := driver.Run(engine, runner, []byte{0}, rc)
	require.NoError(t, err)
	require.Equal(t, 2, discovered.Len())
	require.Equal(t, uint64(2), rc.Counters.CurRound)
}
