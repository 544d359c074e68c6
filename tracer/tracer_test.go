package tracer_test

import (
	"testing"

	"github.com/katalvlaran/legion/addr"
	"github.com/katalvlaran/legion/tracer"
	"github.com/stretchr/testify/require"
)

func TestToyRunnerTrace(t *testing.T) {
	r := tracer.NewToyRunner().
		Register([]byte("AA"), addr.Path{1, 2, 3}, false).
		Register([]byte("AB"), addr.Path{1, 2, 4}, true)

	res, err := r.Trace([]byte("AA"))
	require.NoError(t, err)
	require.Equal(t, addr.Path{1, 2, 3}, res.Path)
	require.False(t, res.BugFound)

	res, err = r.Trace([]byte("AB"))
	require.NoError(t, err)
	require.True(t, res.BugFound)
}

func TestToyRunnerUnknownInput(t *testing.T) {
	r := tracer.NewToyRunner()
	_, err := r.Trace([]byte("ZZ"))
	require.ErrorIs(t, err, tracer.ErrUnknownInput)
}

func TestToyRunnerTraceIsIndependentCopy(t *testing.T) {
	r := tracer.NewToyRunner().Register([]byte("AA"), addr.Path{1, 2, 3}, false)

	res, err := r.Trace([]byte("AA"))
	require.NoError(t, err)
	res.Path[0] = 99

	res2, err := r.Trace([]byte("AA"))
	require.NoError(t, err)
	require.Equal(t, addr.Address(1), res2.Path[0])
}
