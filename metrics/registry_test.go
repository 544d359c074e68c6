package metrics_test

import (
	"testing"

	"github.com/katalvlaran/legion/metrics"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func gatherMetric(t *testing.T, r *metrics.Registry, name string) *io_prometheus_client.MetricFamily {
	t.Helper()
	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func TestRegistryCountersAccumulate(t *testing.T) {
	r := metrics.New()

	r.IncRounds()
	r.IncRounds()
	r.SetDiscoveredPaths(3)
	r.AddQuickSamples(5)
	r.AddRandomSamples(2)
	r.IncBinaryExecutions()
	r.AddSymbolicSteps(7)
	r.SetBugFound(true)

	rounds := gatherMetric(t, r, "legion_rounds_total")
	require.NotNil(t, rounds)
	require.Equal(t, 2.0, rounds.GetMetric()[0].GetCounter().GetValue())

	discovered := gatherMetric(t, r, "legion_discovered_paths")
	require.NotNil(t, discovered)
	require.Equal(t, 3.0, discovered.GetMetric()[0].GetGauge().GetValue())

	bug := gatherMetric(t, r, "legion_bug_found")
	require.NotNil(t, bug)
	require.Equal(t, 1.0, bug.GetMetric()[0].GetGauge().GetValue())
}
