package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry exposes a fuzzing session's named metrics over a private
// prometheus.Registry, so a caller can scrape it (via promhttp.HandlerFor)
// without reaching into package-global state.
type Registry struct {
	reg *prometheus.Registry

	roundsTotal          prometheus.Counter
	discoveredPaths      prometheus.Gauge
	quickSamplesTotal    prometheus.Counter
	randomSamplesTotal   prometheus.Counter
	binaryExecutions     prometheus.Counter
	symbolicStepsTotal   prometheus.Counter
	bugFound             prometheus.Gauge
}

// New returns a Registry with every metric registered against a fresh,
// private prometheus.Registry.
func New() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		reg: reg,
		roundsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "legion_rounds_total",
			Help: "Total number of MCTS iterations executed.",
		}),
		discoveredPaths: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "legion_discovered_paths",
			Help: "Number of distinct concrete paths discovered so far.",
		}),
		quickSamplesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "legion_quick_samples_total",
			Help: "Total number of solver-derived mutant inputs drawn.",
		}),
		randomSamplesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "legion_random_samples_total",
			Help: "Total number of uniformly-random mutant inputs drawn.",
		}),
		binaryExecutions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "legion_binary_executions_total",
			Help: "Total number of target binary invocations.",
		}),
		symbolicStepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "legion_symbolic_steps_total",
			Help: "Total number of symbolic engine Step calls.",
		}),
		bugFound: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "legion_bug_found",
			Help: "1 if a bug-sentinel exit has been observed this run, 0 otherwise.",
		}),
	}
	reg.MustRegister(
		r.roundsTotal,
		r.discoveredPaths,
		r.quickSamplesTotal,
		r.randomSamplesTotal,
		r.binaryExecutions,
		r.symbolicStepsTotal,
		r.bugFound,
	)
	return r
}

// Gatherer exposes the underlying prometheus.Registry for scraping.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// IncRounds increments legion_rounds_total by one.
func (r *Registry) IncRounds() { r.roundsTotal.Inc() }

// SetDiscoveredPaths sets legion_discovered_paths to n.
func (r *Registry) SetDiscoveredPaths(n int) { r.discoveredPaths.Set(float64(n)) }

// AddQuickSamples increments legion_quick_samples_total by n.
func (r *Registry) AddQuickSamples(n int) { r.quickSamplesTotal.Add(float64(n)) }

// AddRandomSamples increments legion_random_samples_total by n.
func (r *Registry) AddRandomSamples(n int) { r.randomSamplesTotal.Add(float64(n)) }

// IncBinaryExecutions increments legion_binary_executions_total by one.
func (r *Registry) IncBinaryExecutions() { r.binaryExecutions.Inc() }

// AddSymbolicSteps increments legion_symbolic_steps_total by n.
func (r *Registry) AddSymbolicSteps(n int) { r.symbolicStepsTotal.Add(float64(n)) }

// SetBugFound sets legion_bug_found to 1 if found, 0 otherwise.
func (r *Registry) SetBugFound(found bool) {
	if found {
		r.bugFound.Set(1)
		return
	}
	r.bugFound.Set(0)
}
