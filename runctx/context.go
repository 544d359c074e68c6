package runctx

import (
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/legion/metrics"
)

// Tunables holds the run's configurable limits, loaded from config/CLI
// flags and never mutated after the run starts.
type Tunables struct {
	NumSamples  int
	MaxPaths    int // 0 means unbounded
	MaxRounds   int // 0 means unbounded
	Rho         float64
	Concurrency int
}

// DefaultTunables returns the module's documented defaults.
func DefaultTunables() Tunables {
	return Tunables{
		NumSamples:  5,
		MaxPaths:    0,
		MaxRounds:   0,
		Rho:         1.4142135623730951, // sqrt(2)
		Concurrency: 1,
	}
}

// Counters holds the run-wide mutable counters (TTL_SEL, QS_COUNT,
// RD_COUNT, CUR_ROUND, FOUND_BUG) tracked over a run's lifetime. They are
// mutated only by the MCTS controller on the main goroutine.
type Counters struct {
	TTLSel   uint64
	QSCount  uint64
	RDCount  uint64
	CurRound uint64
	FoundBug bool
}

// Context is the single explicit record threaded through the driver and
// MCTS controller, replacing scattered global mutable state with one
// value passed down the call chain.
type Context struct {
	RNG     *rand.Rand
	RunID   uuid.UUID
	Logger  *slog.Logger
	Metrics *metrics.Registry

	Tunables Tunables
	Counters Counters
}

// New returns a Context with a fresh RunID, the given seeded RNG, logger,
// and metrics registry, and the given tunables.
func New(rng *rand.Rand, logger *slog.Logger, reg *metrics.Registry, tunables Tunables) *Context {
	return &Context{
		RNG:      rng,
		RunID:    uuid.New(),
		Logger:   logger,
		Metrics:  reg,
		Tunables: tunables,
	}
}

// RecordQuickSamples advances QS_COUNT and the quick-sample metric by n.
func (c *Context) RecordQuickSamples(n int) {
	c.Counters.QSCount += uint64(n)
	c.Metrics.AddQuickSamples(n)
}

// RecordRandomSamples advances RD_COUNT and the random-sample metric by n.
func (c *Context) RecordRandomSamples(n int) {
	c.Counters.RDCount += uint64(n)
	c.Metrics.AddRandomSamples(n)
}

// RecordBinaryExecution advances the binary-execution metric by one.
func (c *Context) RecordBinaryExecution() {
	c.Metrics.IncBinaryExecutions()
}

// RecordSymbolicSteps advances the symbolic-step metric by n.
func (c *Context) RecordSymbolicSteps(n int) {
	c.Metrics.AddSymbolicSteps(n)
}

// IncTTLSel advances TTL_SEL by one, once per selected node per iteration.
func (c *Context) IncTTLSel() {
	c.Counters.TTLSel++
}

// StartRound advances CUR_ROUND and the rounds-total metric, to be called
// once per completed MCTS iteration.
func (c *Context) StartRound() {
	c.Counters.CurRound++
	c.Metrics.IncRounds()
}

// SetDiscoveredPaths mirrors the Discovered-paths set's size into the
// metrics registry. Counters has no field for it; the Context keeps no copy.
func (c *Context) SetDiscoveredPaths(n int) {
	c.Metrics.SetDiscoveredPaths(n)
}

// SetBugFound records a bug-sentinel observation, permanently for this run.
func (c *Context) SetBugFound(found bool) {
	if found {
		c.Counters.FoundBug = true
	}
	c.Metrics.SetBugFound(c.Counters.FoundBug)
}

// Done reports whether the run's termination conditions have tripped:
// the bug-found flag, the discovered-path limit, or the round limit.
func (c *Context) Done(discoveredPaths int) bool {
	if c.Counters.FoundBug {
		return true
	}
	if c.Tunables.MaxPaths > 0 && discoveredPaths >= c.Tunables.MaxPaths {
		return true
	}
	if c.Tunables.MaxRounds > 0 && c.Counters.CurRound >= uint64(c.Tunables.MaxRounds) {
		return true
	}
	return false
}
