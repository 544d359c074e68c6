package mcts

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/legion/mutate"
	"github.com/katalvlaran/legion/runctx"
	"github.com/katalvlaran/legion/tracer"
	"github.com/katalvlaran/legion/tree"
)

// SimulationOutcome is the result of mutating and tracing one selected
// leaf.
type SimulationOutcome struct {
	WasPhantom bool
	Results    []tracer.Result
	Requested  int
}

// Simulate mutates the selected leaf and traces every resulting input. If
// leaf is a Phantom it is detached from its parent first, since concrete
// execution will re-create proper children. Traces run concurrently,
// bounded by rc.Tunables.Concurrency, via errgroup.Group.SetLimit — a
// correctness-preserving optimisation over strictly sequential tracing.
func Simulate(t *tree.Tree, rc *runctx.Context, runner tracer.TraceRunner, seedLength int, leaf tree.NodeID) (SimulationOutcome, error) {
	node := t.Node(leaf)
	wasPhantom := node.IsPhantom()
	if wasPhantom {
		t.DetachPhantom(leaf)
	}

	opts := mutate.Options{NumSamples: rc.Tunables.NumSamples, SeedLength: seedLength}
	inputs := mutateLeaf(t, rc, leaf, opts)

	results := make([]tracer.Result, len(inputs))
	limit := rc.Tunables.Concurrency
	if limit < 1 {
		limit = 1
	}

	g := new(errgroup.Group)
	g.SetLimit(limit)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			res, err := runner.Trace(input)
			if err != nil {
				return err
			}
			rc.RecordBinaryExecution()
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SimulationOutcome{}, err
	}

	return SimulationOutcome{WasPhantom: wasPhantom, Results: results, Requested: opts.NumSamples}, nil
}

// mutateLeaf draws the batch of candidate inputs for leaf, quick-sampling
// from its symbolic state when constrained and not exhausted, otherwise
// falling back to uniform random bytes.
func mutateLeaf(t *tree.Tree, rc *runctx.Context, leaf tree.NodeID, opts mutate.Options) [][]byte {
	node := t.Node(leaf)
	state := activeState(node)
	if state != nil && state.HasConstraints() && !node.Exhausted() {
		iter := iteratorFor(node, state)
		samples, exhausted := mutate.QuickSample(iter, state.StdinBitWidth(), opts)
		rc.RecordQuickSamples(len(samples))
		if exhausted {
			t.MarkExhausted(leaf)
		}
		return samples
	}

	samples := mutate.RandomSample(rc.RNG, opts)
	rc.RecordRandomSamples(len(samples))
	return samples
}
