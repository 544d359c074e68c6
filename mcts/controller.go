package mcts

import (
	"github.com/katalvlaran/legion/addr"
	"github.com/katalvlaran/legion/expand"
	"github.com/katalvlaran/legion/runctx"
	"github.com/katalvlaran/legion/symbolic"
	"github.com/katalvlaran/legion/tracer"
	"github.com/katalvlaran/legion/tree"
)

// RunIteration executes one full Selection -> Simulation -> Expansion ->
// Propagation cycle and advances rc's round counter and metrics on
// completion.
func RunIteration(t *tree.Tree, engine symbolic.Engine, rc *runctx.Context, runner tracer.TraceRunner, discovered *addr.DiscoveredPaths, seedLength int) error {
	sel, err := Select(t, engine, rc)
	if err != nil {
		return err
	}

	outcome, err := Simulate(t, rc, runner, seedLength, sel.Leaf)
	if err != nil {
		return err
	}

	expansions := make([]expand.Result, 0, len(outcome.Results))
	for _, res := range outcome.Results {
		exp, expErr := expand.Expand(t, discovered, res.Path)
		if expErr != nil {
			return expErr
		}
		expansions = append(expansions, exp)
		if res.BugFound {
			rc.SetBugFound(true)
		}
	}

	propagationPath := sel.Path
	if outcome.WasPhantom && len(propagationPath) > 0 {
		propagationPath = propagationPath[:len(propagationPath)-1]
	}
	Propagate(t, rc, propagationPath, outcome.WasPhantom, expansions, rc.Tunables.NumSamples)

	rc.SetDiscoveredPaths(discovered.Len())
	rc.StartRound()
	return nil
}
