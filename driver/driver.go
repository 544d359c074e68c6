package driver

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/legion/addr"
	"github.com/katalvlaran/legion/expand"
	"github.com/katalvlaran/legion/mcts"
	"github.com/katalvlaran/legion/runctx"
	"github.com/katalvlaran/legion/symbolic"
	"github.com/katalvlaran/legion/tracer"
	"github.com/katalvlaran/legion/tree"
)

// Run bootstraps a fresh execution-path tree from seed, dyeing its root Red
// with engine's entry state, then drives mcts.RunIteration until rc's
// termination conditions trip (bug found, MaxPaths, or MaxRounds) or the
// tree has nothing left to explore.
//
// seed is traced exactly once outside of the normal Selection/Simulation
// cycle, since no node exists yet to select: its path is folded into the
// tree directly and treated as the sole result of a bootstrap propagation
// rooted at the tree's root.
func Run(engine symbolic.Engine, runner tracer.TraceRunner, seed []byte, rc *runctx.Context) (*tree.Tree, *addr.DiscoveredPaths, error) {
	if len(seed) == 0 {
		return nil, nil, ErrEmptySeed
	}

	entry, err := engine.EntryState()
	if err != nil {
		return nil, nil, err
	}

	t := tree.New()
	if err := t.DyeRed(tree.Root, entry); err != nil {
		return nil, nil, err
	}

	discovered := addr.NewDiscoveredPaths()
	if err := bootstrap(t, engine, rc, runner, discovered, seed, entry); err != nil {
		return nil, nil, err
	}

	rc.Logger.Info("seed accepted",
		slog.String("run_id", rc.RunID.String()),
		slog.Int("seed_len", len(seed)),
		slog.Int("discovered_paths", discovered.Len()))

	for !rc.Done(discovered.Len()) {
		err := mcts.RunIteration(t, engine, rc, runner, discovered, len(seed))
		if err != nil {
			if errors.Is(err, mcts.ErrNoCandidate) {
				rc.Logger.Info("tree fully explored, stopping",
					slog.String("run_id", rc.RunID.String()),
					slog.Uint64("round", rc.Counters.CurRound))
				break
			}
			return t, discovered, err
		}

		rc.Logger.Info("round complete",
			slog.String("run_id", rc.RunID.String()),
			slog.Uint64("round", rc.Counters.CurRound),
			slog.Int("discovered_paths", discovered.Len()),
			slog.Bool("bug_found", rc.Counters.FoundBug))
	}

	return t, discovered, nil
}

// bootstrap traces seed once, verifies it begins at the engine's own entry
// address, folds it into t via package expand, and propagates it as a single
// simulation result rooted at the (still childless) root.
func bootstrap(t *tree.Tree, engine symbolic.Engine, rc *runctx.Context, runner tracer.TraceRunner, discovered *addr.DiscoveredPaths, seed []byte, entry symbolic.State) error {
	result, err := runner.Trace(seed)
	if err != nil {
		return err
	}
	rc.RecordBinaryExecution()

	first, ok := result.Path.First()
	if !ok || first != entry.Addr() {
		return ErrSeedAddressMismatch
	}

	exp, err := expand.Expand(t, discovered, result.Path)
	if err != nil {
		return err
	}

	mcts.Propagate(t, rc, []tree.NodeID{tree.Root}, false, []expand.Result{exp}, 1)

	if result.BugFound {
		rc.SetBugFound(true)
	}
	rc.SetDiscoveredPaths(discovered.Len())
	rc.StartRound()
	return nil
}
