package symbolic

import "errors"

// ErrEngineFailure indicates the underlying symbolic engine failed to step a
// state or enumerate solutions. Engine implementations wrap their errors
// with it; this module does not return it itself. An error from Engine.Step
// during selection ends mcts.RunIteration, and driver.Run returns it
// without marking any node exhausted or running further iterations. An
// error from State.Iterate yields an empty quick-sample batch and marks the
// node exhausted.
var ErrEngineFailure = errors.New("symbolic: engine failure")

// ErrUnsupportedState indicates a State value was produced by a different
// Engine implementation than the one asked to Step it.
var ErrUnsupportedState = errors.New("symbolic: state not recognised by this engine")
