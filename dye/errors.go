package dye

import "errors"

// ErrNoSimulationState is returned when Align is invoked with a lastRed
// node that has no live Simulation (Gold) child, such as a Red node whose
// Simulation child MarkFullyExplored has released. Selection records any
// Red node it descends through as "last Red", including such a node.
var ErrNoSimulationState = errors.New("dye: lastRed has no live Simulation state")
