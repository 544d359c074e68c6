package driver

import "errors"

// ErrEmptySeed is returned when Run is given a zero-length seed input.
var ErrEmptySeed = errors.New("driver: seed input must not be empty")

// ErrSeedAddressMismatch is returned when the seed's trace does not begin at
// the symbolic engine's own entry address, meaning the engine and the trace
// runner are not instrumenting the same binary.
var ErrSeedAddressMismatch = errors.New("driver: seed trace does not begin at the engine's entry address")
