package mutate

import "errors"

// ErrNoSamples reports a mutation request for zero samples. QuickSample and
// RandomSample do not return it; given NumSamples of zero they return an
// empty batch.
var ErrNoSamples = errors.New("mutate: numSamples must be positive")
