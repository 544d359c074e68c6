package mutate

// Options configures mutation batch sizing.
//   - NumSamples: maximum number of inputs drawn per call (default 5).
//   - SeedLength: the byte length used for random-sample fallback inputs,
//     matching the length of the run's original seed.
type Options struct {
	NumSamples int
	SeedLength int
}

// DefaultOptions returns the default tunables for a run seeded with an
// input of the given length.
func DefaultOptions(seedLength int) Options {
	return Options{NumSamples: 5, SeedLength: seedLength}
}
