package mutate

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/legion/symbolic"
)

// QuickSample draws up to opts.NumSamples successive values from iter,
// each encoded as a big-endian byte string of length ceil(bitWidth/8). It
// returns fewer than opts.NumSamples samples, and exhausted = true, the
// moment iter reports end-of-sequence; the caller is responsible for
// marking the owning node exhausted and for compensating the node's
// Visited counter for the shortfall.
func QuickSample(iter symbolic.Iterator, bitWidth int, opts Options) (samples [][]byte, exhausted bool) {
	width := byteWidth(bitWidth)
	samples = make([][]byte, 0, opts.NumSamples)
	for i := 0; i < opts.NumSamples; i++ {
		v, ok := iter.Next()
		if !ok {
			return samples, true
		}
		samples = append(samples, encodeBigEndian(v, width))
	}
	return samples, false
}

// RandomSample returns opts.NumSamples independent byte strings of length
// opts.SeedLength, drawn uniformly from [0,255] via rng. Callers always
// pass the Context's own *rand.Rand, never the package-global generator,
// so a run is reproducible given a fixed seed.
func RandomSample(rng *rand.Rand, opts Options) [][]byte {
	samples := make([][]byte, opts.NumSamples)
	for i := range samples {
		buf := make([]byte, opts.SeedLength)
		rng.Read(buf) //nolint:errcheck // math/rand.Rand.Read never errors
		samples[i] = buf
	}
	return samples
}

// byteWidth returns ceil(bitWidth/8), the encoded length of a single
// quick-sampled value.
func byteWidth(bitWidth int) int {
	return (bitWidth + 7) / 8
}

// encodeBigEndian renders v as a big-endian byte string of exactly width
// bytes, left-padding with zeros (v is assumed non-negative and to fit in
// width bytes, which the solver's bit-width contract guarantees).
func encodeBigEndian(v *big.Int, width int) []byte {
	raw := v.Bytes()
	out := make([]byte, width)
	copy(out[width-len(raw):], raw)
	return out
}
