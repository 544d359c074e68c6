// Package mutate turns a tree node into a batch of candidate stdin inputs:
// either by quick-sampling a solver iterator over the node's symbolic
// constraint, or by falling back to uniform random bytes when the node is
// unconstrained or its iterator is exhausted.
//
// The two encodings are deliberately asymmetric: a quick-sampled value is
// packed big-endian at the node's stdin bit width, while tracer's own
// address unpacking is little-endian. This mismatch is intentional and
// preserved rather than "fixed" for consistency.
package mutate
