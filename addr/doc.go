// Package addr defines the primitive data model shared by every other
// package in this module: the Address of a basic block, the Path a
// concrete execution takes through a binary, and the set of Paths
// discovered so far during a run.
//
// Key features:
//   - Address: an opaque 64-bit block identifier; equality is the only
//     operation ever performed on it.
//   - Path: an ordered sequence of Addresses, compared with Path.Equal.
//   - DiscoveredPaths: an idempotent set of Paths, safe for sequential use
//     by a single MCTS controller goroutine (see runctx.Context).
package addr
