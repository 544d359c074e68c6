// Package metrics wraps a prometheus.Registry with the counters and gauges
// a fuzzing session reports: round count, discovered-path count, sample
// and execution counters, and the bug-found flag. Unlike the pack's
// promauto-based metrics files, Registry is an explicit value (never a
// package-level var bound to the default registerer), so multiple runs in
// one process never collide on metric registration.
package metrics
