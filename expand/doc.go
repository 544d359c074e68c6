// Package expand implements path expansion: folding one concrete trace
// into the execution-path tree, creating White children as needed, and
// recording the path in the Discovered-paths set.
package expand
