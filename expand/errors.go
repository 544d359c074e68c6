package expand

import "errors"

// ErrEmptyPath is returned when Expand is called with a zero-length path;
// a trace always visits at least one address.
var ErrEmptyPath = errors.New("expand: path is empty")

// ErrRootAddressMismatch signals a path whose first address disagrees with
// the tree's already-fixed root address: the target binary is
// non-deterministic, or the tree was misused.
var ErrRootAddressMismatch = errors.New("expand: path does not begin at the tree's root address")
