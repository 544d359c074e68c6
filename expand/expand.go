package expand

import (
	"github.com/katalvlaran/legion/addr"
	"github.com/katalvlaran/legion/tree"
)

// Result is the outcome of folding one concrete path into the tree.
type Result struct {
	// WasNew is true iff any node along path did not already exist, a
	// Phantom along path was promoted, or path was not yet in the
	// Discovered-paths set.
	WasNew bool
	// Nodes is the path's node list, root-first, one entry per address in
	// path, suitable for the propagation stage.
	Nodes []tree.NodeID
}

// Expand folds path into t: on the first call it fixes the root's address
// to path[0]; on every call it requires the tree's root address to equal
// path[0], returning ErrRootAddressMismatch otherwise. It then walks path,
// creating a White child at each subsequent address if one is not already
// present, and records path in discovered.
func Expand(t *tree.Tree, discovered *addr.DiscoveredPaths, path addr.Path) (Result, error) {
	if len(path) == 0 {
		return Result{}, ErrEmptyPath
	}

	root := t.Node(tree.Root)
	if _, hasAddr := root.Addr(); !hasAddr {
		t.SetRootAddr(path[0])
	} else if rootAddr, _ := root.Addr(); rootAddr != path[0] {
		return Result{}, ErrRootAddressMismatch
	}

	nodes := make([]tree.NodeID, 0, len(path))
	nodes = append(nodes, tree.Root)
	wasNew := false

	current := tree.Root
	for _, a := range path[1:] {
		id, created := t.AddChild(current, a)
		if !created && t.Node(id).IsPhantom() {
			// Concrete execution has now reached a speculative sibling the
			// symbolic engine predicted; promote it in place rather than
			// creating a duplicate node.
			if err := t.PromotePhantom(id); err != nil {
				return Result{}, err
			}
			wasNew = true
		}
		wasNew = wasNew || created
		nodes = append(nodes, id)
		current = id
	}

	discoveredNew := discovered.Add(path)
	return Result{WasNew: wasNew || discoveredNew, Nodes: nodes}, nil
}
