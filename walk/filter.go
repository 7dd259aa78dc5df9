package walk

import (
	"context"

	"github.com/gridbook/nbfmt/debug"
	"github.com/gridbook/nbfmt/ir"
)

// Filter rebuilds the tree from the nodes keep accepts, evaluated in
// pre-order: a rejected node drops with its entire subtree. Accepted
// nodes are shallow-copied with their children sequence rebuilt from
// the surviving children, so the input tree is never mutated. A
// rejected root cannot be deleted; the original root is returned
// unchanged.
func Filter(ctx context.Context, root ir.Node, keep Predicate) ir.Node {
	res := filter(root, -1, nil, keep)
	if res == nil {
		if debug.Filter() {
			debug.Logf("filter: root rejected, kept as-is\n")
		}
		return root
	}
	return res
}

func filter(n ir.Node, index int, parent ir.Parent, keep Predicate) ir.Node {
	if !keep(n, index, parent) {
		return nil
	}
	res := n.Copy()
	p, ok := n.(ir.Parent)
	if !ok {
		return res
	}
	kids := p.Children()
	kept := make([]ir.Node, 0, len(kids))
	for i, kid := range kids {
		if out := filter(kid, i, p, keep); out != nil {
			kept = append(kept, out)
		}
	}
	res.(ir.Parent).SetChildren(kept)
	return res
}
