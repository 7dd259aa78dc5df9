package walk

import (
	"context"

	"github.com/gridbook/nbfmt/ir"
)

// Transformer may return a replacement for n. Returning nil keeps n,
// with whatever rewrites its children already received.
type Transformer func(ctx context.Context, n ir.Node, index int, parent ir.Parent) (ir.Node, error)

// Transform rewrites the tree depth-first, children before the node
// itself: by the time t runs for a node, that node's children have
// been fully transformed and written back in place. The possibly
// replaced root is returned.
//
// A rule that depends on what a node's children became after their
// own rewrite (whether a cell ended up empty, say) sees the settled
// state; this is why rewriting runs children-first while read-only
// visitation runs pre-order.
func Transform(ctx context.Context, root ir.Node, t Transformer, opts ...Option) (ir.Node, error) {
	o := makeOptions(opts)
	return transform(ctx, root, -1, nil, t, o)
}

func transform(ctx context.Context, n ir.Node, index int, parent ir.Parent, t Transformer, o options) (ir.Node, error) {
	if p, ok := n.(ir.Parent); ok {
		kids := p.Children()
		for i := range kids {
			ki := i
			if o.reverse {
				ki = len(kids) - 1 - i
			}
			kid, err := transform(ctx, kids[ki], ki, p, t, o)
			if err != nil {
				return nil, err
			}
			kids[ki] = kid
		}
		p.SetChildren(kids)
	}
	res, err := t(ctx, n, index, parent)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return n, nil
	}
	return res, nil
}

// TransformType is Transform restricted to nodes whose discriminant
// equals typ; all other nodes are kept as-is.
func TransformType(ctx context.Context, root ir.Node, typ ir.Type, t Transformer, opts ...Option) (ir.Node, error) {
	return Transform(ctx, root, func(ctx context.Context, n ir.Node, index int, parent ir.Parent) (ir.Node, error) {
		if n.NodeType() != typ {
			return nil, nil
		}
		return t(ctx, n, index, parent)
	}, opts...)
}

// Map is Transform with a total mapper: m must return a node for
// every input, it cannot skip. The narrower contract is the point;
// the mechanics are identical.
func Map(ctx context.Context, root ir.Node, m Transformer, opts ...Option) (ir.Node, error) {
	return Transform(ctx, root, m, opts...)
}
