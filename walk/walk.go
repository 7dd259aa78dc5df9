// Package walk provides generic traversal and rewriting of ir trees.
//
// The walker knows nothing about concrete node shapes: it recurses
// wherever a node satisfies the ir.Parent capability and treats
// everything else as a leaf. Callbacks may block (awaiting an
// external engine, say); the walker runs exactly one callback at a
// time, in sibling array order or its reverse, so side effects are
// serialized and results are deterministic.
//
// Callback errors are not caught: they abort the whole operation and
// propagate to the caller. Transform mutates children slices in
// place, so a caller needing atomicity should operate on a Clone.
package walk

import (
	"context"

	"github.com/gridbook/nbfmt/debug"
	"github.com/gridbook/nbfmt/ir"
)

// Action is a visitor's traversal verdict.
type Action int

const (
	// Continue proceeds with the traversal.
	Continue Action = iota
	// Stop halts the entire traversal immediately: no further nodes
	// are visited, siblings and ancestors' remaining children
	// included.
	Stop
)

// Visitor is called for each node in pre-order. index is the node's
// position within parent's children; at the root index is -1 and
// parent is nil.
type Visitor func(ctx context.Context, n ir.Node, index int, parent ir.Parent) (Action, error)

// Predicate selects nodes. Predicates are pure: they neither block
// nor fail.
type Predicate func(n ir.Node, index int, parent ir.Parent) bool

// Visit traverses the tree depth-first in pre-order, calling v for
// every node until the traversal ends or v returns Stop or an error.
func Visit(ctx context.Context, root ir.Node, v Visitor, opts ...Option) error {
	o := makeOptions(opts)
	_, err := visit(ctx, root, -1, nil, v, o)
	return err
}

func visit(ctx context.Context, n ir.Node, index int, parent ir.Parent, v Visitor, o options) (Action, error) {
	act, err := v(ctx, n, index, parent)
	if err != nil {
		return Stop, err
	}
	if act == Stop {
		return Stop, nil
	}
	p, ok := n.(ir.Parent)
	if !ok {
		return Continue, nil
	}
	kids := p.Children()
	for i := range kids {
		ki := i
		if o.reverse {
			ki = len(kids) - 1 - i
		}
		act, err := visit(ctx, kids[ki], ki, p, v, o)
		if err != nil {
			return Stop, err
		}
		if act == Stop {
			return Stop, nil
		}
	}
	return Continue, nil
}

// VisitType is Visit restricted to nodes whose discriminant equals
// typ. Non-matching nodes are still traversed to reach their
// descendants, just not passed to v.
func VisitType(ctx context.Context, root ir.Node, typ ir.Type, v Visitor, opts ...Option) error {
	return Visit(ctx, root, func(ctx context.Context, n ir.Node, index int, parent ir.Parent) (Action, error) {
		if n.NodeType() != typ {
			return Continue, nil
		}
		return v(ctx, n, index, parent)
	}, opts...)
}

// Find returns the first node in pre-order for which keep holds, or
// nil when no node matches.
func Find(ctx context.Context, root ir.Node, keep Predicate) (ir.Node, error) {
	var res ir.Node
	err := Visit(ctx, root, func(_ context.Context, n ir.Node, index int, parent ir.Parent) (Action, error) {
		if !keep(n, index, parent) {
			return Continue, nil
		}
		res = n
		return Stop, nil
	})
	if err != nil {
		return nil, err
	}
	if debug.Walk() {
		debug.Logf("find: %v\n", res)
	}
	return res, nil
}

// FindAll returns every node in pre-order for which keep holds. It
// always runs to completion.
func FindAll(ctx context.Context, root ir.Node, keep Predicate) ([]ir.Node, error) {
	var res []ir.Node
	err := Visit(ctx, root, func(_ context.Context, n ir.Node, index int, parent ir.Parent) (Action, error) {
		if keep(n, index, parent) {
			res = append(res, n)
		}
		return Continue, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
