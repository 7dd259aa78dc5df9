package nbfmt

import (
	"context"

	"github.com/gridbook/nbfmt/ir"
	"github.com/gridbook/nbfmt/mimetype"
	"github.com/gridbook/nbfmt/walk"
)

// ClearOutputs removes every output node from the notebook's code
// cells and resets their execution counters, leaving each code cell
// with only its source child. The tree is rewritten in place; the
// returned root is the input root.
func ClearOutputs(ctx context.Context, root *ir.Root) (*ir.Root, error) {
	res, err := walk.TransformType(ctx, root, ir.CodeCellType,
		func(_ context.Context, n ir.Node, _ int, _ ir.Parent) (ir.Node, error) {
			cell := n.(*ir.CodeCell)
			kept := cell.Kids[:0]
			for _, kid := range cell.Kids {
				if kid.NodeType() == ir.SourceType {
					kept = append(kept, kid)
				}
			}
			cell.SetChildren(kept)
			cell.ExecutionCount = nil
			return nil, nil
		})
	if err != nil {
		return nil, err
	}
	return res.(*ir.Root), nil
}

// DropEmptyCells returns a new tree without cells that have no
// content: no source text and, for code cells, no outputs. The input
// tree is not mutated.
func DropEmptyCells(ctx context.Context, root *ir.Root) *ir.Root {
	res := walk.Filter(ctx, root, func(n ir.Node, _ int, _ ir.Parent) bool {
		if !n.NodeType().IsCell() {
			return true
		}
		if ir.CellSource(n) != "" {
			return true
		}
		if cell, ok := n.(*ir.CodeCell); ok {
			return len(cell.Outputs()) != 0
		}
		return false
	})
	return res.(*ir.Root)
}

// KeepTagged returns a new tree keeping only cells whose metadata
// tags contain tag. Non-cell nodes always survive.
func KeepTagged(ctx context.Context, root *ir.Root, tag string) *ir.Root {
	res := walk.Filter(ctx, root, func(n ir.Node, _ int, _ ir.Parent) bool {
		if !n.NodeType().IsCell() {
			return true
		}
		return HasTag(n, tag)
	})
	return res.(*ir.Root)
}

// DropTagged returns a new tree without cells whose metadata tags
// contain tag.
func DropTagged(ctx context.Context, root *ir.Root, tag string) *ir.Root {
	res := walk.Filter(ctx, root, func(n ir.Node, _ int, _ ir.Parent) bool {
		if !n.NodeType().IsCell() {
			return true
		}
		return !HasTag(n, tag)
	})
	return res.(*ir.Root)
}

// HasTag reports whether the node's metadata "tags" entry contains
// tag. Both []string and the []any a JSON decode produces are
// accepted.
func HasTag(n ir.Node, tag string) bool {
	data := n.NodeData()
	if data == nil {
		return false
	}
	switch tags := data["tags"].(type) {
	case []string:
		for _, t := range tags {
			if t == tag {
				return true
			}
		}
	case []any:
		for _, t := range tags {
			if s, ok := t.(string); ok && s == tag {
				return true
			}
		}
	}
	return false
}

// ResolveOutput picks the best representation of a display-data or
// execute-result node and normalizes its payload. It returns false
// for other node types and for empty bundles.
func ResolveOutput(out ir.Node) (string, any, bool) {
	var bundle *ir.MimeBundle
	switch o := out.(type) {
	case *ir.DisplayData:
		bundle = o.Bundle
	case *ir.ExecuteResult:
		bundle = o.Bundle
	default:
		return "", nil, false
	}
	if bundle == nil {
		return "", nil, false
	}
	id, ok := mimetype.SelectBest(bundle.Keys)
	if !ok {
		return "", nil, false
	}
	payload, _ := bundle.Get(id)
	return id, mimetype.NormalizeData(id, payload), true
}
