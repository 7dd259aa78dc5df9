// Package ir defines the tree representation of a notebook document.
//
// Every element implements Node. Child-bearing elements additionally
// implement Parent and elements carrying a single string implement
// Literal; consumers test these capabilities structurally with a type
// assertion rather than switching on concrete types, so the traversal
// code in package walk stays closed over an open set of node variants.
package ir

type Node interface {
	NodeType() Type

	// NodeData returns the free-form metadata bag. It may be nil; it
	// is never populated by this module itself.
	NodeData() map[string]any

	Position() *Position

	// Copy returns a shallow copy: children are shared with the
	// receiver, the data bag is not.
	Copy() Node

	// Clone returns a deep copy sharing nothing with the receiver.
	Clone() Node
}

// Parent is a capability, not a separate kind of node: any Node with
// an ordered children sequence. A Node that is not a Parent is a leaf.
type Parent interface {
	Node
	Children() []Node
	SetChildren([]Node)
}

// Literal is a capability: a Node carrying a single string value.
type Literal interface {
	Node
	Value() string
}

func HasChildren(n Node) bool {
	_, ok := n.(Parent)
	return ok
}

// Base carries the fields common to all nodes. Node types embed it.
type Base struct {
	Data map[string]any
	Pos  *Position
}

func (b *Base) NodeData() map[string]any { return b.Data }

func (b *Base) Position() *Position { return b.Pos }

func (b *Base) copyBase() Base {
	res := Base{}
	if b.Data != nil {
		res.Data = make(map[string]any, len(b.Data))
		for k, v := range b.Data {
			res.Data[k] = v
		}
	}
	if b.Pos != nil {
		p := *b.Pos
		res.Pos = &p
	}
	return res
}

func copyKids(kids []Node) []Node {
	if kids == nil {
		return nil
	}
	res := make([]Node, len(kids))
	copy(res, kids)
	return res
}

func cloneKids(kids []Node) []Node {
	if kids == nil {
		return nil
	}
	res := make([]Node, len(kids))
	for i, k := range kids {
		res[i] = k.Clone()
	}
	return res
}

func copyStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	res := make([]string, len(ss))
	copy(res, ss)
	return res
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	i := *v
	return &i
}

// CellSource returns the source text of a cell node: the value of its
// first Literal child, or "" when the cell has none (a markdown cell
// whose child was replaced by a parsed tree, for example).
func CellSource(n Node) string {
	p, ok := n.(Parent)
	if !ok || !n.NodeType().IsCell() {
		return ""
	}
	for _, kid := range p.Children() {
		if lit, ok := kid.(Literal); ok {
			return lit.Value()
		}
	}
	return ""
}
