package ir

// Root is the top level of a notebook tree: an ordered sequence of
// cells plus the document-level metadata bag in Base.Data.
type Root struct {
	Base
	NBFormat      int
	NBFormatMinor int
	Kids          []Node
}

func (r *Root) NodeType() Type { return RootType }

func (r *Root) Children() []Node { return r.Kids }

func (r *Root) SetChildren(kids []Node) { r.Kids = kids }

func (r *Root) Copy() Node {
	res := *r
	res.Base = r.copyBase()
	res.Kids = copyKids(r.Kids)
	return &res
}

func (r *Root) Clone() Node {
	res := *r
	res.Base = r.copyBase()
	res.Kids = cloneKids(r.Kids)
	return &res
}

// CodeCell invariant: the first child is the Source node and any
// further children are output nodes in execution order.
type CodeCell struct {
	Base
	ExecutionCount *int
	Kids           []Node
}

func (c *CodeCell) NodeType() Type { return CodeCellType }

func (c *CodeCell) Children() []Node { return c.Kids }

func (c *CodeCell) SetChildren(kids []Node) { c.Kids = kids }

func (c *CodeCell) Copy() Node {
	res := *c
	res.Base = c.copyBase()
	res.ExecutionCount = copyInt(c.ExecutionCount)
	res.Kids = copyKids(c.Kids)
	return &res
}

func (c *CodeCell) Clone() Node {
	res := *c
	res.Base = c.copyBase()
	res.ExecutionCount = copyInt(c.ExecutionCount)
	res.Kids = cloneKids(c.Kids)
	return &res
}

// Outputs returns the cell's children after the leading Source node.
func (c *CodeCell) Outputs() []Node {
	for i, kid := range c.Kids {
		if kid.NodeType() != SourceType {
			return c.Kids[i:]
		}
	}
	return nil
}

// MarkdownCell invariant: exactly one child, either a Markdown literal
// or a ParsedMarkdown subtree.
type MarkdownCell struct {
	Base
	Kids []Node
}

func (c *MarkdownCell) NodeType() Type { return MarkdownCellType }

func (c *MarkdownCell) Children() []Node { return c.Kids }

func (c *MarkdownCell) SetChildren(kids []Node) { c.Kids = kids }

func (c *MarkdownCell) Copy() Node {
	res := *c
	res.Base = c.copyBase()
	res.Kids = copyKids(c.Kids)
	return &res
}

func (c *MarkdownCell) Clone() Node {
	res := *c
	res.Base = c.copyBase()
	res.Kids = cloneKids(c.Kids)
	return &res
}

// RawCell invariant: exactly one RawText child.
type RawCell struct {
	Base
	Kids []Node
}

func (c *RawCell) NodeType() Type { return RawCellType }

func (c *RawCell) Children() []Node { return c.Kids }

func (c *RawCell) SetChildren(kids []Node) { c.Kids = kids }

func (c *RawCell) Copy() Node {
	res := *c
	res.Base = c.copyBase()
	res.Kids = copyKids(c.Kids)
	return &res
}

func (c *RawCell) Clone() Node {
	res := *c
	res.Base = c.copyBase()
	res.Kids = cloneKids(c.Kids)
	return &res
}

// Source is the code content of a code cell, fully joined.
type Source struct {
	Base
	Text string
}

func (s *Source) NodeType() Type { return SourceType }

func (s *Source) Value() string { return s.Text }

func (s *Source) Copy() Node {
	res := *s
	res.Base = s.copyBase()
	return &res
}

func (s *Source) Clone() Node { return s.Copy() }

// Markdown is unparsed markdown text.
type Markdown struct {
	Base
	Text string
}

func (m *Markdown) NodeType() Type { return MarkdownType }

func (m *Markdown) Value() string { return m.Text }

func (m *Markdown) Copy() Node {
	res := *m
	res.Base = m.copyBase()
	return &res
}

func (m *Markdown) Clone() Node { return m.Copy() }

// ParsedMarkdown holds the tree an external markdown engine produced
// for a markdown cell. Its children are Opaque nodes.
type ParsedMarkdown struct {
	Base
	Kids []Node
}

func (p *ParsedMarkdown) NodeType() Type { return ParsedMarkdownType }

func (p *ParsedMarkdown) Children() []Node { return p.Kids }

func (p *ParsedMarkdown) SetChildren(kids []Node) { p.Kids = kids }

func (p *ParsedMarkdown) Copy() Node {
	res := *p
	res.Base = p.copyBase()
	res.Kids = copyKids(p.Kids)
	return &res
}

func (p *ParsedMarkdown) Clone() Node {
	res := *p
	res.Base = p.copyBase()
	res.Kids = cloneKids(p.Kids)
	return &res
}

// ParsedHTML holds the tree an external engine produced for HTML text.
type ParsedHTML struct {
	Base
	Kids []Node
}

func (p *ParsedHTML) NodeType() Type { return ParsedHTMLType }

func (p *ParsedHTML) Children() []Node { return p.Kids }

func (p *ParsedHTML) SetChildren(kids []Node) { p.Kids = kids }

func (p *ParsedHTML) Copy() Node {
	res := *p
	res.Base = p.copyBase()
	res.Kids = copyKids(p.Kids)
	return &res
}

func (p *ParsedHTML) Clone() Node {
	res := *p
	res.Base = p.copyBase()
	res.Kids = cloneKids(p.Kids)
	return &res
}

// RawText is the content of a raw cell.
type RawText struct {
	Base
	Text string
}

func (r *RawText) NodeType() Type { return RawTextType }

func (r *RawText) Value() string { return r.Text }

func (r *RawText) Copy() Node {
	res := *r
	res.Base = r.copyBase()
	return &res
}

func (r *RawText) Clone() Node { return r.Copy() }

// Opaque is a node from an external engine's tree, kept only as a
// kind tag, an optional literal, and children. It is both a Parent
// and a Literal so the walker can recurse into foreign subtrees
// without knowing their shape.
type Opaque struct {
	Base
	Kind string
	Text string
	Kids []Node
}

func (o *Opaque) NodeType() Type { return OpaqueType }

func (o *Opaque) Children() []Node { return o.Kids }

func (o *Opaque) SetChildren(kids []Node) { o.Kids = kids }

func (o *Opaque) Value() string { return o.Text }

func (o *Opaque) Copy() Node {
	res := *o
	res.Base = o.copyBase()
	res.Kids = copyKids(o.Kids)
	return &res
}

func (o *Opaque) Clone() Node {
	res := *o
	res.Base = o.copyBase()
	res.Kids = cloneKids(o.Kids)
	return &res
}
