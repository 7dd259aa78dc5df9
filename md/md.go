// Package md wraps the external markdown engine. The engine's tree is
// never inspected beyond re-rooting it as opaque child-bearing nodes,
// so a different engine can be swapped in without touching the walker
// or the node model.
package md

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/gridbook/nbfmt/ir"
	"github.com/gridbook/nbfmt/walk"
)

var extenders = map[string]goldmark.Extender{
	"gfm":             extension.GFM,
	"table":           extension.Table,
	"strikethrough":   extension.Strikethrough,
	"tasklist":        extension.TaskList,
	"linkify":         extension.Linkify,
	"footnote":        extension.Footnote,
	"typographer":     extension.Typographer,
	"definition-list": extension.DefinitionList,
}

// Extensions returns the recognized extension names.
func Extensions() []string {
	return []string{
		"gfm",
		"table",
		"strikethrough",
		"tasklist",
		"linkify",
		"footnote",
		"typographer",
		"definition-list",
	}
}

type Engine struct {
	md goldmark.Markdown
}

// New builds an engine with the named extensions enabled, applied in
// the given order.
func New(extensions ...string) (*Engine, error) {
	exts := make([]goldmark.Extender, 0, len(extensions))
	for _, name := range extensions {
		ext, ok := extenders[name]
		if !ok {
			return nil, fmt.Errorf("unknown markdown extension %q", name)
		}
		exts = append(exts, ext)
	}
	return &Engine{md: goldmark.New(goldmark.WithExtensions(exts...))}, nil
}

// Parse runs the engine over markdown source and re-roots the
// resulting tree as a ParsedMarkdown node whose descendants are
// Opaque nodes.
func (e *Engine) Parse(ctx context.Context, source string) (*ir.ParsedMarkdown, error) {
	src := []byte(source)
	doc := e.md.Parser().Parse(text.NewReader(src))
	return &ir.ParsedMarkdown{Kids: []ir.Node{convert(doc, src)}}, nil
}

// Render converts markdown source to an HTML string.
func (e *Engine) Render(ctx context.Context, source string) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := e.md.Convert([]byte(source), buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}

func convert(n ast.Node, src []byte) *ir.Opaque {
	res := &ir.Opaque{Kind: n.Kind().String()}
	switch t := n.(type) {
	case *ast.Text:
		res.Text = string(t.Segment.Value(src))
	case *ast.String:
		res.Text = string(t.Value)
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		res.Kids = append(res.Kids, convert(c, src))
	}
	return res
}

// ExpandMarkdown replaces the raw Markdown child of every markdown
// cell with the engine's parsed tree. The engine call may block; the
// walker serializes the calls in cell order.
func ExpandMarkdown(ctx context.Context, e *Engine, root *ir.Root) (*ir.Root, error) {
	res, err := walk.TransformType(ctx, root, ir.MarkdownType,
		func(ctx context.Context, n ir.Node, _ int, _ ir.Parent) (ir.Node, error) {
			return e.Parse(ctx, n.(*ir.Markdown).Value())
		})
	if err != nil {
		return nil, err
	}
	return res.(*ir.Root), nil
}
