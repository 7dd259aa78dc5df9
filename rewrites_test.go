package nbfmt

import (
	"context"
	"reflect"
	"testing"

	"github.com/gridbook/nbfmt/ir"
)

func intp(v int) *int { return &v }

func codeCell(src string, count *int, outputs ...ir.Node) *ir.CodeCell {
	return &ir.CodeCell{
		ExecutionCount: count,
		Kids:           append([]ir.Node{&ir.Source{Text: src}}, outputs...),
	}
}

func TestClearOutputs(t *testing.T) {
	root := &ir.Root{
		Kids: []ir.Node{
			codeCell("print('hi')", intp(3),
				&ir.Stream{Name: "stdout", Text: "hi\n"},
				&ir.Error{Name: "E", Message: "m"},
			),
			&ir.MarkdownCell{Kids: []ir.Node{&ir.Markdown{Text: "# t"}}},
		},
	}
	res, err := ClearOutputs(context.Background(), root)
	if err != nil {
		t.Fatalf("clearOutputs: %v", err)
	}
	if res != root {
		t.Errorf("clearOutputs must rewrite in place")
	}
	cell := res.Kids[0].(*ir.CodeCell)
	if len(cell.Kids) != 1 || cell.Kids[0].NodeType() != ir.SourceType {
		t.Errorf("children %v, want exactly the source", cell.Kids)
	}
	if cell.ExecutionCount != nil {
		t.Errorf("execution count not reset")
	}
	if len(res.Kids[1].(*ir.MarkdownCell).Kids) != 1 {
		t.Errorf("markdown cell touched")
	}
}

func TestDropEmptyCells(t *testing.T) {
	root := &ir.Root{
		Kids: []ir.Node{
			codeCell("", nil),
			codeCell("", nil, &ir.Stream{Name: "stdout", Text: "out"}),
			codeCell("x = 1", nil),
			&ir.MarkdownCell{Kids: []ir.Node{&ir.Markdown{Text: ""}}},
			&ir.MarkdownCell{Kids: []ir.Node{&ir.Markdown{Text: "# t"}}},
		},
	}
	res := DropEmptyCells(context.Background(), root)
	if res == root {
		t.Errorf("dropEmptyCells must not mutate its input")
	}
	if len(root.Kids) != 5 {
		t.Errorf("input mutated")
	}
	got := make([]string, len(res.Kids))
	for i, k := range res.Kids {
		got[i] = ir.CellSource(k)
	}
	want := []string{"", "x = 1", "# t"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("kept %v, want %v", got, want)
	}
}

func taggedCell(src string, tags ...any) *ir.CodeCell {
	cell := codeCell(src, nil)
	cell.Data = map[string]any{"tags": tags}
	return cell
}

func TestTagFiltering(t *testing.T) {
	root := &ir.Root{
		Kids: []ir.Node{
			taggedCell("a", "keep"),
			taggedCell("b", "drop"),
			taggedCell("c", "keep", "drop"),
			codeCell("d", nil),
		},
	}
	kept := KeepTagged(context.Background(), root, "keep")
	got := sources(kept)
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("keepTagged got %v", got)
	}
	dropped := DropTagged(context.Background(), root, "drop")
	got = sources(dropped)
	if !reflect.DeepEqual(got, []string{"a", "d"}) {
		t.Errorf("dropTagged got %v", got)
	}
	if len(root.Kids) != 4 {
		t.Errorf("input mutated")
	}
}

func sources(root *ir.Root) []string {
	res := make([]string, len(root.Kids))
	for i, k := range root.Kids {
		res[i] = ir.CellSource(k)
	}
	return res
}

func TestResolveOutput(t *testing.T) {
	bundle := &ir.MimeBundle{}
	bundle.Set("text/plain", []any{"42", "!"})
	bundle.Set("text/html", "<b>42</b>")
	bundle.Set("image/png", []any{"iVBO", "Rw0K"})

	id, payload, ok := ResolveOutput(&ir.ExecuteResult{Bundle: bundle})
	if !ok || id != "text/html" || payload != "<b>42</b>" {
		t.Errorf("got (%q, %v, %v)", id, payload, ok)
	}

	plainOnly := &ir.MimeBundle{}
	plainOnly.Set("text/plain", []any{"4", "2"})
	id, payload, ok = ResolveOutput(&ir.DisplayData{Bundle: plainOnly})
	if !ok || id != "text/plain" || payload != "42" {
		t.Errorf("fragments not joined: (%q, %v, %v)", id, payload, ok)
	}

	pngOnly := &ir.MimeBundle{}
	pngOnly.Set("image/png", []any{"a", "b"})
	id, payload, ok = ResolveOutput(&ir.DisplayData{Bundle: pngOnly})
	if !ok || id != "image/png" || !reflect.DeepEqual(payload, []any{"a", "b"}) {
		t.Errorf("non-text payload altered: (%q, %v, %v)", id, payload, ok)
	}

	if _, _, ok := ResolveOutput(&ir.Stream{Name: "stdout"}); ok {
		t.Errorf("stream outputs have no bundle to resolve")
	}
	if _, _, ok := ResolveOutput(&ir.DisplayData{Bundle: &ir.MimeBundle{}}); ok {
		t.Errorf("empty bundle must resolve to no representation")
	}
}
