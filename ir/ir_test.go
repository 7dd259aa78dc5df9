package ir

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTypeRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("marshal %d: %v", typ, err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("unmarshal %q: %v", d, err)
		}
		if back != typ {
			t.Errorf("%s round-tripped to %s", typ, back)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Nope")); err == nil {
		t.Errorf("unmarshal of unknown type did not fail")
	}
}

func TestHasChildren(t *testing.T) {
	for n, want := range map[Node]bool{
		&Root{}:           true,
		&CodeCell{}:       true,
		&MarkdownCell{}:   true,
		&RawCell{}:        true,
		&ParsedMarkdown{}: true,
		&ParsedHTML{}:     true,
		&Opaque{}:         true,
		&Source{}:         false,
		&Markdown{}:       false,
		&RawText{}:        false,
		&Stream{}:         false,
		&DisplayData{}:    false,
		&ExecuteResult{}:  false,
		&Error{}:          false,
	} {
		if got := HasChildren(n); got != want {
			t.Errorf("HasChildren(%s) = %v, want %v", n.NodeType(), got, want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	count := 1
	root := &Root{
		Base:     Base{Data: map[string]any{"k": "v"}},
		NBFormat: 4,
		Kids: []Node{
			&CodeCell{
				ExecutionCount: &count,
				Kids: []Node{
					&Source{Text: "x"},
					&Stream{Name: "stdout", Text: "out"},
				},
			},
		},
	}
	clone := root.Clone().(*Root)
	if !reflect.DeepEqual(clone, root) {
		t.Fatalf("clone differs from original")
	}
	clone.Data["k"] = "changed"
	clone.Kids[0].(*CodeCell).Kids[0].(*Source).Text = "changed"
	*clone.Kids[0].(*CodeCell).ExecutionCount = 9
	if root.Data["k"] != "v" {
		t.Errorf("clone shares the data bag")
	}
	if root.Kids[0].(*CodeCell).Kids[0].(*Source).Text != "x" {
		t.Errorf("clone shares descendants")
	}
	if *root.Kids[0].(*CodeCell).ExecutionCount != 1 {
		t.Errorf("clone shares the execution counter")
	}
}

func TestCopyIsShallow(t *testing.T) {
	root := &Root{Kids: []Node{&RawCell{Kids: []Node{&RawText{Text: "r"}}}}}
	cp := root.Copy().(*Root)
	if cp == root {
		t.Fatalf("copy returned the receiver")
	}
	if cp.Kids[0] != root.Kids[0] {
		t.Errorf("shallow copy must share children")
	}
	cp.SetChildren(nil)
	if len(root.Kids) != 1 {
		t.Errorf("replacing the copy's children touched the original")
	}
}

func TestCellSource(t *testing.T) {
	code := &CodeCell{Kids: []Node{&Source{Text: "x = 1"}, &Stream{Text: "1"}}}
	if got := CellSource(code); got != "x = 1" {
		t.Errorf("got %q", got)
	}
	md := &MarkdownCell{Kids: []Node{&Markdown{Text: "# t"}}}
	if got := CellSource(md); got != "# t" {
		t.Errorf("got %q", got)
	}
	parsed := &MarkdownCell{Kids: []Node{&ParsedMarkdown{}}}
	if got := CellSource(parsed); got != "" {
		t.Errorf("got %q, want empty for parsed-only cell", got)
	}
	if got := CellSource(&Stream{Text: "no"}); got != "" {
		t.Errorf("got %q, want empty for non-cell", got)
	}
}

func TestMimeBundleOrder(t *testing.T) {
	b := &MimeBundle{}
	b.Set("text/plain", "p")
	b.Set("text/html", "h")
	b.Set("text/plain", "p2")
	if !reflect.DeepEqual(b.Keys, []string{"text/plain", "text/html"}) {
		t.Errorf("keys %v", b.Keys)
	}
	if v, ok := b.Get("text/plain"); !ok || v != "p2" {
		t.Errorf("get after set-replace: %v %v", v, ok)
	}
	if _, ok := b.Get("image/png"); ok {
		t.Errorf("get of absent key succeeded")
	}
	if b.Len() != 2 {
		t.Errorf("len %d", b.Len())
	}
	var nilBundle *MimeBundle
	if nilBundle.Len() != 0 {
		t.Errorf("nil bundle len")
	}
	if _, ok := nilBundle.Get("x"); ok {
		t.Errorf("nil bundle get succeeded")
	}
}

func TestMimeBundleUnmarshalKeepsOrder(t *testing.T) {
	// key order must survive decoding; a map would shuffle it
	in := `{"text/plain": ["a"], "image/png": "iV", "text/html": "<b/>"}`
	b := &MimeBundle{}
	if err := json.Unmarshal([]byte(in), b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []string{"text/plain", "image/png", "text/html"}
	if !reflect.DeepEqual(b.Keys, want) {
		t.Errorf("keys %v, want %v", b.Keys, want)
	}
	if err := json.Unmarshal([]byte(`["not an object"]`), &MimeBundle{}); err == nil {
		t.Errorf("unmarshal of non-object did not fail")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{
		Start: Point{Line: 1, Column: 1, Offset: 0},
		End:   Point{Line: 2, Column: 5, Offset: 14},
	}
	if got := p.String(); got != "1:1 (offset 0) - 2:5 (offset 14)" {
		t.Errorf("got %q", got)
	}
}
