package mimetype

import (
	"reflect"
	"testing"
)

type classifyTest struct {
	id  string
	cat Category
}

var classifyTests = []classifyTest{
	{"application/vnd.jupyter.widget-view+json", Widget},
	{"application/vnd.jupyter.widget-state+json", Widget},
	{"application/vnd.vegalite.v5+json", Visualization},
	{"application/vnd.vegalite.v1+json", Visualization},
	{"application/vnd.vega.v3+json", Visualization},
	{"application/vnd.plotly.v1+json", Visualization},
	{"image/png", Image},
	{"image/svg+xml", Image},
	{"image/x-unheard-of", Image},
	{"application/json", JSON},
	{"application/geo+json", JSON},
	{"application/vnd.dataresource+json", JSON},
	{"application/pdf", Binary},
	{"application/octet-stream", Binary},
	{"text/plain", Text},
	{"text/html", Text},
	{"text/markdown", Text},
	{"text/latex", Text},
	{"text/anything-at-all", Text},
	{"application/javascript", Text},
	{"application/x-javascript", Text},
	{"video/mp4", Unknown},
	{"not-a-mime-type", Unknown},
	{"", Unknown},
}

func TestClassify(t *testing.T) {
	for _, tt := range classifyTests {
		if got := Classify(tt.id); got != tt.cat {
			t.Errorf("Classify(%q) = %s, want %s", tt.id, got, tt.cat)
		}
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// a vendor "+json" chart spec is JSON-shaped but the vendor test
	// runs first
	if got := Classify("application/vnd.vegalite.v5+json"); got != Visualization {
		t.Errorf("vegalite classified as %s, want visualization", got)
	}
	// widget test runs before the "+json" suffix test
	if got := Classify("application/vnd.jupyter.widget-view+json"); got != Widget {
		t.Errorf("widget-view classified as %s, want widget", got)
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		d, err := c.MarshalText()
		if err != nil {
			t.Fatalf("marshal %d: %v", c, err)
		}
		var back Category
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("unmarshal %q: %v", d, err)
		}
		if back != c {
			t.Errorf("%s round-tripped to %s", c, back)
		}
	}
}

func TestPriorityOrdering(t *testing.T) {
	// each pair: the first must strictly outrank the second
	pairs := [][2]string{
		{"text/html", "application/vnd.jupyter.widget-view+json"},
		{"application/vnd.jupyter.widget-view+json", "application/vnd.vegalite.v5+json"},
		{"application/vnd.vegalite.v5+json", "application/vnd.vegalite.v4+json"},
		{"application/vnd.vegalite.v4+json", "application/vnd.vega.v5+json"},
		{"application/vnd.vega.v5+json", "image/svg+xml"},
		{"image/svg+xml", "image/png"},
		{"image/png", "image/jpeg"},
		{"image/jpeg", "image/gif"},
		{"image/gif", "text/markdown"},
		{"text/markdown", "text/latex"},
		{"text/latex", "application/json"},
		{"application/json", "application/javascript"},
		{"application/javascript", "text/plain"},
		{"text/plain", "application/no-such-thing"},
	}
	for _, p := range pairs {
		if Priority(p[0]) <= Priority(p[1]) {
			t.Errorf("Priority(%q)=%d <= Priority(%q)=%d",
				p[0], Priority(p[0]), p[1], Priority(p[1]))
		}
	}
}

func TestPriorityTableGaps(t *testing.T) {
	// versions absent from the table score 0, no interpolation
	for _, id := range []string{
		"application/vnd.vegalite.v1+json",
		"application/vnd.vega.v2+json",
	} {
		if got := Priority(id); got != 0 {
			t.Errorf("Priority(%q) = %d, want 0", id, got)
		}
	}
}

type selectTest struct {
	ids  []string
	want string
	ok   bool
}

var selectTests = []selectTest{
	{nil, "", false},
	{[]string{}, "", false},
	{[]string{"text/plain"}, "text/plain", true},
	{[]string{"text/plain", "text/html", "image/png"}, "text/html", true},
	{[]string{"image/png", "text/html", "text/plain"}, "text/html", true},
	{[]string{"application/vnd.vegalite.v5+json", "text/plain"}, "application/vnd.vegalite.v5+json", true},
	// all-zero tie goes to first occurrence
	{[]string{"application/x-custom", "application/x-other"}, "application/x-custom", true},
	{[]string{"application/x-other", "application/x-custom"}, "application/x-other", true},
}

func TestSelectBest(t *testing.T) {
	for _, tt := range selectTests {
		got, ok := SelectBest(tt.ids)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SelectBest(%v) = (%q, %v), want (%q, %v)",
				tt.ids, got, ok, tt.want, tt.ok)
		}
	}
}

type normalizeTest struct {
	id      string
	payload any
	want    any
}

var normalizeTests = []normalizeTest{
	{"text/plain", []any{"a", "b", "c"}, "abc"},
	{"text/plain", []string{"a", "b", "c"}, "abc"},
	{"text/html", []any{"<p>", "x", "</p>"}, "<p>x</p>"},
	{"text/plain", "already joined", "already joined"},
	{"image/png", []any{"a", "b"}, []any{"a", "b"}},
	{"application/json", []any{"{", "}"}, []any{"{", "}"}},
	{"text/plain", []any{"a", 3}, []any{"a", 3}},
	{"image/png", "iVBOR", "iVBOR"},
}

func TestNormalizeData(t *testing.T) {
	for _, tt := range normalizeTests {
		got := NormalizeData(tt.id, tt.payload)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NormalizeData(%q, %v) = %v, want %v",
				tt.id, tt.payload, got, tt.want)
		}
	}
}
