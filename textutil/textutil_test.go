package textutil

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"\x1b[0;32mTraceback\x1b[0m line", "Traceback line"},
		{"a\x1b[1;31;40mb\x1b[Kc", "abc"},
	}
	for _, tt := range tests {
		if got := StripANSI(tt.in); got != tt.want {
			t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	in := `<b>"x" & 'y'</b>`
	want := "&lt;b&gt;&quot;x&quot; &amp; &#39;y&#39;&lt;/b&gt;"
	if got := EscapeHTML(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
