// Package textutil has the two string helpers rendering needs: ANSI
// escape stripping for stream/traceback text and HTML escaping.
package textutil

import (
	"regexp"
	"strings"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// StripANSI removes CSI escape sequences, the kind kernels emit for
// colored tracebacks.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
