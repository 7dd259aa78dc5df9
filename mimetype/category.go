// Package mimetype classifies representation identifiers and selects
// the best representation from a MIME bundle's alternatives.
//
// Nothing here raises on absence: unknown identifiers classify as
// Unknown and score 0, an empty selection input yields an explicit
// no-result, and non-text payloads pass through normalization
// verbatim.
package mimetype

import (
	"fmt"
	"strings"
)

type Category int

const (
	Unknown Category = iota
	Text
	Binary
	JSON
	Image
	Widget
	Visualization
)

func (c Category) String() string {
	s, ok := map[Category]string{
		Unknown:       "unknown",
		Text:          "text",
		Binary:        "binary",
		JSON:          "json",
		Image:         "image",
		Widget:        "widget",
		Visualization: "visualization",
	}[c]
	if ok {
		return s
	}
	return "<unknown category>"
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(d []byte) error {
	cc, ok := map[string]Category{
		"unknown":       Unknown,
		"text":          Text,
		"binary":        Binary,
		"json":          JSON,
		"image":         Image,
		"widget":        Widget,
		"visualization": Visualization,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized category %q", d)
	}
	*c = cc
	return nil
}

func Categories() []Category {
	return []Category{
		Unknown,
		Text,
		Binary,
		JSON,
		Image,
		Widget,
		Visualization,
	}
}

var widgetTypes = map[string]bool{
	"application/vnd.jupyter.widget-view+json":  true,
	"application/vnd.jupyter.widget-state+json": true,
}

// Vendor namespaces of chart/visualization formats, matched by
// prefix so new versions classify without a table change.
var visualizationPrefixes = []string{
	"application/vnd.vega.",
	"application/vnd.vegalite.",
	"application/vnd.plotly.",
	"application/vnd.bokehjs_load.",
	"application/vnd.bokehjs_exec.",
}

var imageTypes = map[string]bool{
	"image/svg+xml": true,
	"image/png":     true,
	"image/jpeg":    true,
	"image/gif":     true,
	"image/bmp":     true,
	"image/webp":    true,
}

var jsonTypes = map[string]bool{
	"application/json":     true,
	"application/geo+json": true,
}

var binaryTypes = map[string]bool{
	"application/pdf":          true,
	"application/octet-stream": true,
}

var textTypes = map[string]bool{
	"text/plain":               true,
	"text/html":                true,
	"text/markdown":            true,
	"text/latex":               true,
	"image/svg+xml":            true,
	"application/javascript":   true,
	"application/x-javascript": true,
}

// Classify assigns an identifier its category. The tests run in a
// fixed precedence and the first match wins; the ordering is
// load-bearing, since an identifier can satisfy several tests (a
// vendor "+json" chart spec is JSON-shaped but is a visualization,
// not json).
func Classify(id string) Category {
	switch {
	case widgetTypes[id]:
		return Widget
	case hasVisualizationPrefix(id):
		return Visualization
	case imageTypes[id] || majorType(id) == "image":
		return Image
	case jsonTypes[id] || strings.HasSuffix(id, "+json"):
		return JSON
	case binaryTypes[id]:
		return Binary
	case textTypes[id] || majorType(id) == "text":
		return Text
	default:
		return Unknown
	}
}

func hasVisualizationPrefix(id string) bool {
	for _, p := range visualizationPrefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}

func majorType(id string) string {
	major, _, ok := strings.Cut(id, "/")
	if !ok {
		return ""
	}
	return major
}
