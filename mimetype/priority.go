package mimetype

import "github.com/gridbook/nbfmt/debug"

// priorities is the fixed preference table keyed by exact identifier.
// Identifiers absent from the table score 0; that includes vendor
// versions the table has no entry for, which do not interpolate from
// their neighbors.
var priorities = map[string]int{
	"text/html": 120,

	"application/vnd.jupyter.widget-view+json":  110,
	"application/vnd.jupyter.widget-state+json": 105,

	"application/vnd.vegalite.v5+json": 74,
	"application/vnd.vegalite.v4+json": 73,
	"application/vnd.vegalite.v3+json": 72,
	"application/vnd.vegalite.v2+json": 71,
	"application/vnd.vega.v5+json":     64,
	"application/vnd.vega.v4+json":     63,
	"application/vnd.vega.v3+json":     62,
	"application/vnd.plotly.v1+json":   60,

	"image/svg+xml": 50,
	"image/png":     44,
	"image/webp":    43,
	"image/jpeg":    42,
	"image/gif":     41,
	"image/bmp":     40,

	"text/markdown":    34,
	"text/latex":       33,
	"application/json": 32,

	"application/javascript": 20,

	"text/plain": 10,
}

// Priority returns the identifier's fixed preference score, 0 when
// the identifier is not in the table.
func Priority(id string) int {
	return priorities[id]
}

// SelectBest returns the identifier with the maximum priority score.
// Ties, including the all-zero tie when no identifier is in the
// table, go to the first occurrence in the input. An empty input
// returns ("", false).
func SelectBest(ids []string) (string, bool) {
	if len(ids) == 0 {
		return "", false
	}
	best, bestScore := ids[0], Priority(ids[0])
	for _, id := range ids[1:] {
		if s := Priority(id); s > bestScore {
			best, bestScore = id, s
		}
	}
	if debug.Select() {
		debug.Logf("select %v -> %q (score %d)\n", ids, best, bestScore)
	}
	return best, true
}
