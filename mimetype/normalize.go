package mimetype

import "strings"

// NormalizeData joins a fragment-sequence payload into a single
// string when the identifier classifies as text. Everything else
// passes through verbatim, fragment sequences included: non-text
// fragmentation has no defined joining semantics.
func NormalizeData(id string, payload any) any {
	if Classify(id) != Text {
		return payload
	}
	switch seq := payload.(type) {
	case []string:
		return strings.Join(seq, "")
	case []any:
		var b strings.Builder
		for _, frag := range seq {
			s, ok := frag.(string)
			if !ok {
				return payload
			}
			b.WriteString(s)
		}
		return b.String()
	default:
		return payload
	}
}
