package parser

import (
	"github.com/agnivade/levenshtein"
	"github.com/brimdata/zfront/compiler/token"
)

// suggestKeyword returns the keyword closest to ident if ident looks like a
// misspelling of it, or the empty string.
func suggestKeyword(ident string) string {
	if len(ident) < 2 {
		return ""
	}
	limit := 1
	if len(ident) >= 5 {
		limit = 2
	}
	var best string
	bestDist := limit + 1
	for _, kw := range token.Keywords() {
		if d := levenshtein.ComputeDistance(ident, kw); d < bestDist {
			best, bestDist = kw, d
		}
	}
	return best
}
