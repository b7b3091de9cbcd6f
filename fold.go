package census

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes label text for comparison: decompose, strip combining
// marks, recompose, lower-case, collapse interior whitespace. Two levels
// whose folded forms agree count as the same label, which is how the source
// format's own case/whitespace folding corrupts a dictionary into carrying
// duplicates.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}

	s = strings.ToLower(strings.TrimSpace(s))

	return strings.Join(strings.Fields(s), " ")
}
