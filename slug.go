package translit

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Slug converts s into a lowercase ASCII slug: the text is NFKC
// normalized (folding fullwidth and stylistic variants),
// transliterated, lowercased, and every run of non-alphanumeric bytes
// collapses into a single hyphen. Leading and trailing separators are
// trimmed.
// e.g. Slug("Héllo, Wörld!") => "hello-world"
func Slug(s string) (string, error) {
	folded, err := Transliterate(norm.NFKC.String(s))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(folded))
	pending := false
	for i := 0; i < len(folded); i++ {
		c := folded[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteByte(c)
			continue
		}
		pending = true
	}
	return b.String(), nil
}
