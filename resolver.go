package translit

import "github.com/mozillazg/go-unidecode/table"

// maxBMP is the highest scalar value with a table entry. Everything
// above it transliterates to nothing.
const maxBMP = 0xFFFF

// replacement returns the ASCII replacement sequence for a BMP scalar
// value above the ASCII range. The table is organized as pages of up
// to 256 entries keyed by the high byte; absent pages and entries past
// the end of a short page both mean "no replacement".
//
// Callers must filter out values above maxBMP first.
func replacement(c rune) string {
	page, ok := table.Tables[c>>8]
	if !ok {
		return ""
	}
	if pos := c % 256; int(pos) < len(page) {
		return page[pos]
	}
	return ""
}
