package translit

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer transliterates a UTF-8 byte stream to ASCII inside a
// golang.org/x/text/transform pipeline. It is stateless: the zero
// value is ready to use and safe for concurrent pipelines.
//
// Unlike the whole-string functions, a stream cannot be validated up
// front; invalid bytes surface as a *MalformedInputError whose offset
// is relative to the current source window.
type Transformer struct {
	transform.NopResetter
}

var _ transform.Transformer = Transformer{}

func (Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size < 2 {
			return nDst, nSrc, &MalformedInputError{Offset: nSrc}
		}
		if r <= maxBMP {
			rep := replacement(r)
			if nDst+len(rep) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], rep)
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}
