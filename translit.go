// Package translit converts arbitrary UTF-8 text into a lossy,
// ASCII-only approximation. ASCII bytes pass through untouched,
// Basic-Multilingual-Plane characters are replaced with their closest
// ASCII sequence from a static transliteration table, and everything
// above the BMP is dropped.
// e.g. Transliterate("áéíóú") => "aeiou"
package translit

import (
	"unicode"

	"golang.org/x/text/transform"
)

// Transliterate returns the ASCII approximation of s in a newly
// allocated string. Every byte of the result is below 0x80; input that
// is already pure ASCII comes back byte-for-byte identical, control
// bytes included.
// This is the safest API - the result is independent of any internal
// buffer and stable across subsequent calls.
func Transliterate(s string) (string, error) {
	if err := validate(s); err != nil {
		return "", err
	}
	if len(s) > pooledCapacity {
		// Most conversions shrink or keep their size, so len(s) is a
		// good capacity hint. Ownership of the buffer moves to the
		// returned string, so the cast is copy-free.
		return bytesToString(appendTransliterated(make([]byte, 0, len(s)), s)), nil
	}
	buf := bufPool.Get().([]byte)[:0]
	buf = appendTransliterated(buf, s)
	res := string(buf)
	bufPool.Put(buf)
	return res, nil
}

// TransliterateInto writes the ASCII approximation of s into dst
// starting at offset 0 and returns the number of bytes written. It
// never allocates.
// This is the fastest API - size dst with TransliterateLen (or an
// upper bound known to the caller). An undersized dst stops the
// conversion and returns transform.ErrShortDst along with the count
// of bytes already written.
func TransliterateInto(dst []byte, s string) (int, error) {
	if err := validate(s); err != nil {
		return 0, err
	}
	n := 0
	for _, c := range s {
		if c <= unicode.MaxASCII {
			if n >= len(dst) {
				return n, transform.ErrShortDst
			}
			dst[n] = byte(c)
			n++
			continue
		}
		if c > maxBMP {
			continue
		}
		rep := replacement(c)
		if n+len(rep) > len(dst) {
			return n, transform.ErrShortDst
		}
		n += copy(dst[n:], rep)
	}
	return n, nil
}

// TransliterateLen returns the exact number of bytes Transliterate
// would produce for s, without building the result. Use it to presize
// a TransliterateInto destination.
func TransliterateLen(s string) (int, error) {
	if err := validate(s); err != nil {
		return 0, err
	}
	n := 0
	for _, c := range s {
		switch {
		case c <= unicode.MaxASCII:
			n++
		case c <= maxBMP:
			n += len(replacement(c))
		}
	}
	return n, nil
}

// appendTransliterated runs the shared classification loop over an
// already validated input: ASCII passthrough, table lookup for the
// rest of the BMP, silent drop above it.
func appendTransliterated(dst []byte, s string) []byte {
	for _, c := range s {
		if c <= unicode.MaxASCII {
			dst = append(dst, byte(c))
			continue
		}
		if c > maxBMP {
			continue
		}
		dst = append(dst, replacement(c)...)
	}
	return dst
}
