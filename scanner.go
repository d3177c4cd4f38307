package translit

import (
	"fmt"
	"unicode/utf8"
)

// MalformedInputError reports the byte offset of the first invalid
// UTF-8 sequence found in an input. Overlong encodings, truncated
// multi-byte sequences, stray continuation bytes, surrogate halves and
// values beyond U+10FFFF all qualify.
type MalformedInputError struct {
	Offset int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("translit: malformed UTF-8 input at byte %d", e.Offset)
}

// validate checks the whole input for UTF-8 well-formedness up front,
// so the conversion loops never meet a decode failure mid-stream.
func validate(s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size < 2 {
			return &MalformedInputError{Offset: i}
		}
		i += size
	}
	return nil
}
