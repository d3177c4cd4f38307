package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccepts(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "ASCII",
			input: "hello!",
		},
		{
			name:  "ASCII control bytes",
			input: "\x00\x01\r\n",
		},
		{
			name:  "2-byte runes",
			input: "héllo",
		},
		{
			name:  "3-byte runes",
			input: "漢字",
		},
		{
			name:  "4-byte runes",
			input: "😀",
		},
		{
			name:  "literal replacement char",
			input: "�",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, validate(tt.input))
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{
			name:   "lone continuation byte",
			input:  "\x80",
			offset: 0,
		},
		{
			name:   "truncated 2-byte sequence",
			input:  "\xC3",
			offset: 0,
		},
		{
			name:   "overlong encoding",
			input:  "\xC0\xAF",
			offset: 0,
		},
		{
			name:   "surrogate half",
			input:  "\xED\xA0\x80",
			offset: 0,
		},
		{
			name:   "beyond max rune",
			input:  "\xF4\x90\x80\x80",
			offset: 0,
		},
		{
			name:   "invalid byte after ASCII prefix",
			input:  "ab\xFFcd",
			offset: 2,
		},
		{
			name:   "truncated 3-byte sequence mid-string",
			input:  "ok\xE6\xBC",
			offset: 2,
		},
		{
			name:   "bad continuation byte",
			input:  "\xE6\x41\x41",
			offset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.input)
			require.Error(t, err)

			var merr *MalformedInputError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, tt.offset, merr.Offset)
		})
	}
}

func TestMalformedInputErrorMessage(t *testing.T) {
	err := &MalformedInputError{Offset: 7}
	assert.Equal(t, "translit: malformed UTF-8 input at byte 7", err.Error())
}
